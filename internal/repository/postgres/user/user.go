package pg_user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/lib/pq"
)

var openReviewStatuses = []string{
	string(domain.ReviewStatusAssigned),
	string(domain.ReviewStatusInProgress),
}

type UserRepo struct {
	db *sql.DB
}

func New(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetUserById(ctx context.Context, userId string) (*domain.User, error) {
	user := &domain.User{}
	query := "SELECT user_id, name, email, role FROM users WHERE user_id = $1"
	err := r.db.QueryRowContext(ctx, query, userId).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading user %s: %w", userId, err)
	}
	return user, nil
}

// ListReviewersWithWorkload keeps the status filter inside the join so that
// reviewers without open reviews still come back with a zero count.
func (r *UserRepo) ListReviewersWithWorkload(ctx context.Context) ([]domain.ReviewerWorkload, error) {
	query := `
        SELECT u.user_id, u.name, u.email, COUNT(r.review_id) AS workload
        FROM users u
        LEFT JOIN reviews r
          ON r.reviewer_id = u.user_id
         AND r.status = ANY($2)
        WHERE u.role = $1
        GROUP BY u.user_id, u.name, u.email
        ORDER BY u.name, u.user_id;
    `
	rows, err := r.db.QueryContext(ctx, query, string(domain.RoleReviewer), pq.Array(openReviewStatuses))
	if err != nil {
		return nil, fmt.Errorf("error executing ListReviewersWithWorkload query: %w", err)
	}
	defer rows.Close()

	reviewers := make([]domain.ReviewerWorkload, 0)
	for rows.Next() {
		var w domain.ReviewerWorkload
		if err := rows.Scan(&w.ID, &w.Name, &w.Email, &w.Workload); err != nil {
			return nil, fmt.Errorf("error scanning reviewer workload row: %w", err)
		}
		reviewers = append(reviewers, w)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration error in ListReviewersWithWorkload: %w", rows.Err())
	}

	return reviewers, nil
}
