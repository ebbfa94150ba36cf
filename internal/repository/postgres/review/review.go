package pg_review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/repository/postgres/jsonb"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ReviewRepo struct {
	db DBTX
}

func New(db DBTX) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) CountByArticle(ctx context.Context, articleID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews WHERE article_id = $1", articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting reviews for article %s: %w", articleID, err)
	}
	return count, nil
}

func (r *ReviewRepo) Insert(ctx context.Context, review *domain.Review) error {
	metadata, err := jsonb.Encode(review.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reviews (review_id, article_id, reviewer_id, review_round, status, deadline, comments, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		review.ID,
		review.ArticleID,
		review.ReviewerID,
		review.ReviewRound,
		string(review.Status),
		review.Deadline,
		review.Comments,
		metadata,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting review round %d for article %s: %w", review.ReviewRound, review.ArticleID, err)
	}
	return nil
}

func (r *ReviewRepo) GetForUpdate(ctx context.Context, reviewID string) (*domain.Review, error) {
	query := `
		SELECT article_id, reviewer_id, review_round, status, deadline, comments, metadata, created_at
		FROM reviews
		WHERE review_id = $1
		FOR UPDATE
	`
	review := &domain.Review{ID: reviewID}
	var metadata []byte

	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ArticleID,
		&review.ReviewerID,
		&review.ReviewRound,
		&review.Status,
		&review.Deadline,
		&review.Comments,
		&metadata,
		&review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading review %s: %w", reviewID, err)
	}

	if review.Metadata, err = jsonb.Decode(metadata); err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepo) SaveStatus(ctx context.Context, review *domain.Review) error {
	metadata, err := jsonb.Encode(review.Metadata)
	if err != nil {
		return err
	}

	query := "UPDATE reviews SET status = $1, comments = $2, metadata = $3 WHERE review_id = $4"
	res, err := r.db.ExecContext(ctx, query, string(review.Status), review.Comments, metadata, review.ID)
	if err != nil {
		return fmt.Errorf("error updating review %s: %w", review.ID, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
