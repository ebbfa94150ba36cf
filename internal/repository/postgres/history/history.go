package pg_history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/repository/postgres/jsonb"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// HistoryRepo only appends; review_history rows are never updated or deleted.
type HistoryRepo struct {
	db DBTX
}

func New(db DBTX) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Append(ctx context.Context, entry *domain.ReviewHistory) error {
	metadata, err := jsonb.Encode(entry.Metadata)
	if err != nil {
		return err
	}

	var reviewerID sql.NullString
	if entry.ReviewerID != nil {
		reviewerID = sql.NullString{String: *entry.ReviewerID, Valid: true}
	}

	query := `
		INSERT INTO review_history (history_id, article_id, reviewer_id, action, comments, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ArticleID,
		reviewerID,
		string(entry.Action),
		entry.Comments,
		metadata,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error appending %s history for article %s: %w", entry.Action, entry.ArticleID, err)
	}
	return nil
}
