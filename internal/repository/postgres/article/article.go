package pg_article

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

type ArticleRepo struct {
	db DBTX
}

func New(db DBTX) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) GetForUpdate(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT title, status, last_modified, metadata
		FROM articles
		WHERE article_id = $1
		FOR UPDATE
	`
	article := &domain.Article{ID: articleID}
	var metadata []byte

	err := r.db.QueryRowContext(ctx, query, articleID).Scan(
		&article.Title,
		&article.Status,
		&article.LastModified,
		&metadata,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading article %s: %w", articleID, err)
	}

	if article.Metadata, err = jsonb.Decode(metadata); err != nil {
		return nil, err
	}
	return article, nil
}

func (r *ArticleRepo) Save(ctx context.Context, article *domain.Article) error {
	metadata, err := jsonb.Encode(article.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE articles
		SET status = $1, last_modified = $2, metadata = $3
		WHERE article_id = $4
	`
	res, err := r.db.ExecContext(ctx, query, string(article.Status), article.LastModified, metadata, article.ID)
	if err != nil {
		return fmt.Errorf("error updating article %s: %w", article.ID, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}
