package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/ports"
	pg_article "github.com/3eLLenKa/journal-review/internal/repository/postgres/article"
	pg_history "github.com/3eLLenKa/journal-review/internal/repository/postgres/history"
	pg_review "github.com/3eLLenKa/journal-review/internal/repository/postgres/review"
	pg_user "github.com/3eLLenKa/journal-review/internal/repository/postgres/user"
	"github.com/lib/pq"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"

	roundConstraint = "reviews_article_round_unique"
)

var _ ports.Store = (*Store)(nil)

type Store struct {
	log     *slog.Logger
	db      *sql.DB
	user    *pg_user.UserRepo
	retries int
}

func NewStore(log *slog.Logger, db *sql.DB, retries int) *Store {
	if retries < 0 {
		retries = 0
	}
	return &Store{
		log:     log,
		db:      db,
		user:    pg_user.New(db),
		retries: retries,
	}
}

// InTx runs fn under READ COMMITTED. Writers of an article and its reviews
// lock the article row first, so statements after the lock see every review
// committed by the previous holder. Serialization failures, deadlocks and
// collisions on the (article_id, review_round) constraint re-run fn up to
// retries more times; when they keep happening the caller gets
// domain.ErrConflict.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		s.log.Warn("postgres.InTx: transaction conflict, retrying", slog.Int("attempt", attempt+1), slog.Any("error", err))
	}
	return fmt.Errorf("%w: %w", domain.ErrConflict, err)
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(ctx, newTx(sqlTx)); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) GetUserById(ctx context.Context, userID string) (*domain.User, error) {
	return s.user.GetUserById(ctx, userID)
}

func (s *Store) ListReviewersWithWorkload(ctx context.Context) ([]domain.ReviewerWorkload, error) {
	return s.user.ListReviewersWithWorkload(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	case codeUniqueViolation:
		return pqErr.Constraint == roundConstraint
	}
	return false
}

type tx struct {
	articles *pg_article.ArticleRepo
	reviews  *pg_review.ReviewRepo
	history  *pg_history.HistoryRepo
}

func newTx(sqlTx *sql.Tx) *tx {
	return &tx{
		articles: pg_article.New(sqlTx),
		reviews:  pg_review.New(sqlTx),
		history:  pg_history.New(sqlTx),
	}
}

func (t *tx) ArticleForUpdate(ctx context.Context, articleID string) (*domain.Article, error) {
	return t.articles.GetForUpdate(ctx, articleID)
}

func (t *tx) SaveArticle(ctx context.Context, article *domain.Article) error {
	return t.articles.Save(ctx, article)
}

func (t *tx) CountReviews(ctx context.Context, articleID string) (int, error) {
	return t.reviews.CountByArticle(ctx, articleID)
}

func (t *tx) InsertReview(ctx context.Context, review *domain.Review) error {
	return t.reviews.Insert(ctx, review)
}

func (t *tx) ReviewForUpdate(ctx context.Context, reviewID string) (*domain.Review, error) {
	return t.reviews.GetForUpdate(ctx, reviewID)
}

func (t *tx) SaveReviewStatus(ctx context.Context, review *domain.Review) error {
	return t.reviews.SaveStatus(ctx, review)
}

func (t *tx) AppendHistory(ctx context.Context, entry *domain.ReviewHistory) error {
	return t.history.Append(ctx, entry)
}
