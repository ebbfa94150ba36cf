package ports

import (
	"context"

	"github.com/3eLLenKa/journal-review/internal/domain"
)

// Tx is the set of reads and writes the workflow performs on one article
// aggregate. Everything done through a Tx commits or rolls back together.
type Tx interface {
	// ArticleForUpdate loads the article and locks it until the end of the
	// transaction so that concurrent writers on the same article serialize.
	ArticleForUpdate(ctx context.Context, articleID string) (*domain.Article, error)
	SaveArticle(ctx context.Context, article *domain.Article) error

	CountReviews(ctx context.Context, articleID string) (int, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	ReviewForUpdate(ctx context.Context, reviewID string) (*domain.Review, error)
	SaveReviewStatus(ctx context.Context, review *domain.Review) error

	AppendHistory(ctx context.Context, entry *domain.ReviewHistory) error
}

// Store is the persistence gateway used by the workflow service.
type Store interface {
	// InTx runs fn inside a transaction. fn may be invoked more than once when
	// the backend reports a serialization conflict, so it must not keep state
	// across calls.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	GetUserById(ctx context.Context, userID string) (*domain.User, error)
	ListReviewersWithWorkload(ctx context.Context) ([]domain.ReviewerWorkload, error)

	Close() error
}

// EventPublisher delivers workflow events after their transaction committed.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, payload []byte) error
	Close() error
}
