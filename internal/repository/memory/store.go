package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/ports"
)

// ErrRoundTaken mirrors the (article_id, review_round) unique constraint of
// the postgres schema.
var ErrRoundTaken = fmt.Errorf("%w: review round already exists for article", domain.ErrConflict)

type state struct {
	articles map[string]domain.Article
	reviews  map[string]domain.Review
	// reviewOrder keeps insertion order per article.
	reviewOrder map[string][]string
	history     []domain.ReviewHistory
}

// Store keeps the workflow tables in process. Transactions are serialized by
// txMu and run against a private copy of the state that replaces the shared
// one on commit, so a failing transaction leaves nothing behind.
type Store struct {
	txMu sync.Mutex

	mu    sync.RWMutex
	users map[string]domain.User
	data  *state
}

type Seed struct {
	Users    []domain.User
	Articles []domain.Article
}

func NewStore(seed Seed) *Store {
	s := &Store{
		users: make(map[string]domain.User, len(seed.Users)),
		data: &state{
			articles:    make(map[string]domain.Article, len(seed.Articles)),
			reviews:     make(map[string]domain.Review),
			reviewOrder: make(map[string][]string),
		},
	}
	for _, u := range seed.Users {
		s.users[u.ID] = u
	}
	for _, a := range seed.Articles {
		a.Metadata = copyMetadata(a.Metadata)
		s.data.articles[a.ID] = a
	}
	return s
}

var _ ports.Store = (*Store)(nil)

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &tx{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = work
	s.mu.Unlock()
	return nil
}

func (s *Store) GetUserById(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) ListReviewersWithWorkload(ctx context.Context) ([]domain.ReviewerWorkload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	open := make(map[string]int)
	for _, r := range s.data.reviews {
		if r.Status.IsOpen() {
			open[r.ReviewerID]++
		}
	}

	out := make([]domain.ReviewerWorkload, 0)
	for _, u := range s.users {
		if u.Role != domain.RoleReviewer {
			continue
		}
		out = append(out, domain.ReviewerWorkload{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Workload: open[u.ID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) Close() error { return nil }

// Article returns the committed state of an article.
func (s *Store) Article(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.data.articles[id]
	if ok {
		a.Metadata = copyMetadata(a.Metadata)
	}
	return a, ok
}

// ReviewsByArticle returns committed reviews in insertion order.
func (s *Store) ReviewsByArticle(articleID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.data.reviewOrder[articleID]
	out := make([]domain.Review, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.data.reviews[id])
	}
	return out
}

// History returns the committed audit records of an article.
func (s *Store) History(articleID string) []domain.ReviewHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ReviewHistory, 0)
	for _, h := range s.data.history {
		if h.ArticleID == articleID {
			out = append(out, h)
		}
	}
	return out
}

func (st *state) clone() *state {
	c := &state{
		articles:    make(map[string]domain.Article, len(st.articles)),
		reviews:     make(map[string]domain.Review, len(st.reviews)),
		reviewOrder: make(map[string][]string, len(st.reviewOrder)),
		history:     make([]domain.ReviewHistory, len(st.history)),
	}
	for k, v := range st.articles {
		v.Metadata = copyMetadata(v.Metadata)
		c.articles[k] = v
	}
	for k, v := range st.reviews {
		v.Metadata = copyMetadata(v.Metadata)
		c.reviews[k] = v
	}
	for k, v := range st.reviewOrder {
		c.reviewOrder[k] = append([]string(nil), v...)
	}
	copy(c.history, st.history)
	return c
}

func copyMetadata(m domain.Metadata) domain.Metadata {
	if m == nil {
		return nil
	}
	return domain.MergeMetadata(m, nil)
}

type tx struct {
	st *state
}

func (t *tx) ArticleForUpdate(ctx context.Context, articleID string) (*domain.Article, error) {
	a, ok := t.st.articles[articleID]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	a.Metadata = copyMetadata(a.Metadata)
	return &a, nil
}

func (t *tx) SaveArticle(ctx context.Context, article *domain.Article) error {
	if _, ok := t.st.articles[article.ID]; !ok {
		return domain.ErrArticleNotFound
	}
	a := *article
	a.Metadata = copyMetadata(a.Metadata)
	t.st.articles[a.ID] = a
	return nil
}

func (t *tx) CountReviews(ctx context.Context, articleID string) (int, error) {
	return len(t.st.reviewOrder[articleID]), nil
}

func (t *tx) InsertReview(ctx context.Context, review *domain.Review) error {
	if _, ok := t.st.articles[review.ArticleID]; !ok {
		return domain.ErrArticleNotFound
	}
	for _, id := range t.st.reviewOrder[review.ArticleID] {
		if t.st.reviews[id].ReviewRound == review.ReviewRound {
			return ErrRoundTaken
		}
	}
	r := *review
	r.Metadata = copyMetadata(r.Metadata)
	t.st.reviews[r.ID] = r
	t.st.reviewOrder[r.ArticleID] = append(t.st.reviewOrder[r.ArticleID], r.ID)
	return nil
}

func (t *tx) ReviewForUpdate(ctx context.Context, reviewID string) (*domain.Review, error) {
	r, ok := t.st.reviews[reviewID]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	r.Metadata = copyMetadata(r.Metadata)
	return &r, nil
}

func (t *tx) SaveReviewStatus(ctx context.Context, review *domain.Review) error {
	r, ok := t.st.reviews[review.ID]
	if !ok {
		return domain.ErrReviewNotFound
	}
	r.Status = review.Status
	r.Comments = review.Comments
	r.Metadata = copyMetadata(review.Metadata)
	t.st.reviews[r.ID] = r
	return nil
}

func (t *tx) AppendHistory(ctx context.Context, entry *domain.ReviewHistory) error {
	h := *entry
	h.Metadata = copyMetadata(h.Metadata)
	t.st.history = append(t.st.history, h)
	return nil
}
