package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/ports"
)

func newTestStore() *Store {
	return NewStore(Seed{
		Users: []domain.User{
			{ID: "r1", Name: "Bob", Email: "bob@example.org", Role: domain.RoleReviewer},
			{ID: "r2", Name: "Alice", Email: "alice@example.org", Role: domain.RoleReviewer},
			{ID: "e1", Name: "Eve", Email: "eve@example.org", Role: domain.RoleEditor},
		},
		Articles: []domain.Article{
			{ID: "a1", Status: domain.ArticleStatusSubmitted},
		},
	})
}

func review(id string, round int, reviewer string, status domain.ReviewStatus) *domain.Review {
	return &domain.Review{
		ID:          id,
		ArticleID:   "a1",
		ReviewerID:  reviewer,
		ReviewRound: round,
		Status:      status,
		Deadline:    time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInTxRollsBackOnError(t *testing.T) {
	store := newTestStore()
	boom := errors.New("boom")

	err := store.InTx(context.Background(), func(ctx context.Context, tx ports.Tx) error {
		if err := tx.InsertReview(ctx, review("v1", 1, "r1", domain.ReviewStatusAssigned)); err != nil {
			return err
		}
		a, err := tx.ArticleForUpdate(ctx, "a1")
		if err != nil {
			return err
		}
		a.Status = domain.ArticleStatusUnderReview
		if err := tx.SaveArticle(ctx, a); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := store.ReviewsByArticle("a1"); len(got) != 0 {
		t.Fatalf("expected no committed reviews, got %d", len(got))
	}
	a, _ := store.Article("a1")
	if a.Status != domain.ArticleStatusSubmitted {
		t.Fatalf("expected article status to stay submitted, got %s", a.Status)
	}
}

func TestInsertReviewRejectsDuplicateRound(t *testing.T) {
	store := newTestStore()

	err := store.InTx(context.Background(), func(ctx context.Context, tx ports.Tx) error {
		if err := tx.InsertReview(ctx, review("v1", 1, "r1", domain.ReviewStatusAssigned)); err != nil {
			return err
		}
		return tx.InsertReview(ctx, review("v2", 1, "r2", domain.ReviewStatusAssigned))
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict for duplicate round, got %v", err)
	}
}

// Counting in one transaction and inserting in another lets two writers see
// the same count. This is the race the workflow avoids by doing both steps
// inside a single InTx.
func TestSplitCountAndInsertRaces(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	var counted sync.WaitGroup
	counted.Add(2)

	rounds := make([]int, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var n int
			_ = store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
				var err error
				n, err = tx.CountReviews(ctx, "a1")
				return err
			})
			rounds[i] = domain.NextRound(n)

			counted.Done()
			counted.Wait()

			errs[i] = store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
				return tx.InsertReview(ctx, review(fmt.Sprintf("v%d", i), rounds[i], "r1", domain.ReviewStatusAssigned))
			})
		}(i)
	}
	wg.Wait()

	if rounds[0] != 1 || rounds[1] != 1 {
		t.Fatalf("expected both writers to compute round 1, got %v", rounds)
	}

	failed := 0
	for _, err := range errs {
		if errors.Is(err, ErrRoundTaken) {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly one writer to hit the round constraint, got errors %v", errs)
	}
}

func TestListReviewersWithWorkload(t *testing.T) {
	store := newTestStore()

	err := store.InTx(context.Background(), func(ctx context.Context, tx ports.Tx) error {
		for i, st := range []domain.ReviewStatus{
			domain.ReviewStatusCompleted,
			domain.ReviewStatusCompleted,
			domain.ReviewStatusCompleted,
			domain.ReviewStatusInProgress,
		} {
			reviewer := "r1"
			if st == domain.ReviewStatusInProgress {
				reviewer = "r2"
			}
			if err := tx.InsertReview(ctx, review(fmt.Sprintf("v%d", i), i+1, reviewer, st)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seeding reviews: %v", err)
	}

	got, err := store.ListReviewersWithWorkload(context.Background())
	if err != nil {
		t.Fatalf("ListReviewersWithWorkload: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reviewers, got %+v", got)
	}
	// ordered by name
	if got[0].ID != "r2" || got[0].Workload != 1 {
		t.Errorf("unexpected first row %+v", got[0])
	}
	if got[1].ID != "r1" || got[1].Workload != 0 {
		t.Errorf("reviewer with only completed reviews must report 0, got %+v", got[1])
	}
}

func TestInTxHonoursCanceledContext(t *testing.T) {
	store := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run on a canceled context")
	}
}
