package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/3eLLenKa/journal-review/internal/domain"
)

func newTestIssuer(t *testing.T, now time.Time) *Issuer {
	t.Helper()
	iss, err := NewIssuer("test-secret", "journal-review", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	iss.now = func() time.Time { return now }
	return iss
}

func TestSignAndParse(t *testing.T) {
	iss := newTestIssuer(t, time.Now())
	want := domain.Actor{ID: "e1", Name: "Eve", Email: "eve@example.org", Role: domain.RoleEditor}

	token, err := iss.Sign(want)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := iss.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *got != want {
		t.Fatalf("got %+v, want %+v", *got, want)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signed := newTestIssuer(t, time.Now().Add(-2*time.Hour))
	token, err := signed.Sign(domain.Actor{ID: "e1", Role: domain.RoleEditor})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := newTestIssuer(t, time.Now()).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other, err := NewIssuer("another-secret", "journal-review", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	token, err := other.Sign(domain.Actor{ID: "e1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := newTestIssuer(t, time.Now()).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsTamperedPayload(t *testing.T) {
	iss := newTestIssuer(t, time.Now())
	token, err := iss.Sign(domain.Actor{ID: "a1", Role: domain.RoleAuthor})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	parts := strings.Split(token, ".")
	forged, err := iss.Sign(domain.Actor{ID: "a1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	parts[1] = strings.Split(forged, ".")[1]

	if _, err := iss.Parse(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignRejectsUnknownRole(t *testing.T) {
	iss := newTestIssuer(t, time.Now())
	if _, err := iss.Sign(domain.Actor{ID: "x", Role: "guest"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestActorContext(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry an actor")
	}

	actor := &domain.Actor{ID: "e1", Role: domain.RoleEditor}
	got, ok := ActorFromContext(WithActor(context.Background(), actor))
	if !ok || got != actor {
		t.Fatalf("expected stored actor, got %+v", got)
	}
}
