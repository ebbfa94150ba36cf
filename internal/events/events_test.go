package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestEncodeEnvelope(t *testing.T) {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.FixedZone("CST", 8*3600))
	raw, err := Encode(TypeReviewAssigned, at, ReviewAssigned{
		ReviewID:    "v1",
		ArticleID:   "a1",
		ReviewerID:  "r1",
		ReviewRound: 3,
		Deadline:    "2026-11-01",
		ActorID:     "e1",
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got struct {
		EventID    string         `json:"event_id"`
		EventType  string         `json:"event_type"`
		OccurredAt time.Time      `json:"occurred_at"`
		Data       map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	if got.EventID == "" || got.EventType != TypeReviewAssigned {
		t.Fatalf("unexpected envelope header %+v", got)
	}
	if !got.OccurredAt.Equal(at) || got.OccurredAt.Location() != time.UTC {
		t.Fatalf("occurred_at must be the same instant in UTC, got %v", got.OccurredAt)
	}
	if got.Data["review_round"] != float64(3) || got.Data["article_id"] != "a1" {
		t.Fatalf("unexpected data %v", got.Data)
	}
}

func TestLoggingPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLoggingPublisher(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := p.Publish(context.Background(), TypeArticleStatusChanged, "a1", []byte(`{"to":"accepted"}`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "event_type=article.status_changed") || !strings.Contains(out, "key=a1") {
		t.Fatalf("unexpected log line %q", out)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewKafkaPublisherValidates(t *testing.T) {
	if _, err := NewKafkaPublisher(nil, "journal.workflow"); err == nil {
		t.Fatal("expected error without brokers")
	}
	if _, err := NewKafkaPublisher([]string{"localhost:9092"}, ""); err == nil {
		t.Fatal("expected error without topic")
	}

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "journal.workflow")
	if err != nil {
		t.Fatalf("NewKafkaPublisher: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
