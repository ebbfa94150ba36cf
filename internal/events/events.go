package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeArticleStatusChanged = "article.status_changed"
	TypeReviewAssigned       = "review.assigned"
	TypeReviewStatusChanged  = "review.status_changed"
)

type Envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type ArticleStatusChanged struct {
	ArticleID string `json:"article_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   string `json:"actor_id"`
	Override  bool   `json:"override,omitempty"`
}

type ReviewAssigned struct {
	ReviewID    string `json:"review_id"`
	ArticleID   string `json:"article_id"`
	ReviewerID  string `json:"reviewer_id"`
	ReviewRound int    `json:"review_round"`
	Deadline    string `json:"deadline"`
	ActorID     string `json:"actor_id"`
}

type ReviewStatusChanged struct {
	ReviewID  string `json:"review_id"`
	ArticleID string `json:"article_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   string `json:"actor_id"`
}

// Encode wraps data in an envelope with a fresh event id.
func Encode(eventType string, occurredAt time.Time, data any) ([]byte, error) {
	return json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: occurredAt.UTC(),
		Data:       data,
	})
}
