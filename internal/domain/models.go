package domain

import "time"

type Role string

const (
	RoleAuthor      Role = "author"
	RoleReviewer    Role = "reviewer"
	RoleEditor      Role = "editor"
	RoleChiefEditor Role = "chief_editor"
	RoleAdmin       Role = "admin"
)

type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

type ArticleStatus string

const (
	ArticleStatusDraft             ArticleStatus = "draft"
	ArticleStatusSubmitted         ArticleStatus = "submitted"
	ArticleStatusUnderReview       ArticleStatus = "under_review"
	ArticleStatusRevisionRequested ArticleStatus = "revision_requested"
	ArticleStatusAccepted          ArticleStatus = "accepted"
	ArticleStatusRejected          ArticleStatus = "rejected"
	ArticleStatusPublished         ArticleStatus = "published"
)

// Metadata is the free-form annotation stored as jsonb next to articles,
// reviews and history rows.
type Metadata map[string]any

type Article struct {
	ID           string
	Title        string
	Status       ArticleStatus
	LastModified time.Time
	Metadata     Metadata
}

type ReviewStatus string

const (
	ReviewStatusAssigned   ReviewStatus = "assigned"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusCompleted  ReviewStatus = "completed"
	ReviewStatusDeclined   ReviewStatus = "declined"
)

type Review struct {
	ID          string
	ArticleID   string
	ReviewerID  string
	ReviewRound int
	Status      ReviewStatus
	Deadline    time.Time
	Comments    string
	Metadata    Metadata
	CreatedAt   time.Time
}

type HistoryAction string

const (
	ActionReviewerAssigned    HistoryAction = "reviewer_assigned"
	ActionStatusChanged       HistoryAction = "status_changed"
	ActionReviewStatusChanged HistoryAction = "review_status_changed"
)

type ReviewHistory struct {
	ID         string
	ArticleID  string
	ReviewerID *string
	Action     HistoryAction
	Comments   string
	Metadata   Metadata
	CreatedAt  time.Time
}

type ReviewerWorkload struct {
	ID       string
	Name     string
	Email    string
	Workload int
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
