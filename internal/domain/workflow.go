package domain

import (
	"strings"
	"time"
)

var articleStatuses = map[ArticleStatus]bool{
	ArticleStatusDraft:             true,
	ArticleStatusSubmitted:         true,
	ArticleStatusUnderReview:       true,
	ArticleStatusRevisionRequested: true,
	ArticleStatusAccepted:          true,
	ArticleStatusRejected:          true,
	ArticleStatusPublished:         true,
}

var terminalStatuses = map[ArticleStatus]bool{
	ArticleStatusAccepted:  true,
	ArticleStatusRejected:  true,
	ArticleStatusPublished: true,
}

func ParseArticleStatus(raw string) (ArticleStatus, error) {
	s := ArticleStatus(strings.TrimSpace(raw))
	if s == "" {
		return "", Required("status")
	}
	if !articleStatuses[s] {
		return "", Invalid("status", "is not a known article status")
	}
	return s, nil
}

func (s ArticleStatus) IsTerminal() bool {
	return terminalStatuses[s]
}

func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.TrimSpace(raw)); r {
	case RoleAuthor, RoleReviewer, RoleEditor, RoleChiefEditor, RoleAdmin:
		return r, nil
	case "":
		return "", Required("role")
	}
	return "", Invalid("role", "is not a known role")
}

// CanManageWorkflow reports whether the role may change article status and
// assign reviewers.
func CanManageWorkflow(r Role) bool {
	return r == RoleEditor || r == RoleAdmin
}

// TransitionPolicy decides whether an article may move from one status to
// another. The zero value allows every transition.
type TransitionPolicy struct {
	ProtectTerminal bool
}

type transitionRule struct {
	from ArticleStatus
	role Role
}

// overrideRequired lists (terminal status, role) pairs that need an explicit
// override to leave the status when terminal protection is on.
var overrideRequired = map[transitionRule]bool{
	{ArticleStatusAccepted, RoleEditor}:  true,
	{ArticleStatusAccepted, RoleAdmin}:   true,
	{ArticleStatusRejected, RoleEditor}:  true,
	{ArticleStatusRejected, RoleAdmin}:   true,
	{ArticleStatusPublished, RoleEditor}: true,
	{ArticleStatusPublished, RoleAdmin}:  true,
}

func (p TransitionPolicy) Check(from, to ArticleStatus, role Role, override bool) error {
	if !p.ProtectTerminal || from == to || override {
		return nil
	}
	if overrideRequired[transitionRule{from: from, role: role}] {
		return ErrTerminalStatus
	}
	return nil
}

var reviewTransitions = map[ReviewStatus][]ReviewStatus{
	ReviewStatusAssigned:   {ReviewStatusInProgress, ReviewStatusDeclined},
	ReviewStatusInProgress: {ReviewStatusCompleted, ReviewStatusDeclined},
}

func ParseReviewStatus(raw string) (ReviewStatus, error) {
	s := ReviewStatus(strings.TrimSpace(raw))
	switch s {
	case "":
		return "", Required("status")
	case ReviewStatusAssigned, ReviewStatusInProgress, ReviewStatusCompleted, ReviewStatusDeclined:
		return s, nil
	}
	return "", Invalid("status", "is not a known review status")
}

func CanTransitionReview(from, to ReviewStatus) bool {
	for _, next := range reviewTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the review counts towards the reviewer's workload.
func (s ReviewStatus) IsOpen() bool {
	return s == ReviewStatusAssigned || s == ReviewStatusInProgress
}

// ParseDeadline accepts a calendar date (2006-01-02) or an RFC 3339
// timestamp and returns the date at midnight UTC.
func ParseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, Required("deadline")
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, Invalid("deadline", "must be a date in YYYY-MM-DD format")
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// NextRound returns the round number for a new assignment given the number of
// reviews the article already has.
func NextRound(existing int) int {
	return existing + 1
}

// NextModified keeps LastModified strictly increasing even when the clock
// does not advance between two writes. Values are truncated to microseconds,
// the precision of a TIMESTAMPTZ column.
func NextModified(prev, now time.Time) time.Time {
	prev = prev.Truncate(time.Microsecond)
	now = now.Truncate(time.Microsecond)
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

// MergeMetadata returns a copy of base with patch applied on top. Keys that
// are absent from patch are kept.
func MergeMetadata(base, patch Metadata) Metadata {
	out := make(Metadata, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
