package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseArticleStatus(t *testing.T) {
	cases := []struct {
		raw     string
		want    ArticleStatus
		wantErr bool
	}{
		{raw: "accepted", want: ArticleStatusAccepted},
		{raw: " under_review ", want: ArticleStatusUnderReview},
		{raw: "published", want: ArticleStatusPublished},
		{raw: "", wantErr: true},
		{raw: "archived", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseArticleStatus(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseArticleStatus(%q): expected validation error, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseArticleStatus(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseArticleStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanManageWorkflow(t *testing.T) {
	allowed := map[Role]bool{
		RoleEditor:      true,
		RoleAdmin:       true,
		RoleAuthor:      false,
		RoleReviewer:    false,
		RoleChiefEditor: false,
		Role(""):        false,
	}
	for role, want := range allowed {
		if got := CanManageWorkflow(role); got != want {
			t.Errorf("CanManageWorkflow(%q) = %v, want %v", role, got, want)
		}
	}
}

func TestTransitionPolicyPermissiveByDefault(t *testing.T) {
	var p TransitionPolicy
	if err := p.Check(ArticleStatusAccepted, ArticleStatusSubmitted, RoleEditor, false); err != nil {
		t.Fatalf("expected permissive policy to allow leaving accepted, got %v", err)
	}
}

func TestTransitionPolicyProtectTerminal(t *testing.T) {
	p := TransitionPolicy{ProtectTerminal: true}

	if err := p.Check(ArticleStatusAccepted, ArticleStatusSubmitted, RoleEditor, false); !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
	if err := p.Check(ArticleStatusAccepted, ArticleStatusSubmitted, RoleEditor, true); err != nil {
		t.Fatalf("override should force the change, got %v", err)
	}
	if err := p.Check(ArticleStatusRejected, ArticleStatusRejected, RoleAdmin, false); err != nil {
		t.Fatalf("same-status write should pass, got %v", err)
	}
	if err := p.Check(ArticleStatusSubmitted, ArticleStatusAccepted, RoleEditor, false); err != nil {
		t.Fatalf("entering a terminal status should pass, got %v", err)
	}
}

func TestCanTransitionReview(t *testing.T) {
	cases := []struct {
		from, to ReviewStatus
		want     bool
	}{
		{ReviewStatusAssigned, ReviewStatusInProgress, true},
		{ReviewStatusAssigned, ReviewStatusDeclined, true},
		{ReviewStatusAssigned, ReviewStatusCompleted, false},
		{ReviewStatusInProgress, ReviewStatusCompleted, true},
		{ReviewStatusInProgress, ReviewStatusAssigned, false},
		{ReviewStatusCompleted, ReviewStatusInProgress, false},
		{ReviewStatusDeclined, ReviewStatusAssigned, false},
	}
	for _, tc := range cases {
		if got := CanTransitionReview(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionReview(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestNextModifiedStrictlyIncreases(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if got := NextModified(base, base.Add(time.Second)); !got.Equal(base.Add(time.Second)) {
		t.Errorf("expected clock time when it advanced, got %v", got)
	}
	if got := NextModified(base, base); !got.After(base) {
		t.Errorf("expected a later time for equal clock, got %v", got)
	}
	if got := NextModified(base, base.Add(-time.Hour)); !got.After(base) {
		t.Errorf("expected a later time for a clock that went back, got %v", got)
	}
}

func TestNextModifiedSurvivesMicrosecondStorage(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 7000, time.UTC)

	got := NextModified(base, base.Add(400*time.Nanosecond))
	if got.Nanosecond()%1000 != 0 {
		t.Fatalf("expected microsecond precision, got %v", got)
	}
	if stored := got.Truncate(time.Microsecond); !stored.After(base.Truncate(time.Microsecond)) {
		t.Fatalf("stored value %v does not move past %v", stored, base)
	}

	sub := time.Date(2026, 1, 2, 3, 4, 5, 7400, time.UTC)
	if got := NextModified(sub, sub.Add(time.Second)); !got.Equal(sub.Add(time.Second).Truncate(time.Microsecond)) {
		t.Errorf("expected truncated clock time, got %v", got)
	}
}

func TestMergeMetadataKeepsOtherKeys(t *testing.T) {
	base := Metadata{"keywords": []string{"go"}, "editorComments": "old"}
	merged := MergeMetadata(base, Metadata{"editorComments": "new"})

	if merged["editorComments"] != "new" {
		t.Errorf("expected editorComments to be replaced, got %v", merged["editorComments"])
	}
	if _, ok := merged["keywords"]; !ok {
		t.Errorf("expected keywords to survive the merge")
	}
	if base["editorComments"] != "old" {
		t.Errorf("base metadata must not be modified")
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := Required("articleId")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ValidationError to match ErrValidation")
	}
	if err.Error() != "articleId is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestParseDeadline(t *testing.T) {
	want := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2026-11-30", " 2026-11-30 ", "2026-11-30T18:00:00+08:00"} {
		got, err := ParseDeadline(raw)
		if err != nil {
			t.Fatalf("ParseDeadline(%q): %v", raw, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDeadline(%q) = %v, want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"", "30/11/2026", "tomorrow"} {
		if _, err := ParseDeadline(raw); !errors.Is(err, ErrValidation) {
			t.Errorf("ParseDeadline(%q): expected validation error, got %v", raw, err)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("chief_editor"); err != nil || r != RoleChiefEditor {
		t.Fatalf("ParseRole(chief_editor) = %v, %v", r, err)
	}
	if _, err := ParseRole("guest"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}
