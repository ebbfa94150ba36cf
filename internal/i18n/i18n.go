// Package i18n maps workflow enum values and user-facing messages to
// localized text.
package i18n

import (
	_ "embed"
	"fmt"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"gopkg.in/yaml.v3"
)

const DefaultLocale = "zh-CN"

type (
	MessageKey string

	catalog struct {
		ArticleStatus map[string]string `yaml:"article_status"`
		ReviewStatus  map[string]string `yaml:"review_status"`
		Role          map[string]string `yaml:"role"`
		Message       map[string]string `yaml:"message"`
	}
)

const (
	MsgStatusUpdated       MessageKey = "status_updated"
	MsgReviewerAssigned    MessageKey = "reviewer_assigned"
	MsgReviewStatusUpdated MessageKey = "review_status_updated"
	MsgAssignmentComment   MessageKey = "assignment_comment"
	MsgStatusChangeComment MessageKey = "status_change_comment"
)

//go:embed labels.yaml
var labelsYAML []byte

// Translator looks labels up in one locale and falls back to the default
// locale, then to the raw value.
type Translator struct {
	primary  *catalog
	fallback *catalog
}

func New(locale string) (*Translator, error) {
	var catalogs map[string]*catalog
	if err := yaml.Unmarshal(labelsYAML, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to parse translation catalog: %w", err)
	}

	fallback, ok := catalogs[DefaultLocale]
	if !ok {
		return nil, fmt.Errorf("translation catalog has no %s locale", DefaultLocale)
	}
	if locale == "" {
		locale = DefaultLocale
	}
	primary, ok := catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	return &Translator{primary: primary, fallback: fallback}, nil
}

func (t *Translator) ArticleStatus(s domain.ArticleStatus) string {
	return t.lookup(func(c *catalog) map[string]string { return c.ArticleStatus }, string(s))
}

func (t *Translator) ReviewStatus(s domain.ReviewStatus) string {
	return t.lookup(func(c *catalog) map[string]string { return c.ReviewStatus }, string(s))
}

func (t *Translator) Role(r domain.Role) string {
	return t.lookup(func(c *catalog) map[string]string { return c.Role }, string(r))
}

func (t *Translator) Message(key MessageKey, args ...any) string {
	format := t.lookup(func(c *catalog) map[string]string { return c.Message }, string(key))
	return fmt.Sprintf(format, args...)
}

func (t *Translator) lookup(section func(*catalog) map[string]string, key string) string {
	if v, ok := section(t.primary)[key]; ok {
		return v
	}
	if v, ok := section(t.fallback)[key]; ok {
		return v
	}
	return key
}
