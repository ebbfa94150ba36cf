package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/events"
	"github.com/3eLLenKa/journal-review/internal/i18n"
	"github.com/3eLLenKa/journal-review/internal/ports"
	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

type Config struct {
	Policy  domain.TransitionPolicy
	Timeout time.Duration
}

type Service struct {
	log     *slog.Logger
	store   ports.Store
	events  ports.EventPublisher
	tr      *i18n.Translator
	policy  domain.TransitionPolicy
	timeout time.Duration

	now   func() time.Time
	newID func() string
}

func New(log *slog.Logger, store ports.Store, publisher ports.EventPublisher, tr *i18n.Translator, cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Service{
		log:     log,
		store:   store,
		events:  publisher,
		tr:      tr,
		policy:  cfg.Policy,
		timeout: cfg.Timeout,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

type SetStatusInput struct {
	ArticleID string
	Status    string
	Comments  *string
	Override  bool
}

type AssignInput struct {
	ArticleID  string
	ReviewerID string
	Deadline   string
	Comments   *string
}

type ReviewStatusInput struct {
	ReviewID string
	Status   string
	Comments *string
}

// SetArticleStatus moves an article to the requested status and records the
// change in the audit trail. It returns the saved article and a localized
// confirmation message.
func (s *Service) SetArticleStatus(ctx context.Context, actor *domain.Actor, in SetStatusInput) (*domain.Article, string, error) {
	if !canManage(actor) {
		return nil, "", domain.ErrUnauthorized
	}
	articleID := strings.TrimSpace(in.ArticleID)
	if articleID == "" {
		return nil, "", domain.Required("articleId")
	}
	status, err := domain.ParseArticleStatus(in.Status)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		saved *domain.Article
		from  domain.ArticleStatus
	)
	err = s.store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		article, err := tx.ArticleForUpdate(ctx, articleID)
		if err != nil {
			return err
		}
		if err := s.policy.Check(article.Status, status, actor.Role, in.Override); err != nil {
			return err
		}

		now := s.now()
		from = article.Status
		article.Status = status
		article.LastModified = domain.NextModified(article.LastModified, now)
		if in.Comments != nil {
			article.Metadata = domain.MergeMetadata(article.Metadata, domain.Metadata{"editorComments": *in.Comments})
		}
		if err := tx.SaveArticle(ctx, article); err != nil {
			return err
		}

		entry := &domain.ReviewHistory{
			ID:        s.newID(),
			ArticleID: articleID,
			Action:    domain.ActionStatusChanged,
			Comments:  s.tr.Message(i18n.MsgStatusChangeComment, s.tr.ArticleStatus(from), s.tr.ArticleStatus(status)),
			Metadata: domain.Metadata{
				"from":     string(from),
				"to":       string(status),
				"comments": optional(in.Comments),
				"override": in.Override,
				"actorId":  actor.ID,
			},
			CreatedAt: now,
		}
		if err := tx.AppendHistory(ctx, entry); err != nil {
			return err
		}

		saved = article
		return nil
	})
	if err != nil {
		return nil, "", s.fail(ctx, "SetArticleStatus", err, slog.String("article_id", articleID), slog.String("status", string(status)))
	}

	s.publish(ctx, events.TypeArticleStatusChanged, articleID, events.ArticleStatusChanged{
		ArticleID: articleID,
		From:      string(from),
		To:        string(status),
		ActorID:   actor.ID,
		Override:  in.Override,
	})

	return saved, s.tr.Message(i18n.MsgStatusUpdated, s.tr.ArticleStatus(status)), nil
}

// AssignReviewer opens a new review round for the article. The round number,
// the review row, the audit record and the forced under_review status are
// written in one transaction while the article row is locked.
func (s *Service) AssignReviewer(ctx context.Context, actor *domain.Actor, in AssignInput) (*domain.Review, string, error) {
	if !canManage(actor) {
		return nil, "", domain.ErrUnauthorized
	}
	articleID := strings.TrimSpace(in.ArticleID)
	if articleID == "" {
		return nil, "", domain.Required("articleId")
	}
	reviewerID := strings.TrimSpace(in.ReviewerID)
	if reviewerID == "" {
		return nil, "", domain.Required("reviewerId")
	}
	deadline, err := domain.ParseDeadline(in.Deadline)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reviewer, err := s.store.GetUserById(ctx, reviewerID)
	if err != nil {
		return nil, "", s.fail(ctx, "AssignReviewer", err, slog.String("reviewer_id", reviewerID))
	}
	if reviewer.Role != domain.RoleReviewer {
		return nil, "", domain.ErrNotReviewer
	}

	var review *domain.Review
	err = s.store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		article, err := tx.ArticleForUpdate(ctx, articleID)
		if err != nil {
			return err
		}
		if err := s.policy.Check(article.Status, domain.ArticleStatusUnderReview, actor.Role, false); err != nil {
			return err
		}

		existing, err := tx.CountReviews(ctx, articleID)
		if err != nil {
			return err
		}

		now := s.now()
		round := domain.NextRound(existing)
		r := &domain.Review{
			ID:          s.newID(),
			ArticleID:   articleID,
			ReviewerID:  reviewerID,
			ReviewRound: round,
			Status:      domain.ReviewStatusAssigned,
			Deadline:    deadline,
			Comments:    optional(in.Comments),
			CreatedAt:   now,
		}
		if err := tx.InsertReview(ctx, r); err != nil {
			return err
		}

		if err := tx.AppendHistory(ctx, &domain.ReviewHistory{
			ID:         s.newID(),
			ArticleID:  articleID,
			ReviewerID: &reviewerID,
			Action:     domain.ActionReviewerAssigned,
			Comments:   s.tr.Message(i18n.MsgAssignmentComment, round, s.tr.Role(actor.Role)+" "+displayName(actor)),
			Metadata: domain.Metadata{
				"reviewRound": round,
				"deadline":    deadline.Format(time.DateOnly),
				"comments":    optional(in.Comments),
			},
			CreatedAt: now,
		}); err != nil {
			return err
		}

		article.Status = domain.ArticleStatusUnderReview
		article.LastModified = domain.NextModified(article.LastModified, now)
		if err := tx.SaveArticle(ctx, article); err != nil {
			return err
		}

		review = r
		return nil
	})
	if err != nil {
		return nil, "", s.fail(ctx, "AssignReviewer", err, slog.String("article_id", articleID), slog.String("reviewer_id", reviewerID))
	}

	s.log.Info("service.AssignReviewer: reviewer assigned",
		slog.String("article_id", articleID),
		slog.String("reviewer_id", reviewerID),
		slog.Int("round", review.ReviewRound),
	)

	s.publish(ctx, events.TypeReviewAssigned, articleID, events.ReviewAssigned{
		ReviewID:    review.ID,
		ArticleID:   articleID,
		ReviewerID:  reviewerID,
		ReviewRound: review.ReviewRound,
		Deadline:    review.Deadline.Format(time.DateOnly),
		ActorID:     actor.ID,
	})

	return review, s.tr.Message(i18n.MsgReviewerAssigned, review.ReviewRound), nil
}

// UpdateReviewStatus advances a review through its lifecycle. Editors and
// admins may update any review, a reviewer only their own.
func (s *Service) UpdateReviewStatus(ctx context.Context, actor *domain.Actor, in ReviewStatusInput) (*domain.Review, string, error) {
	if actor == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if !canManage(actor) && actor.Role != domain.RoleReviewer {
		return nil, "", domain.ErrUnauthorized
	}
	reviewID := strings.TrimSpace(in.ReviewID)
	if reviewID == "" {
		return nil, "", domain.Required("reviewId")
	}
	status, err := domain.ParseReviewStatus(in.Status)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		saved *domain.Review
		from  domain.ReviewStatus
	)
	err = s.store.InTx(ctx, func(ctx context.Context, tx ports.Tx) error {
		review, err := tx.ReviewForUpdate(ctx, reviewID)
		if err != nil {
			return err
		}
		if !canManage(actor) && review.ReviewerID != actor.ID {
			return domain.ErrUnauthorized
		}
		if !domain.CanTransitionReview(review.Status, status) {
			return domain.ErrInvalidReviewTransition
		}

		from = review.Status
		review.Status = status
		if in.Comments != nil {
			review.Comments = *in.Comments
		}
		if err := tx.SaveReviewStatus(ctx, review); err != nil {
			return err
		}

		reviewerID := review.ReviewerID
		if err := tx.AppendHistory(ctx, &domain.ReviewHistory{
			ID:         s.newID(),
			ArticleID:  review.ArticleID,
			ReviewerID: &reviewerID,
			Action:     domain.ActionReviewStatusChanged,
			Comments:   s.tr.Message(i18n.MsgReviewStatusUpdated, s.tr.ReviewStatus(status)),
			Metadata: domain.Metadata{
				"reviewId":    review.ID,
				"reviewRound": review.ReviewRound,
				"from":        string(from),
				"to":          string(status),
				"comments":    optional(in.Comments),
			},
			CreatedAt: s.now(),
		}); err != nil {
			return err
		}

		saved = review
		return nil
	})
	if err != nil {
		return nil, "", s.fail(ctx, "UpdateReviewStatus", err, slog.String("review_id", reviewID), slog.String("status", string(status)))
	}

	s.publish(ctx, events.TypeReviewStatusChanged, saved.ArticleID, events.ReviewStatusChanged{
		ReviewID:  saved.ID,
		ArticleID: saved.ArticleID,
		From:      string(from),
		To:        string(status),
		ActorID:   actor.ID,
	})

	return saved, s.tr.Message(i18n.MsgReviewStatusUpdated, s.tr.ReviewStatus(status)), nil
}

func (s *Service) ListReviewersWithWorkload(ctx context.Context, actor *domain.Actor) ([]domain.ReviewerWorkload, error) {
	if !canManage(actor) {
		return nil, domain.ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reviewers, err := s.store.ListReviewersWithWorkload(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListReviewersWithWorkload", err)
	}
	return reviewers, nil
}

// fail logs err and converts an expired operation deadline into
// domain.ErrTimeout. Rejections are expected outcomes and only logged at
// debug level.
func (s *Service) fail(ctx context.Context, op string, err error, attrs ...any) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !isRejection(err) {
		err = fmt.Errorf("%w: %w", domain.ErrTimeout, err)
	}

	attrs = append(attrs, slog.Any("error", err))
	switch {
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, domain.ErrConflict):
		s.log.Warn("service."+op+": operation did not complete", attrs...)
	case isRejection(err):
		s.log.Debug("service."+op+": request rejected", attrs...)
	default:
		s.log.Error("service."+op+": operation failed", attrs...)
	}
	return err
}

func (s *Service) publish(ctx context.Context, eventType, key string, data any) {
	if s.events == nil {
		return
	}
	payload, err := events.Encode(eventType, s.now(), data)
	if err != nil {
		s.log.Error("service.publish: failed to encode event", slog.String("event_type", eventType), slog.Any("error", err))
		return
	}
	// the operation has committed; a failed publish must not fail it
	if err := s.events.Publish(context.WithoutCancel(ctx), eventType, key, payload); err != nil {
		s.log.Warn("service.publish: failed to publish event", slog.String("event_type", eventType), slog.String("key", key), slog.Any("error", err))
	}
}

var rejections = []error{
	domain.ErrUnauthorized,
	domain.ErrValidation,
	domain.ErrArticleNotFound,
	domain.ErrReviewNotFound,
	domain.ErrUserNotFound,
	domain.ErrNotReviewer,
	domain.ErrTerminalStatus,
	domain.ErrInvalidReviewTransition,
}

func isRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func canManage(actor *domain.Actor) bool {
	return actor != nil && domain.CanManageWorkflow(actor.Role)
}

func displayName(actor *domain.Actor) string {
	if actor.Name != "" {
		return actor.Name
	}
	return actor.ID
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
