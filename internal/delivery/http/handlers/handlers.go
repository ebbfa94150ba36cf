package handlers

import (
	"context"
	"errors"
	"net/http"

	api "github.com/3eLLenKa/journal-review/internal/delivery/http/gen"
	"github.com/3eLLenKa/journal-review/internal/auth"
	"github.com/3eLLenKa/journal-review/internal/domain"
	"github.com/3eLLenKa/journal-review/internal/service"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Service interface {
	SetArticleStatus(ctx context.Context, actor *domain.Actor, in service.SetStatusInput) (*domain.Article, string, error)
	AssignReviewer(ctx context.Context, actor *domain.Actor, in service.AssignInput) (*domain.Review, string, error)
	UpdateReviewStatus(ctx context.Context, actor *domain.Actor, in service.ReviewStatusInput) (*domain.Review, string, error)
	ListReviewersWithWorkload(ctx context.Context, actor *domain.Actor) ([]domain.ReviewerWorkload, error)
}

type Handlers struct {
	svc Service
}

func NewHandlers(svc Service) api.StrictServerInterface {
	return &Handlers{svc: svc}
}

func (h *Handlers) GetHealth(ctx context.Context, request api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Status: "ok"}, nil
}

func (h *Handlers) SetArticleStatus(ctx context.Context, request api.SetArticleStatusRequestObject) (api.SetArticleStatusResponseObject, error) {
	actor, _ := auth.ActorFromContext(ctx)

	err := matchPathID(request.Id, request.Body.ArticleId)
	if err == nil {
		_, msg, svcErr := h.svc.SetArticleStatus(ctx, actor, service.SetStatusInput{
			ArticleID: request.Id,
			Status:    request.Body.Status,
			Comments:  request.Body.Comments,
			Override:  request.Body.Override != nil && *request.Body.Override,
		})
		if svcErr == nil {
			return api.SetArticleStatus200JSONResponse{Success: true, Message: msg}, nil
		}
		err = svcErr
	}

	status, body, ok := classify(err)
	if !ok {
		return nil, err
	}
	switch status {
	case http.StatusBadRequest:
		return api.SetArticleStatus400JSONResponse(body), nil
	case http.StatusUnauthorized:
		return api.SetArticleStatus401JSONResponse(body), nil
	case http.StatusNotFound:
		return api.SetArticleStatus404JSONResponse(body), nil
	case http.StatusConflict:
		return api.SetArticleStatus409JSONResponse(body), nil
	default:
		return api.SetArticleStatus504JSONResponse(body), nil
	}
}

// AssignArticleReviewer is the article-scoped assignment route. It runs the
// same assignment as POST /reviewers.
func (h *Handlers) AssignArticleReviewer(ctx context.Context, request api.AssignArticleReviewerRequestObject) (api.AssignArticleReviewerResponseObject, error) {
	actor, _ := auth.ActorFromContext(ctx)

	err := matchPathID(request.Id, request.Body.ArticleId)
	if err == nil {
		review, msg, svcErr := h.svc.AssignReviewer(ctx, actor, service.AssignInput{
			ArticleID:  request.Id,
			ReviewerID: request.Body.ReviewerId,
			Deadline:   request.Body.Deadline,
			Comments:   request.Body.Comments,
		})
		if svcErr == nil {
			return api.AssignArticleReviewer201JSONResponse(reviewResponse(review, msg)), nil
		}
		err = svcErr
	}

	status, body, ok := classify(err)
	if !ok {
		return nil, err
	}
	switch status {
	case http.StatusBadRequest:
		return api.AssignArticleReviewer400JSONResponse(body), nil
	case http.StatusUnauthorized:
		return api.AssignArticleReviewer401JSONResponse(body), nil
	case http.StatusNotFound:
		return api.AssignArticleReviewer404JSONResponse(body), nil
	case http.StatusConflict:
		return api.AssignArticleReviewer409JSONResponse(body), nil
	default:
		return api.AssignArticleReviewer504JSONResponse(body), nil
	}
}

func (h *Handlers) AssignReviewer(ctx context.Context, request api.AssignReviewerRequestObject) (api.AssignReviewerResponseObject, error) {
	actor, _ := auth.ActorFromContext(ctx)

	review, msg, err := h.svc.AssignReviewer(ctx, actor, service.AssignInput{
		ArticleID:  request.Body.ArticleId,
		ReviewerID: request.Body.ReviewerId,
		Deadline:   request.Body.Deadline,
		Comments:   request.Body.Comments,
	})
	if err == nil {
		return api.AssignReviewer201JSONResponse(reviewResponse(review, msg)), nil
	}

	status, body, ok := classify(err)
	if !ok {
		return nil, err
	}
	switch status {
	case http.StatusBadRequest:
		return api.AssignReviewer400JSONResponse(body), nil
	case http.StatusUnauthorized:
		return api.AssignReviewer401JSONResponse(body), nil
	case http.StatusNotFound:
		return api.AssignReviewer404JSONResponse(body), nil
	case http.StatusConflict:
		return api.AssignReviewer409JSONResponse(body), nil
	default:
		return api.AssignReviewer504JSONResponse(body), nil
	}
}

func (h *Handlers) ListReviewers(ctx context.Context, request api.ListReviewersRequestObject) (api.ListReviewersResponseObject, error) {
	actor, _ := auth.ActorFromContext(ctx)

	reviewers, err := h.svc.ListReviewersWithWorkload(ctx, actor)
	if err != nil {
		status, body, ok := classify(err)
		switch {
		case ok && status == http.StatusUnauthorized:
			return api.ListReviewers401JSONResponse(body), nil
		case ok && status == http.StatusGatewayTimeout:
			return api.ListReviewers504JSONResponse(body), nil
		}
		return nil, err
	}

	data := make([]api.ReviewerWorkload, 0, len(reviewers))
	for _, r := range reviewers {
		data = append(data, api.ReviewerWorkload{
			Id:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			Workload: r.Workload,
		})
	}

	return api.ListReviewers200JSONResponse{Success: true, Data: data}, nil
}

func (h *Handlers) UpdateReviewStatus(ctx context.Context, request api.UpdateReviewStatusRequestObject) (api.UpdateReviewStatusResponseObject, error) {
	actor, _ := auth.ActorFromContext(ctx)

	review, msg, err := h.svc.UpdateReviewStatus(ctx, actor, service.ReviewStatusInput{
		ReviewID: request.Id,
		Status:   request.Body.Status,
		Comments: request.Body.Comments,
	})
	if err == nil {
		return api.UpdateReviewStatus200JSONResponse(reviewResponse(review, msg)), nil
	}

	status, body, ok := classify(err)
	if !ok {
		return nil, err
	}
	switch status {
	case http.StatusBadRequest:
		return api.UpdateReviewStatus400JSONResponse(body), nil
	case http.StatusUnauthorized:
		return api.UpdateReviewStatus401JSONResponse(body), nil
	case http.StatusNotFound:
		return api.UpdateReviewStatus404JSONResponse(body), nil
	case http.StatusConflict:
		return api.UpdateReviewStatus409JSONResponse(body), nil
	default:
		return api.UpdateReviewStatus504JSONResponse(body), nil
	}
}

// вспомогательные функции:

// matchPathID rejects a body articleId that points at a different article
// than the path.
func matchPathID(pathID string, bodyID *string) error {
	if bodyID == nil || *bodyID == "" || *bodyID == pathID {
		return nil
	}
	return domain.Invalid("articleId", "does not match the article in the path")
}

// classify maps a workflow error to its HTTP status and error body. ok is
// false for errors that must surface as an opaque server error.
func classify(err error) (int, api.ErrorResponse, bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, errorResponse(api.ErrorResponseErrorCodeVALIDATIONERROR, verr.Error()), true
	case errors.Is(err, domain.ErrNotReviewer):
		return http.StatusBadRequest, errorResponse(api.ErrorResponseErrorCodeNOTREVIEWER, "user does not have the reviewer role"), true
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse(api.ErrorResponseErrorCodeUNAUTHORIZED, "unauthorized"), true
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, errorResponse(api.ErrorResponseErrorCodeNOTFOUND, "article not found"), true
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, errorResponse(api.ErrorResponseErrorCodeNOTFOUND, "review not found"), true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse(api.ErrorResponseErrorCodeNOTFOUND, "reviewer not found"), true
	case errors.Is(err, domain.ErrTerminalStatus):
		return http.StatusConflict, errorResponse(api.ErrorResponseErrorCodeTERMINALSTATUS, "article is in a terminal status, set override to change it"), true
	case errors.Is(err, domain.ErrInvalidReviewTransition):
		return http.StatusConflict, errorResponse(api.ErrorResponseErrorCodeINVALIDTRANSITION, "review status change is not allowed"), true
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse(api.ErrorResponseErrorCodeCONFLICT, "concurrent update, retry the request"), true
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, errorResponse(api.ErrorResponseErrorCodeTIMEOUT, "storage did not answer in time"), true
	}
	return 0, api.ErrorResponse{}, false
}

func errorResponse(code api.ErrorResponseErrorCode, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Success: false,
		Error: struct {
			Code    api.ErrorResponseErrorCode "json:\"code\""
			Message string                     "json:\"message\""
		}{
			Code:    code,
			Message: message,
		},
	}
}

func reviewResponse(r *domain.Review, message string) api.ReviewResponse {
	review := api.Review{
		Id:          r.ID,
		ArticleId:   r.ArticleID,
		ReviewerId:  r.ReviewerID,
		ReviewRound: r.ReviewRound,
		Status:      api.ReviewStatus(r.Status),
		Deadline:    openapi_types.Date{Time: r.Deadline},
		CreatedAt:   r.CreatedAt,
	}
	if r.Comments != "" {
		comments := r.Comments
		review.Comments = &comments
	}
	return api.ReviewResponse{Success: true, Message: message, Data: review}
}
