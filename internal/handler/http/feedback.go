package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/feedback"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type FeedbackHandler interface {
	GiveFeedback(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
}

type feedbackHandlerImpl struct {
	feedbackService feedback.FeedbackService
}

func NewFeedbackHandler(feedbackService feedback.FeedbackService) FeedbackHandler {
	return &feedbackHandlerImpl{feedbackService: feedbackService}
}

// GiveFeedback implements FeedbackHandler
func (h *feedbackHandlerImpl) GiveFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedback.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.feedbackService.GiveFeedback(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback recorded", result)
}

// ListForUser implements FeedbackHandler
func (h *feedbackHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	results, err := h.feedbackService.ListForUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
