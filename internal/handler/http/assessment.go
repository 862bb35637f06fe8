package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/assessment"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type AssessmentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
}

type assessmentHandlerImpl struct {
	assessmentService assessment.AssessmentService
}

func NewAssessmentHandler(assessmentService assessment.AssessmentService) AssessmentHandler {
	return &assessmentHandlerImpl{assessmentService: assessmentService}
}

// Submit implements AssessmentHandler
func (h *assessmentHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req assessment.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assessmentService.SubmitSelfAssessment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assessment submitted", result)
}

// ListForUser implements AssessmentHandler
func (h *assessmentHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	results, err := h.assessmentService.ListForUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
