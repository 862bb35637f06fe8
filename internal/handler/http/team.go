package http

import (
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/team"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	DirectReports(w http.ResponseWriter, r *http.Request)
	IndirectReports(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &teamHandlerImpl{teamService: teamService}
}

// DirectReports implements TeamHandler. Without a manager_id parameter the
// listing is rooted at the authenticated caller.
func (h *teamHandlerImpl) DirectReports(w http.ResponseWriter, r *http.Request) {
	managerID := r.URL.Query().Get("manager_id")

	result, err := h.teamService.DirectReports(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// IndirectReports implements TeamHandler
func (h *teamHandlerImpl) IndirectReports(w http.ResponseWriter, r *http.Request) {
	managerID := r.URL.Query().Get("manager_id")

	result, err := h.teamService.IndirectReports(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
