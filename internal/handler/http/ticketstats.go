package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/ticketstats"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type TicketStatsHandler interface {
	GetForUser(w http.ResponseWriter, r *http.Request)
}

type ticketStatsHandlerImpl struct {
	statsService ticketstats.StatisticsService
}

func NewTicketStatsHandler(statsService ticketstats.StatisticsService) TicketStatsHandler {
	return &ticketStatsHandlerImpl{statsService: statsService}
}

// GetForUser implements TicketStatsHandler
func (h *ticketStatsHandlerImpl) GetForUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.statsService.GetForUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
