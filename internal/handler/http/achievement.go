package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/achievement"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type AchievementHandler interface {
	Award(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
}

type achievementHandlerImpl struct {
	achievementService achievement.AchievementService
}

func NewAchievementHandler(achievementService achievement.AchievementService) AchievementHandler {
	return &achievementHandlerImpl{achievementService: achievementService}
}

// Award implements AchievementHandler
func (h *achievementHandlerImpl) Award(w http.ResponseWriter, r *http.Request) {
	var req achievement.CreateAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.achievementService.AwardAchievement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Achievement recorded", result)
}

// ListForUser implements AchievementHandler
func (h *achievementHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	results, err := h.achievementService.ListForUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
