package achievement

import (
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type CreateAchievementRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AwardedAt   string `json:"awarded_at"` // YYYY-MM-DD, defaults to today
}

func (r *CreateAchievementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid user id"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.AwardedAt != "" {
		if _, ok := validator.IsValidDate(r.AwardedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "awarded_at", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AchievementResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	AwardedByID string `json:"awarded_by_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AwardedAt   string `json:"awarded_at"`
}

func ToResponse(a Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		AwardedByID: a.AwardedByID,
		Title:       a.Title,
		Description: a.Description,
		AwardedAt:   a.AwardedAt.Format("2006-01-02"),
	}
}
