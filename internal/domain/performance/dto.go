package performance

import (
	"regexp"

	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

var periodRegex = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

type CreateReviewRequest struct {
	UserID string `json:"user_id"`
	Period string `json:"period"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a valid user id"})
	}
	if !periodRegex.MatchString(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must match YYYY-Qn"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	ReviewerID string `json:"reviewer_id"`
	Period     string `json:"period"`
	Rating     int    `json:"rating"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func ToResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ReviewerID: r.ReviewerID,
		Period:     r.Period,
		Rating:     r.Rating,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
