package assessment

import (
	"regexp"

	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

var periodRegex = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

type SubmitAssessmentRequest struct {
	Period  string `json:"period"`
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

func (r *SubmitAssessmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !periodRegex.MatchString(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must match YYYY-Qn"})
	}
	if r.Score < 1 || r.Score > 5 {
		errs = append(errs, validator.ValidationError{Field: "score", Message: "must be between 1 and 5"})
	}
	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{Field: "summary", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssessmentResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Period    string `json:"period"`
	Score     int    `json:"score"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(a Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Period:    a.Period,
		Score:     a.Score,
		Summary:   a.Summary,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
