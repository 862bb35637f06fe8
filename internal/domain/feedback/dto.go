package feedback

import (
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type CreateFeedbackRequest struct {
	RecipientID string `json:"recipient_id"`
	Category    string `json:"category"`
	Body        string `json:"body"`
}

func (r *CreateFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidID(r.RecipientID) {
		errs = append(errs, validator.ValidationError{Field: "recipient_id", Message: "must be a valid user id"})
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryPraise), string(CategoryImprovement), string(CategoryGeneral)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be praise, improvement, or general"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}
	if len(r.Body) > 5000 {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "must be at most 5000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FeedbackResponse struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Category    string `json:"category"`
	Body        string `json:"body"`
	CreatedAt   string `json:"created_at"`
}

func ToResponse(f Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID,
		SenderID:    f.SenderID,
		RecipientID: f.RecipientID,
		Category:    string(f.Category),
		Body:        f.Body,
		CreatedAt:   f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
