package feedback

import "context"

type FeedbackRepository interface {
	Create(ctx context.Context, newFeedback Feedback) (Feedback, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]Feedback, error)
}
