package feedback

import "context"

type FeedbackService interface {
	// GiveFeedback records feedback from the authenticated actor to another user.
	GiveFeedback(ctx context.Context, req CreateFeedbackRequest) (FeedbackResponse, error)

	// ListForUser returns all feedback received by targetOwnerID. Access is
	// gated by the policy engine: self, management chain, or admin.
	ListForUser(ctx context.Context, targetOwnerID string) ([]FeedbackResponse, error)
}
