package performance

import "context"

type ReviewService interface {
	// CreateReview records a review about req.UserID written by the actor.
	// The actor must be allowed to act on req.UserID per the policy engine.
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)

	// ListForUser returns targetOwnerID's reviews, policy-gated.
	ListForUser(ctx context.Context, targetOwnerID string) ([]ReviewResponse, error)
}
