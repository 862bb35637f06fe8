package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, newReview Review) (Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	ExistsByReviewerAndPeriod(ctx context.Context, reviewerID, userID, period string) (bool, error)
}
