package ticketstats

import "context"

type StatisticsRepository interface {
	// GetByUser aggregates ticket counts and resolution time for userID.
	// A user with no tickets yields zero counts, not an error.
	GetByUser(ctx context.Context, userID string) (Statistics, error)
}
