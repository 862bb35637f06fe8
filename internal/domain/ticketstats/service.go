package ticketstats

import "context"

type StatisticsService interface {
	// GetForUser returns targetOwnerID's ticket statistics, policy-gated.
	GetForUser(ctx context.Context, targetOwnerID string) (StatisticsResponse, error)
}
