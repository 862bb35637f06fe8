package postgresql

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/ticketstats"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type statisticsRepositoryImpl struct {
	db *database.DB
}

func NewStatisticsRepository(db *database.DB) ticketstats.StatisticsRepository {
	return &statisticsRepositoryImpl{db: db}
}

// GetByUser implements ticketstats.StatisticsRepository. Aggregates are
// computed in one pass over the assignee's tickets; a user with no tickets
// yields all-zero counts.
func (r *statisticsRepositoryImpl) GetByUser(ctx context.Context, userID string) (ticketstats.Statistics, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'open'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'resolved'),
			AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 60)
				FILTER (WHERE status = 'resolved' AND resolved_at IS NOT NULL)
		FROM tickets
		WHERE assignee_id = $1
	`

	stats := ticketstats.Statistics{UserID: userID}
	err := q.QueryRow(ctx, query, userID).Scan(
		&stats.TotalAssigned,
		&stats.Open,
		&stats.InProgress,
		&stats.Resolved,
		&stats.AvgResolutionMinutes,
	)
	if err != nil {
		return ticketstats.Statistics{}, fmt.Errorf("failed to aggregate ticket statistics: %w", err)
	}

	return stats, nil
}
