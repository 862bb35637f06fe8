package ticketstats

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/ticketstats"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type StatisticsServiceImpl struct {
	statsRepo ticketstats.StatisticsRepository
	guard     *accessservice.Guard
}

func NewStatisticsService(statsRepo ticketstats.StatisticsRepository, guard *accessservice.Guard) ticketstats.StatisticsService {
	return &StatisticsServiceImpl{
		statsRepo: statsRepo,
		guard:     guard,
	}
}

// GetForUser implements ticketstats.StatisticsService.
func (s *StatisticsServiceImpl) GetForUser(ctx context.Context, targetOwnerID string) (ticketstats.StatisticsResponse, error) {
	if err := s.guard.RequireOwnerAccess(ctx, targetOwnerID); err != nil {
		return ticketstats.StatisticsResponse{}, err
	}

	stats, err := s.statsRepo.GetByUser(ctx, targetOwnerID)
	if err != nil {
		return ticketstats.StatisticsResponse{}, fmt.Errorf("failed to load ticket statistics: %w", err)
	}

	return ticketstats.ToResponse(stats), nil
}
