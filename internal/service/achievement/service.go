package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse-backend-go/internal/domain/achievement"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type AchievementServiceImpl struct {
	achievementRepo achievement.AchievementRepository
	guard           *accessservice.Guard
}

func NewAchievementService(achievementRepo achievement.AchievementRepository, guard *accessservice.Guard) achievement.AchievementService {
	return &AchievementServiceImpl{
		achievementRepo: achievementRepo,
		guard:           guard,
	}
}

// AwardAchievement implements achievement.AchievementService.
func (s *AchievementServiceImpl) AwardAchievement(ctx context.Context, req achievement.CreateAchievementRequest) (achievement.AchievementResponse, error) {
	if err := req.Validate(); err != nil {
		return achievement.AchievementResponse{}, err
	}

	if err := s.guard.RequireOwnerAccess(ctx, req.UserID); err != nil {
		return achievement.AchievementResponse{}, err
	}

	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return achievement.AchievementResponse{}, err
	}

	awardedAt := time.Now()
	if req.AwardedAt != "" {
		awardedAt, _ = time.Parse("2006-01-02", req.AwardedAt)
	}

	created, err := s.achievementRepo.Create(ctx, achievement.Achievement{
		UserID:      req.UserID,
		AwardedByID: actor.ID,
		Title:       req.Title,
		Description: req.Description,
		AwardedAt:   awardedAt,
	})
	if err != nil {
		return achievement.AchievementResponse{}, fmt.Errorf("failed to create achievement: %w", err)
	}

	return achievement.ToResponse(created), nil
}

// ListForUser implements achievement.AchievementService.
func (s *AchievementServiceImpl) ListForUser(ctx context.Context, targetOwnerID string) ([]achievement.AchievementResponse, error) {
	if err := s.guard.RequireOwnerAccess(ctx, targetOwnerID); err != nil {
		return nil, err
	}

	records, err := s.achievementRepo.ListByUser(ctx, targetOwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	responses := make([]achievement.AchievementResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, achievement.ToResponse(a))
	}
	return responses, nil
}
