package achievement

import "context"

type AchievementRepository interface {
	Create(ctx context.Context, newAchievement Achievement) (Achievement, error)
	ListByUser(ctx context.Context, userID string) ([]Achievement, error)
}
