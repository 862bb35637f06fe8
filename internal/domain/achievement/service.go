package achievement

import "context"

type AchievementService interface {
	// AwardAchievement records an achievement for a user. The actor must be
	// allowed to act on the user per the policy engine (self, chain, admin).
	AwardAchievement(ctx context.Context, req CreateAchievementRequest) (AchievementResponse, error)

	// ListForUser returns targetOwnerID's achievements, policy-gated.
	ListForUser(ctx context.Context, targetOwnerID string) ([]AchievementResponse, error)
}
