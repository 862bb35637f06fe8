package achievement

import "errors"

var (
	ErrAchievementNotFound = errors.New("achievement not found")
)
