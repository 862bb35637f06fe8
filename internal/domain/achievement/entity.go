package achievement

import "time"

// Achievement is awarded to a user, typically by someone in their management
// chain.
type Achievement struct {
	ID          string
	UserID      string
	AwardedByID string
	Title       string
	Description string
	AwardedAt   time.Time
	CreatedAt   time.Time
}
