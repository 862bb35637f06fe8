package performance

import "time"

// Review is a performance review written about a user for a period.
type Review struct {
	ID         string
	UserID     string
	ReviewerID string
	Period     string
	Rating     int // 1..5
	Notes      string
	CreatedAt  time.Time
}
