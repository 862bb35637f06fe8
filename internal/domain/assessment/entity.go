package assessment

import "time"

// Assessment is a self-assessment submitted by an employee for a review
// period, e.g. "2026-Q1".
type Assessment struct {
	ID        string
	UserID    string
	Period    string
	Score     int // 1..5 self-rating
	Summary   string
	CreatedAt time.Time
}
