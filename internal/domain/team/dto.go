package team

import (
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// ReportsResponse partitions a manager's team: direct reports and indirect
// reports (descendants minus direct) never overlap.
type ReportsResponse struct {
	ManagerID string             `json:"manager_id"`
	Reports   []user.UserSummary `json:"reports"`
	Count     int                `json:"count"`
}
