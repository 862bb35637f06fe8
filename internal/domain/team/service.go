package team

import "context"

type TeamService interface {
	// DirectReports lists active users reporting directly to managerID. When
	// managerID is empty the authenticated actor is used; listing another
	// manager's team is policy-gated.
	DirectReports(ctx context.Context, managerID string) (ReportsResponse, error)

	// IndirectReports lists descendants of managerID excluding direct reports.
	IndirectReports(ctx context.Context, managerID string) (ReportsResponse, error)
}
