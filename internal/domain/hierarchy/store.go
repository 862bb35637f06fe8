package hierarchy

import (
	"context"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// Store is the read-only view of the user store the resolver traverses.
// Implementations must filter FindDirectReports to active users only.
type Store interface {
	// FindByID returns the user record for id. The found flag distinguishes
	// a missing record from a store failure.
	FindByID(ctx context.Context, id string) (user.User, bool, error)

	// FindDirectReports returns every active user whose manager_id equals
	// managerID. An empty slice means no reports, not an error.
	FindDirectReports(ctx context.Context, managerID string) ([]user.User, error)
}
