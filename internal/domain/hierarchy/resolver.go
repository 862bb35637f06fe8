package hierarchy

import (
	"context"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// Resolver answers structural questions about the manager/employee forest.
// Every call reads a fresh snapshot through the Store; the resolver keeps no
// state of its own between calls.
type Resolver interface {
	// GetDirectReports returns all active users reporting directly to managerID.
	GetDirectReports(ctx context.Context, managerID string) ([]user.User, error)

	// GetAllDescendants returns every active user reachable downward from
	// managerID at any depth, excluding managerID itself. Traversal terminates
	// even if the stored graph contains a cycle.
	GetAllDescendants(ctx context.Context, managerID string) ([]user.User, error)

	// IsDirectReport reports whether candidateID reports directly to managerID.
	IsDirectReport(ctx context.Context, managerID, candidateID string) (bool, error)

	// IsDescendant reports whether candidateID is a direct or indirect report
	// of ancestorID. A user is never a descendant of itself.
	IsDescendant(ctx context.Context, ancestorID, candidateID string) (bool, error)
}
