package hierarchy

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

type resolverImpl struct {
	store hierarchy.Store
}

func NewResolver(store hierarchy.Store) hierarchy.Resolver {
	return &resolverImpl{store: store}
}

// GetDirectReports implements hierarchy.Resolver.
func (r *resolverImpl) GetDirectReports(ctx context.Context, managerID string) ([]user.User, error) {
	reports, err := r.store.FindDirectReports(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load direct reports of %s: %w", managerID, err)
	}
	return reports, nil
}

// GetAllDescendants implements hierarchy.Resolver.
//
// The manager graph is expanded level by level with an explicit worklist. A
// visited set keyed by user id guarantees each node is expanded at most once,
// so traversal terminates after at most N store queries even when the stored
// manager relation accidentally contains a cycle.
func (r *resolverImpl) GetAllDescendants(ctx context.Context, managerID string) ([]user.User, error) {
	visited := map[string]bool{
		// The root is never its own descendant; seeding it keeps a corrupted
		// edge pointing back at managerID from re-adding it.
		managerID: true,
	}

	var descendants []user.User
	frontier := []string{managerID}

	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			reports, err := r.store.FindDirectReports(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to expand reports of %s: %w", id, err)
			}
			for _, report := range reports {
				if visited[report.ID] {
					continue
				}
				visited[report.ID] = true
				descendants = append(descendants, report)
				next = append(next, report.ID)
			}
		}
		frontier = next
	}

	return descendants, nil
}

// IsDirectReport implements hierarchy.Resolver.
func (r *resolverImpl) IsDirectReport(ctx context.Context, managerID, candidateID string) (bool, error) {
	reports, err := r.store.FindDirectReports(ctx, managerID)
	if err != nil {
		return false, fmt.Errorf("failed to load direct reports of %s: %w", managerID, err)
	}
	for _, report := range reports {
		if report.ID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

// IsDescendant implements hierarchy.Resolver.
//
// Same traversal as GetAllDescendants but short-circuits as soon as the
// candidate is found. Behaviorally equivalent to materializing the full
// descendant set and testing membership.
func (r *resolverImpl) IsDescendant(ctx context.Context, ancestorID, candidateID string) (bool, error) {
	if ancestorID == candidateID {
		return false, nil
	}

	visited := map[string]bool{ancestorID: true}
	frontier := []string{ancestorID}

	for len(frontier) > 0 {
		var next []string
		for _, id := range frontier {
			reports, err := r.store.FindDirectReports(ctx, id)
			if err != nil {
				return false, fmt.Errorf("failed to expand reports of %s: %w", id, err)
			}
			for _, report := range reports {
				if report.ID == candidateID {
					return true, nil
				}
				if visited[report.ID] {
					continue
				}
				visited[report.ID] = true
				next = append(next, report.ID)
			}
		}
		frontier = next
	}

	return false, nil
}
