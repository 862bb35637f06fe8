package team

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	"github.com/teampulse/teampulse-backend-go/internal/domain/team"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type TeamServiceImpl struct {
	resolver hierarchy.Resolver
	guard    *accessservice.Guard
}

func NewTeamService(resolver hierarchy.Resolver, guard *accessservice.Guard) team.TeamService {
	return &TeamServiceImpl{
		resolver: resolver,
		guard:    guard,
	}
}

// resolveRoot picks the traversal root: the actor's own id, or another
// manager's id when the actor is allowed to see that manager's team.
func (s *TeamServiceImpl) resolveRoot(ctx context.Context, managerID string) (string, error) {
	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve actor: %w", err)
	}

	if managerID == "" || managerID == actor.ID {
		return actor.ID, nil
	}

	if err := s.guard.RequireOwnerAccess(ctx, managerID); err != nil {
		return "", err
	}
	return managerID, nil
}

// DirectReports implements team.TeamService.
func (s *TeamServiceImpl) DirectReports(ctx context.Context, managerID string) (team.ReportsResponse, error) {
	root, err := s.resolveRoot(ctx, managerID)
	if err != nil {
		return team.ReportsResponse{}, err
	}

	reports, err := s.resolver.GetDirectReports(ctx, root)
	if err != nil {
		return team.ReportsResponse{}, fmt.Errorf("failed to list direct reports: %w", err)
	}

	summaries := user.ToSummaries(reports)
	return team.ReportsResponse{
		ManagerID: root,
		Reports:   summaries,
		Count:     len(summaries),
	}, nil
}

// IndirectReports implements team.TeamService.
//
// Indirect is computed as descendants minus direct reports, so a user counted
// as direct is never re-included.
func (s *TeamServiceImpl) IndirectReports(ctx context.Context, managerID string) (team.ReportsResponse, error) {
	root, err := s.resolveRoot(ctx, managerID)
	if err != nil {
		return team.ReportsResponse{}, err
	}

	direct, err := s.resolver.GetDirectReports(ctx, root)
	if err != nil {
		return team.ReportsResponse{}, fmt.Errorf("failed to list direct reports: %w", err)
	}
	all, err := s.resolver.GetAllDescendants(ctx, root)
	if err != nil {
		return team.ReportsResponse{}, fmt.Errorf("failed to list descendants: %w", err)
	}

	directIDs := make(map[string]bool, len(direct))
	for _, u := range direct {
		directIDs[u.ID] = true
	}

	indirect := make([]user.UserSummary, 0, len(all))
	for _, u := range all {
		if directIDs[u.ID] {
			continue
		}
		indirect = append(indirect, user.ToSummary(u))
	}

	return team.ReportsResponse{
		ManagerID: root,
		Reports:   indirect,
		Count:     len(indirect),
	}, nil
}
