package team

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
	hierarchyservice "github.com/teampulse/teampulse-backend-go/internal/service/hierarchy"
)

const (
	adminID    = "00000000-0000-4000-8000-00000000000a"
	managerID  = "00000000-0000-4000-8000-000000000001"
	teamLeadID = "00000000-0000-4000-8000-000000000002"
	emp1ID     = "00000000-0000-4000-8000-000000000003"
	emp2ID     = "00000000-0000-4000-8000-000000000004"
	emp3ID     = "00000000-0000-4000-8000-000000000005"
	outsiderID = "00000000-0000-4000-8000-000000000006"
)

type fakeStore struct {
	users map[string]user.User
}

func (s *fakeStore) FindByID(ctx context.Context, id string) (user.User, bool, error) {
	u, ok := s.users[id]
	return u, ok, nil
}

func (s *fakeStore) FindDirectReports(ctx context.Context, managerID string) ([]user.User, error) {
	var reports []user.User
	for _, u := range s.users {
		if u.ManagerID != nil && *u.ManagerID == managerID && u.IsActive {
			reports = append(reports, u)
		}
	}
	return reports, nil
}

func ptr(s string) *string { return &s }

// newTeamService builds a service over a two-level team:
// manager -> {teamLead, emp1}, teamLead -> {emp2, emp3}.
func newTeamService() *TeamServiceImpl {
	store := &fakeStore{users: map[string]user.User{
		adminID:    {ID: adminID, Role: user.RoleAdmin, IsActive: true},
		managerID:  {ID: managerID, Role: user.RoleManager, IsActive: true},
		teamLeadID: {ID: teamLeadID, ManagerID: ptr(managerID), Role: user.RoleManager, IsActive: true},
		emp1ID:     {ID: emp1ID, ManagerID: ptr(managerID), Role: user.RoleEmployee, IsActive: true},
		emp2ID:     {ID: emp2ID, ManagerID: ptr(teamLeadID), Role: user.RoleEmployee, IsActive: true},
		emp3ID:     {ID: emp3ID, ManagerID: ptr(teamLeadID), Role: user.RoleEmployee, IsActive: true},
		outsiderID: {ID: outsiderID, Role: user.RoleEmployee, IsActive: true},
	}}
	resolver := hierarchyservice.NewResolver(store)
	engine := accessservice.NewEngine(resolver, store)
	guard := accessservice.NewGuard(engine)
	return NewTeamService(resolver, guard).(*TeamServiceImpl)
}

func authedCtx(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func summaryIDs(summaries []user.UserSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestTeamService_DirectReports_SelfRoot(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, managerID, "manager")

	// No manager_id means the actor's own team.
	resp, err := svc.DirectReports(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, managerID, resp.ManagerID)
	assert.ElementsMatch(t, []string{teamLeadID, emp1ID}, summaryIDs(resp.Reports))
	assert.Equal(t, 2, resp.Count)
}

func TestTeamService_IndirectReports_ExcludesDirect(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, managerID, "manager")

	resp, err := svc.IndirectReports(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{emp2ID, emp3ID}, summaryIDs(resp.Reports))

	// Direct and indirect never overlap.
	direct, err := svc.DirectReports(ctx, "")
	require.NoError(t, err)
	for _, d := range direct.Reports {
		assert.NotContains(t, summaryIDs(resp.Reports), d.ID)
	}
}

func TestTeamService_ExplicitSelfEqualsDefault(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, managerID, "manager")

	byDefault, err := svc.DirectReports(ctx, "")
	require.NoError(t, err)
	byID, err := svc.DirectReports(ctx, managerID)
	require.NoError(t, err)
	assert.ElementsMatch(t, summaryIDs(byDefault.Reports), summaryIDs(byID.Reports))
}

func TestTeamService_AdminViewsAnotherTeam(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, adminID, "admin")

	resp, err := svc.DirectReports(ctx, teamLeadID)
	require.NoError(t, err)
	assert.Equal(t, teamLeadID, resp.ManagerID)
	assert.ElementsMatch(t, []string{emp2ID, emp3ID}, summaryIDs(resp.Reports))
}

func TestTeamService_ManagerViewsSubordinateTeam(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, managerID, "manager")

	// teamLead is in the manager's subtree, so the manager may inspect
	// teamLead's own reports.
	resp, err := svc.DirectReports(ctx, teamLeadID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{emp2ID, emp3ID}, summaryIDs(resp.Reports))
}

func TestTeamService_EmployeeCannotViewOthersTeam(t *testing.T) {
	t.Parallel()
	svc := newTeamService()
	ctx := authedCtx(t, outsiderID, "employee")

	_, err := svc.DirectReports(ctx, managerID)
	assert.ErrorIs(t, err, access.ErrAccessDenied)

	_, err = svc.IndirectReports(ctx, managerID)
	assert.ErrorIs(t, err, access.ErrAccessDenied)
}

func TestTeamService_NoClaimsDenied(t *testing.T) {
	t.Parallel()
	svc := newTeamService()

	_, err := svc.DirectReports(context.Background(), "")
	assert.Error(t, err)
}
