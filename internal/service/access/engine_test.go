package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	hierarchyservice "github.com/teampulse/teampulse-backend-go/internal/service/hierarchy"
)

// Well-formed user ids; the engine rejects anything that is not UUID-shaped
// before touching the store.
const (
	adminID    = "00000000-0000-4000-8000-00000000000a"
	managerID  = "00000000-0000-4000-8000-0000000000b0"
	leadID     = "00000000-0000-4000-8000-0000000000c0"
	employeeID = "00000000-0000-4000-8000-0000000000d0"
	outsiderID = "00000000-0000-4000-8000-0000000000e0"
)

type fakeStore struct {
	users map[string]user.User
	err   error
}

func (s *fakeStore) FindByID(ctx context.Context, id string) (user.User, bool, error) {
	if s.err != nil {
		return user.User{}, false, s.err
	}
	u, ok := s.users[id]
	return u, ok, nil
}

func (s *fakeStore) FindDirectReports(ctx context.Context, managerID string) ([]user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var reports []user.User
	for _, u := range s.users {
		if u.ManagerID != nil && *u.ManagerID == managerID && u.IsActive {
			reports = append(reports, u)
		}
	}
	return reports, nil
}

func ptr(s string) *string { return &s }

// newOrgStore models admin; manager -> lead -> employee; outsider reports to
// no one inside manager's tree.
func newOrgStore() *fakeStore {
	return &fakeStore{users: map[string]user.User{
		adminID:    {ID: adminID, Role: user.RoleAdmin, IsActive: true},
		managerID:  {ID: managerID, Role: user.RoleManager, IsActive: true},
		leadID:     {ID: leadID, ManagerID: ptr(managerID), Role: user.RoleManager, IsActive: true},
		employeeID: {ID: employeeID, ManagerID: ptr(leadID), Role: user.RoleEmployee, IsActive: true},
		outsiderID: {ID: outsiderID, Role: user.RoleEmployee, IsActive: true},
	}}
}

func newEngine(store *fakeStore) access.Engine {
	return NewEngine(hierarchyservice.NewResolver(store), store)
}

func TestEngine_SelfAccessAlwaysAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	for _, role := range []user.Role{user.RoleEmployee, user.RoleManager, user.RoleAdmin} {
		decision, err := engine.CheckAccess(ctx, employeeID, role, employeeID)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, access.ReasonSelf, decision.Reason)
	}
}

func TestEngine_AdminUniversality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	for _, target := range []string{managerID, leadID, employeeID, outsiderID} {
		decision, err := engine.CheckAccess(ctx, adminID, user.RoleAdmin, target)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "admin must reach %s", target)
		assert.Equal(t, access.ReasonAdminOverride, decision.Reason)
	}
}

func TestEngine_ManagerReachesDirectAndIndirectReports(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	// Direct report.
	decision, err := engine.CheckAccess(ctx, managerID, user.RoleManager, leadID)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, access.ReasonHierarchy, decision.Reason)

	// Indirect report, two levels down.
	decision, err = engine.CheckAccess(ctx, managerID, user.RoleManager, employeeID)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, access.ReasonHierarchy, decision.Reason)
}

func TestEngine_ManagerDeniedOutsideHierarchy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	decision, err := engine.CheckAccess(ctx, managerID, user.RoleManager, outsiderID)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, access.ReasonInsufficientPrivilege, decision.Reason)
}

func TestEngine_EmployeeIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	for _, target := range []string{managerID, leadID, outsiderID} {
		decision, err := engine.CheckAccess(ctx, employeeID, user.RoleEmployee, target)
		require.NoError(t, err)
		assert.False(t, decision.Allowed, "employee must not reach %s", target)
	}
}

func TestEngine_OwnerNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	engine := newEngine(newOrgStore())

	missing := "00000000-0000-4000-8000-0000000000ff"
	decision, err := engine.CheckAccess(ctx, adminID, user.RoleAdmin, missing)
	assert.ErrorIs(t, err, access.ErrOwnerNotFound)
	assert.False(t, decision.Allowed)
}

func TestEngine_MalformedIdentifierRejectedBeforeStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newOrgStore()
	store.err = errors.New("store must not be queried")
	engine := newEngine(store)

	decision, err := engine.CheckAccess(ctx, adminID, user.RoleAdmin, "not-a-uuid")
	assert.ErrorIs(t, err, access.ErrMalformedIdentifier)
	assert.False(t, decision.Allowed)

	decision, err = engine.CheckAccess(ctx, "'; DROP TABLE users;--", user.RoleAdmin, employeeID)
	assert.ErrorIs(t, err, access.ErrMalformedIdentifier)
	assert.False(t, decision.Allowed)
}

func TestEngine_FailClosedOnStoreError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newOrgStore()
	store.err = errors.New("connection refused")
	engine := newEngine(store)

	decision, err := engine.CheckAccess(ctx, managerID, user.RoleManager, employeeID)
	assert.ErrorIs(t, err, access.ErrStoreUnavailable)
	assert.False(t, decision.Allowed, "an errored check must never resolve to allow")
}

func TestEngine_InactiveTargetStillReachableByAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newOrgStore()
	u := store.users[employeeID]
	u.IsActive = false
	store.users[employeeID] = u
	engine := newEngine(store)

	// Historical records of a deactivated account stay queryable by higher
	// authorities while the record itself still resolves.
	decision, err := engine.CheckAccess(ctx, adminID, user.RoleAdmin, employeeID)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	// But a manager cannot reach it through current reporting structure.
	decision, err = engine.CheckAccess(ctx, leadID, user.RoleManager, employeeID)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}
