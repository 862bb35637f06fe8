package hierarchy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// fakeStore serves a fixed forest out of memory. FindDirectReports mirrors
// the production store contract: only active users are returned.
type fakeStore struct {
	users map[string]user.User
	err   error
	// failAfter makes the store error once this many FindDirectReports calls
	// have succeeded, to simulate a store dying mid-traversal.
	failAfter int
	calls     int
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
	if s.failAfter > 0 {
		s.calls++
		if s.calls > s.failAfter {
			return nil, errors.New("connection reset")
		}
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

// newChainStore builds A -> B -> C -> D, each reporting to the previous.
func newChainStore() *fakeStore {
	return &fakeStore{users: map[string]user.User{
		"A": {ID: "A", Role: user.RoleManager, IsActive: true},
		"B": {ID: "B", ManagerID: ptr("A"), Role: user.RoleManager, IsActive: true},
		"C": {ID: "C", ManagerID: ptr("B"), Role: user.RoleManager, IsActive: true},
		"D": {ID: "D", ManagerID: ptr("C"), Role: user.RoleEmployee, IsActive: true},
	}}
}

func idsOf(users []user.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestResolver_GetDirectReports(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resolver := NewResolver(newChainStore())

	reports, err := resolver.GetDirectReports(ctx, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B"}, idsOf(reports))

	reports, err = resolver.GetDirectReports(ctx, "D")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestResolver_GetAllDescendants_TransitiveClosure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resolver := NewResolver(newChainStore())

	descendants, err := resolver.GetAllDescendants(ctx, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, idsOf(descendants))
}

func TestResolver_IsDescendant_Transitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resolver := NewResolver(newChainStore())

	// D is not a direct report of A but is reachable through B and C.
	found, err := resolver.IsDescendant(ctx, "A", "D")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = resolver.IsDescendant(ctx, "C", "B")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolver_IsDescendant_NeverSelf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resolver := NewResolver(newChainStore())

	for _, id := range []string{"A", "B", "C", "D"} {
		found, err := resolver.IsDescendant(ctx, id, id)
		require.NoError(t, err)
		assert.False(t, found, "user %s must not be its own descendant", id)
	}
}

func TestResolver_IsDirectReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	resolver := NewResolver(newChainStore())

	direct, err := resolver.IsDirectReport(ctx, "A", "B")
	require.NoError(t, err)
	assert.True(t, direct)

	direct, err = resolver.IsDirectReport(ctx, "A", "D")
	require.NoError(t, err)
	assert.False(t, direct)
}

func TestResolver_CycleTerminates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Corrupt the chain by pointing A's manager at D, closing a cycle.
	store := newChainStore()
	a := store.users["A"]
	a.ManagerID = ptr("D")
	store.users["A"] = a

	resolver := NewResolver(store)

	descendants, err := resolver.GetAllDescendants(ctx, "A")
	require.NoError(t, err)
	// Each node visited at most once; A itself never reappears.
	assert.ElementsMatch(t, []string{"B", "C", "D"}, idsOf(descendants))

	found, err := resolver.IsDescendant(ctx, "A", "A")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolver_InactiveIntermediaryCutsSubtree(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newChainStore()
	c := store.users["C"]
	c.IsActive = false
	store.users["C"] = c

	resolver := NewResolver(store)

	descendants, err := resolver.GetAllDescendants(ctx, "A")
	require.NoError(t, err)
	// C is excluded, and D along with it: the traversal edge into D depends
	// on an inactive intermediary.
	assert.ElementsMatch(t, []string{"B"}, idsOf(descendants))
}

func TestResolver_DirectIndirectPartition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newChainStore()
	// Give A a second direct report with its own report.
	store.users["E"] = user.User{ID: "E", ManagerID: ptr("A"), Role: user.RoleManager, IsActive: true}
	store.users["F"] = user.User{ID: "F", ManagerID: ptr("E"), Role: user.RoleEmployee, IsActive: true}

	resolver := NewResolver(store)

	direct, err := resolver.GetDirectReports(ctx, "A")
	require.NoError(t, err)
	all, err := resolver.GetAllDescendants(ctx, "A")
	require.NoError(t, err)

	directIDs := idsOf(direct)
	allIDs := idsOf(all)

	assert.ElementsMatch(t, []string{"B", "E"}, directIDs)
	assert.ElementsMatch(t, []string{"B", "C", "D", "E", "F"}, allIDs)
	assert.Subset(t, allIDs, directIDs)
}

func TestResolver_StoreErrorPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newChainStore()
	store.failAfter = 1
	resolver := NewResolver(store)

	_, err := resolver.GetAllDescendants(ctx, "A")
	assert.Error(t, err)

	store.err = errors.New("store down")
	_, err = resolver.GetDirectReports(ctx, "A")
	assert.Error(t, err)
	_, err = resolver.IsDescendant(ctx, "A", "D")
	assert.Error(t, err)
	_, err = resolver.IsDirectReport(ctx, "A", "B")
	assert.Error(t, err)
}
