package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/feedback"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
	hierarchyservice "github.com/teampulse/teampulse-backend-go/internal/service/hierarchy"
)

const (
	managerID = "00000000-0000-4000-8000-000000000001"
	empID     = "00000000-0000-4000-8000-000000000002"
	peerID    = "00000000-0000-4000-8000-000000000003"
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

type fakeRepo struct {
	records []feedback.Feedback
	err     error
}

func (r *fakeRepo) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	if r.err != nil {
		return feedback.Feedback{}, r.err
	}
	f.ID = "00000000-0000-4000-8000-0000000000ff"
	f.CreatedAt = time.Now()
	r.records = append(r.records, f)
	return f, nil
}

func (r *fakeRepo) ListByRecipient(ctx context.Context, recipientID string) ([]feedback.Feedback, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []feedback.Feedback
	for _, f := range r.records {
		if f.RecipientID == recipientID {
			out = append(out, f)
		}
	}
	return out, nil
}

func ptr(s string) *string { return &s }

func newService(repo *fakeRepo, store *fakeStore) feedback.FeedbackService {
	resolver := hierarchyservice.NewResolver(store)
	engine := accessservice.NewEngine(resolver, store)
	guard := accessservice.NewGuard(engine)
	return NewFeedbackService(repo, store, guard)
}

func newStore() *fakeStore {
	return &fakeStore{users: map[string]user.User{
		managerID: {ID: managerID, Role: user.RoleManager, IsActive: true},
		empID:     {ID: empID, ManagerID: ptr(managerID), Role: user.RoleEmployee, IsActive: true},
		peerID:    {ID: peerID, ManagerID: ptr(managerID), Role: user.RoleEmployee, IsActive: true},
	}}
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

func TestGiveFeedback_PeerToPeer(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(repo, newStore())
	ctx := authedCtx(t, peerID, "employee")

	resp, err := svc.GiveFeedback(ctx, feedback.CreateFeedbackRequest{
		RecipientID: empID,
		Category:    "praise",
		Body:        "Great incident writeup last week.",
	})
	require.NoError(t, err)
	assert.Equal(t, peerID, resp.SenderID)
	assert.Equal(t, empID, resp.RecipientID)
	assert.Len(t, repo.records, 1)
}

func TestGiveFeedback_SelfRejected(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := newService(repo, newStore())
	ctx := authedCtx(t, empID, "employee")

	_, err := svc.GiveFeedback(ctx, feedback.CreateFeedbackRequest{
		RecipientID: empID,
		Category:    "praise",
		Body:        "I am great.",
	})
	assert.ErrorIs(t, err, feedback.ErrSelfFeedback)
	assert.Empty(t, repo.records)
}

func TestGiveFeedback_UnknownRecipient(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeRepo{}, newStore())
	ctx := authedCtx(t, empID, "employee")

	_, err := svc.GiveFeedback(ctx, feedback.CreateFeedbackRequest{
		RecipientID: "00000000-0000-4000-8000-0000000000ee",
		Category:    "general",
		Body:        "Hello?",
	})
	assert.ErrorIs(t, err, feedback.ErrRecipientNotFound)
}

func TestGiveFeedback_InvalidCategory(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeRepo{}, newStore())
	ctx := authedCtx(t, empID, "employee")

	_, err := svc.GiveFeedback(ctx, feedback.CreateFeedbackRequest{
		RecipientID: peerID,
		Category:    "rant",
		Body:        "...",
	})
	assert.Error(t, err)
}

func TestListForUser_OwnerAndManagerAllowed(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{records: []feedback.Feedback{
		{ID: "f1", SenderID: peerID, RecipientID: empID, Category: feedback.CategoryPraise, Body: "nice"},
	}}
	svc := newService(repo, newStore())

	// Recipient reads their own feedback.
	own, err := svc.ListForUser(authedCtx(t, empID, "employee"), empID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	// Their manager reads it too.
	byManager, err := svc.ListForUser(authedCtx(t, managerID, "manager"), empID)
	require.NoError(t, err)
	assert.Len(t, byManager, 1)
}

func TestListForUser_PeerDenied(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{records: []feedback.Feedback{
		{ID: "f1", SenderID: managerID, RecipientID: empID, Category: feedback.CategoryImprovement, Body: "tighten up reviews"},
	}}
	svc := newService(repo, newStore())

	// A peer wrote feedback about empID once, but that grants no read access.
	_, err := svc.ListForUser(authedCtx(t, peerID, "employee"), empID)
	assert.ErrorIs(t, err, access.ErrAccessDenied)
}

func TestListForUser_StoreFailureIsNotALeak(t *testing.T) {
	t.Parallel()
	store := newStore()
	store.err = errors.New("connection refused")
	repo := &fakeRepo{records: []feedback.Feedback{
		{ID: "f1", SenderID: peerID, RecipientID: empID, Category: feedback.CategoryPraise, Body: "nice"},
	}}
	svc := newService(repo, store)

	records, err := svc.ListForUser(authedCtx(t, managerID, "manager"), empID)
	assert.ErrorIs(t, err, access.ErrStoreUnavailable)
	assert.Nil(t, records)
}
