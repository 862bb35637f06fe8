package user

import "context"

type UserService interface {
	// GetUser returns a user's summary, policy-gated like any other
	// single-owner read.
	GetUser(ctx context.Context, id string) (UserSummary, error)

	// CreateUser provisions an account with a hashed password. Admin only
	// (enforced at the router).
	CreateUser(ctx context.Context, req CreateUserRequest) (UserSummary, error)

	// ListUsers returns a page of user summaries and the total count.
	// Admin only (enforced at the router).
	ListUsers(ctx context.Context, filter ListFilter) ([]UserSummary, int64, error)

	// UpdateManager reassigns a user's manager. Admin only (enforced at the
	// router). Rejects self-management and assignments that would close a
	// cycle in the reporting forest.
	UpdateManager(ctx context.Context, req UpdateManagerRequest) error

	// UpdateStatus activates or deactivates an account. Admin only.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
}
