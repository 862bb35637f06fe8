package user

import (
	"context"
)

type UserRepository interface {
	// InTransaction runs fn atomically. Repository calls made with the
	// context passed to fn share one transaction.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	UpdateManager(ctx context.Context, id string, managerID *string) error
	SetActive(ctx context.Context, id string, active bool) error
}
