package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo    user.UserRepository
	resolver    hierarchy.Resolver
	guard       *accessservice.Guard
	invalidator hierarchy.CacheInvalidator
}

func NewUserService(
	userRepo user.UserRepository,
	resolver hierarchy.Resolver,
	guard *accessservice.Guard,
	invalidator hierarchy.CacheInvalidator,
) user.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		resolver:    resolver,
		guard:       guard,
		invalidator: invalidator,
	}
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserSummary, error) {
	if err := s.guard.RequireOwnerAccess(ctx, id); err != nil {
		return user.UserSummary{}, err
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserSummary{}, user.ErrUserNotFound
		}
		return user.UserSummary{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user.ToSummary(u), nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserSummary, error) {
	if err := req.Validate(); err != nil {
		return user.UserSummary{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserSummary{}, user.ErrEmailAlreadyUsed
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserSummary{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.ManagerID != nil {
		manager, err := s.userRepo.GetByID(ctx, *req.ManagerID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.UserSummary{}, user.ErrManagerNotFound
			}
			return user.UserSummary{}, fmt.Errorf("failed to get manager: %w", err)
		}
		if !manager.IsManager() {
			return user.UserSummary{}, user.ErrManagerRoleRequired
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserSummary{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &passwordHash,
		ManagerID:    req.ManagerID,
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserSummary{}, fmt.Errorf("failed to create user: %w", err)
	}

	if req.ManagerID != nil {
		if err := s.invalidator.Invalidate(ctx, *req.ManagerID); err != nil {
			slog.Warn("failed to invalidate hierarchy cache", "user_id", created.ID, "error", err)
		}
	}

	return user.ToSummary(created), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListFilter) ([]user.UserSummary, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return user.ToSummaries(users), total, nil
}

// UpdateManager implements user.UserService.
func (s *UserServiceImpl) UpdateManager(ctx context.Context, req user.UpdateManagerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The cycle check and the write must see one consistent snapshot, so the
	// whole reassignment runs in a single transaction.
	var oldManagerID *string
	err := s.userRepo.InTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.GetByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		oldManagerID = existing.ManagerID

		if req.ManagerID != nil {
			if *req.ManagerID == req.ID {
				return user.ErrCannotManageSelf
			}

			manager, err := s.userRepo.GetByID(ctx, *req.ManagerID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return user.ErrManagerNotFound
				}
				return fmt.Errorf("failed to get manager: %w", err)
			}
			if !manager.IsManager() {
				return user.ErrManagerRoleRequired
			}

			// A user's new manager must not already be below them: that
			// would close a cycle in the reporting forest.
			below, err := s.resolver.IsDescendant(ctx, req.ID, *req.ManagerID)
			if err != nil {
				return fmt.Errorf("failed to check hierarchy: %w", err)
			}
			if below {
				return user.ErrManagerCycle
			}
		}

		if err := s.userRepo.UpdateManager(ctx, req.ID, req.ManagerID); err != nil {
			return fmt.Errorf("failed to update manager: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Both the old and new manager's cached direct reports are now stale.
	affected := make([]string, 0, 2)
	if oldManagerID != nil {
		affected = append(affected, *oldManagerID)
	}
	if req.ManagerID != nil {
		affected = append(affected, *req.ManagerID)
	}
	if len(affected) > 0 {
		if err := s.invalidator.Invalidate(ctx, affected...); err != nil {
			slog.Warn("failed to invalidate hierarchy cache", "user_id", req.ID, "error", err)
		}
	}

	return nil
}

// UpdateStatus implements user.UserService.
func (s *UserServiceImpl) UpdateStatus(ctx context.Context, req user.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return err
	}
	if !req.IsActive && actor.ID == req.ID {
		return user.ErrCannotDeactivateSelf
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if existing.IsActive == req.IsActive {
		if req.IsActive {
			return user.ErrUserAlreadyActive
		}
		return user.ErrUserAlreadyInactive
	}

	if err := s.userRepo.SetActive(ctx, req.ID, req.IsActive); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if existing.ManagerID != nil {
		if err := s.invalidator.Invalidate(ctx, *existing.ManagerID); err != nil {
			slog.Warn("failed to invalidate hierarchy cache", "user_id", req.ID, "error", err)
		}
	}

	return nil
}
