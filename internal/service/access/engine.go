package access

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

type engineImpl struct {
	resolver hierarchy.Resolver
	store    hierarchy.Store
}

func NewEngine(resolver hierarchy.Resolver, store hierarchy.Store) access.Engine {
	return &engineImpl{
		resolver: resolver,
		store:    store,
	}
}

var deny = access.Decision{Allowed: false, Reason: access.ReasonInsufficientPrivilege}

// CheckAccess implements access.Engine.
func (e *engineImpl) CheckAccess(ctx context.Context, actorID string, actorRole user.Role, targetOwnerID string) (access.Decision, error) {
	if !validator.IsValidID(actorID) {
		return deny, fmt.Errorf("actor id %q: %w", actorID, access.ErrMalformedIdentifier)
	}
	if !validator.IsValidID(targetOwnerID) {
		return deny, fmt.Errorf("target owner id %q: %w", targetOwnerID, access.ErrMalformedIdentifier)
	}

	// Rule 1: self-access needs no store round trip.
	if actorID == targetOwnerID {
		return access.Decision{Allowed: true, Reason: access.ReasonSelf}, nil
	}

	// "Owner does not exist" is a different condition than "exists but access
	// denied", so resolve the target before the role rules.
	_, found, err := e.store.FindByID(ctx, targetOwnerID)
	if err != nil {
		return deny, fmt.Errorf("lookup of target owner %s failed: %w", targetOwnerID, access.ErrStoreUnavailable)
	}
	if !found {
		return deny, access.ErrOwnerNotFound
	}

	// Rule 2: admin override.
	if actorRole == user.RoleAdmin {
		return access.Decision{Allowed: true, Reason: access.ReasonAdminOverride}, nil
	}

	// Rule 3: manager reaching a direct or indirect report.
	if actorRole == user.RoleManager {
		direct, err := e.resolver.IsDirectReport(ctx, actorID, targetOwnerID)
		if err != nil {
			return deny, fmt.Errorf("direct report check failed: %w", access.ErrStoreUnavailable)
		}
		if direct {
			return access.Decision{Allowed: true, Reason: access.ReasonHierarchy}, nil
		}

		descendant, err := e.resolver.IsDescendant(ctx, actorID, targetOwnerID)
		if err != nil {
			return deny, fmt.Errorf("descendant check failed: %w", access.ErrStoreUnavailable)
		}
		if descendant {
			return access.Decision{Allowed: true, Reason: access.ReasonHierarchy}, nil
		}
	}

	// Rule 4: everything else is denied.
	return deny, nil
}
