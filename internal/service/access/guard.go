package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// Guard bridges a resource family's "owner id" to the policy engine. Resource
// services hold one Guard and call RequireOwnerAccess before releasing any
// record scoped to another user.
type Guard struct {
	engine access.Engine
}

func NewGuard(engine access.Engine) *Guard {
	return &Guard{engine: engine}
}

// ActorFromContext extracts the authenticated actor from the JWT claims the
// verifier middleware put on the request context.
func ActorFromContext(ctx context.Context) (access.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return access.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		return access.Actor{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	role, _ := claims["role"].(string)

	return access.Actor{ID: actorID, Role: role}, nil
}

// RequireOwnerAccess resolves the actor from ctx and checks it against the
// owner of the requested resource. It returns nil only on an Allow decision;
// any uncertainty (missing claims, store failure) resolves to a denial.
func (g *Guard) RequireOwnerAccess(ctx context.Context, targetOwnerID string) error {
	actor, err := ActorFromContext(ctx)
	if err != nil {
		return access.ErrAccessDenied
	}

	decision, err := g.engine.CheckAccess(ctx, actor.ID, user.Role(actor.Role), targetOwnerID)
	if err != nil {
		// OwnerNotFound and MalformedIdentifier surface as-is; store faults
		// are logged operationally and still come back as a denial-shaped error.
		slog.Warn("access check did not complete",
			"actor_id", actor.ID,
			"target_owner_id", targetOwnerID,
			"error", err,
		)
		return err
	}

	if !decision.Allowed {
		return access.ErrAccessDenied
	}

	return nil
}

// Actor is a convenience passthrough so resource services depending on the
// guard do not also import jwtauth.
func (g *Guard) Actor(ctx context.Context) (access.Actor, error) {
	return ActorFromContext(ctx)
}
