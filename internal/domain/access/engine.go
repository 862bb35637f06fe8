package access

import (
	"context"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// Engine converts "who is asking, for whose data" into an Allow/Deny
// decision, independent of what resource is being accessed. Every resource
// family must call this instead of re-deriving role checks inline.
type Engine interface {
	// CheckAccess evaluates the decision table (first match wins):
	//   1. actor == target owner          -> Allow (self)
	//   2. actor role is admin            -> Allow (admin_override)
	//   3. actor role is manager and the
	//      target is a direct or indirect
	//      report of the actor            -> Allow (hierarchy)
	//   4. otherwise                      -> Deny (insufficient_privilege)
	//
	// Store failures are returned as ErrStoreUnavailable together with a
	// denying decision; callers must never treat an errored check as Allow.
	CheckAccess(ctx context.Context, actorID string, actorRole user.Role, targetOwnerID string) (Decision, error)
}
