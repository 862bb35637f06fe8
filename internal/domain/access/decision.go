package access

// Reason explains why a decision came out the way it did. Reasons are for
// internal logging only; outward responses stay generic so organizational
// structure never leaks to unauthorized callers.
type Reason string

const (
	ReasonSelf                  Reason = "self"
	ReasonAdminOverride         Reason = "admin_override"
	ReasonHierarchy             Reason = "hierarchy"
	ReasonInsufficientPrivilege Reason = "insufficient_privilege"
)

// Decision is derived fresh per evaluation and never persisted.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Actor is the authenticated identity performing a request, established
// upstream by the JWT middleware.
type Actor struct {
	ID   string
	Role string
}
