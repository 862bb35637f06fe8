package access

import "errors"

var (
	// ErrAccessDenied is surfaced as a generic denial. It deliberately carries
	// no detail about whether the target exists inside the caller's hierarchy.
	ErrAccessDenied = errors.New("access denied")

	// ErrOwnerNotFound means the target owner id resolves to no user. Callers
	// map this to 404 rather than 403.
	ErrOwnerNotFound = errors.New("resource owner not found")

	// ErrStoreUnavailable wraps user store failures. The policy engine always
	// resolves it to Deny; it is an operational fault, not a security event.
	ErrStoreUnavailable = errors.New("user store unavailable")

	// ErrMalformedIdentifier is returned before any store query is attempted.
	ErrMalformedIdentifier = errors.New("malformed user identifier")
)
