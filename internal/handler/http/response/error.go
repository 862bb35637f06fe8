package response

import (
	"errors"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/access"
	"github.com/teampulse/teampulse-backend-go/internal/domain/assessment"
	"github.com/teampulse/teampulse-backend-go/internal/domain/attendance"
	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/feedback"
	"github.com/teampulse/teampulse-backend-go/internal/domain/performance"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access policy errors. Denials are deliberately generic: the body never
	// says whether the target exists inside the caller's hierarchy.
	case errors.Is(err, access.ErrAccessDenied):
		Forbidden(w, "Access denied")
	case errors.Is(err, access.ErrOwnerNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, access.ErrMalformedIdentifier):
		BadRequest(w, "Invalid user identifier", nil)
	case errors.Is(err, access.ErrStoreUnavailable):
		ServiceUnavailable(w, "Service temporarily unavailable")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyUsed):
		Conflict(w, "Email address already in use")
	case errors.Is(err, user.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, user.ErrCannotManageSelf):
		BadRequest(w, "A user cannot be their own manager", nil)
	case errors.Is(err, user.ErrManagerCycle):
		Conflict(w, "Assignment would create a reporting cycle")
	case errors.Is(err, user.ErrManagerRoleRequired):
		BadRequest(w, "Assigned manager must hold the manager or admin role", nil)
	case errors.Is(err, user.ErrCannotDeactivateSelf):
		BadRequest(w, "Cannot deactivate own account", nil)
	case errors.Is(err, user.ErrUserAlreadyActive):
		Conflict(w, "User is already active")
	case errors.Is(err, user.ErrUserAlreadyInactive):
		Conflict(w, "User is already deactivated")

	// Feedback domain errors
	case errors.Is(err, feedback.ErrRecipientNotFound):
		NotFound(w, "Recipient not found")
	case errors.Is(err, feedback.ErrSelfFeedback):
		BadRequest(w, "Cannot give feedback to yourself", nil)

	// Assessment / performance domain errors
	case errors.Is(err, assessment.ErrPeriodAlreadySubmitted):
		Conflict(w, "Assessment already submitted for this period")
	case errors.Is(err, performance.ErrSelfReview):
		BadRequest(w, "Cannot review own performance", nil)
	case errors.Is(err, performance.ErrDuplicateForPeriod):
		Conflict(w, "Review already exists for this period")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance session")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
