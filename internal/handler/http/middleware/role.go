package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

// RequireAdmin gates account-management routes. Per-record reads are NOT
// gated here; those go through the access policy engine so the decision
// logic stays in one place.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
