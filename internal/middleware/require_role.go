package middleware

import (
	"net/http"

	"warsztat/internal/auth"
	"warsztat/internal/models"
)

// RequireRole allows the request through only when the authenticated user's
// role is one of the allowed roles. Roles are disjoint duty areas, not a
// hierarchy: a Mechanic is not a lesser Receptionist.
func RequireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[models.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sess, ok := auth.SessionFromContext(req.Context())
			if !ok || sess == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if _, ok := allowedSet[sess.Role]; !ok {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
