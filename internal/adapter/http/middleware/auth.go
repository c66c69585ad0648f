package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/infrastructure/auth"
	"github.com/debtwise/debtwise/internal/infrastructure/metrics"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated user
	UserContextKey ContextKey = "user"
)

// AuthMiddleware creates an authentication middleware. Every authenticated
// request carries the user's organization; handlers scope all reads and
// writes to it.
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				metrics.Default().AuthAttempts.WithLabelValues("rejected").Inc()
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			metrics.Default().AuthAttempts.WithLabelValues("accepted").Inc()

			user := &domain.User{
				ID:             claims.UserID,
				OrganizationID: claims.OrganizationID,
				Email:          claims.Email,
				Role:           claims.Role,
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwner rejects requests from users below the owner role. Savings
// updates mutate organization-level figures and are owner-only.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if user.Role != domain.RoleOwner {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts the authenticated user from context
func GetUserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	return user, ok
}
