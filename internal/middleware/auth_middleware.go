package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/repositories"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/utils"
)

type contextKey string

// ContextKeyUserEmail holds the authenticated email for downstream
// handlers.
const ContextKeyUserEmail = contextKey("userEmail")

// AuthMiddleware holds the collaborators the auth chain needs. They
// are injected here rather than captured by handler closures, so the
// role checks always see the user's current role in the store.
type AuthMiddleware struct {
	tokens *services.TokenService
	users  repositories.UserRepository
}

func NewAuthMiddleware(tokens *services.TokenService, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate rejects requests without a valid bearer token and puts
// the token's email into the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Unauthorized access", nil,
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := m.tokens.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, err,
				)
				return
			}
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeForbidden, "Forbidden access", nil, err,
			)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUserEmail, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only users whose stored role is admin. It must
// run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.requireRole(models.RoleAdmin, next)
}

// RequireMember allows only users whose stored role is member.
func (m *AuthMiddleware) RequireMember(next http.Handler) http.Handler {
	return m.requireRole(models.RoleMember, next)
}

func (m *AuthMiddleware) requireRole(role models.RoleType, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := UserEmail(r.Context())
		if !ok {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Unauthorized access", nil,
			)
			return
		}

		u, err := m.users.GetByEmail(r.Context(), email)
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Could not verify role", nil, err,
			)
			return
		}
		if u == nil || u.Role != role {
			utils.RespondErrorWithCode(
				w, http.StatusForbidden, utils.ErrCodeForbidden, "Forbidden access", nil,
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserEmail extracts the authenticated email set by Authenticate.
func UserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyUserEmail).(string)
	return email, ok && email != ""
}
