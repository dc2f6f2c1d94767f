package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akibsaleh/dwellife-server/internal/models"
	"github.com/akibsaleh/dwellife-server/internal/services"
	"github.com/akibsaleh/dwellife-server/internal/testhelpers"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *services.TokenService, *testhelpers.InMemUserRepo) {
	t.Helper()
	tokens := services.NewTokenService("test-secret", time.Hour)
	users := testhelpers.NewInMemUserRepo()
	return NewAuthMiddleware(tokens, users), tokens, users
}

func addUser(t *testing.T, users *testhelpers.InMemUserRepo, email string, role models.RoleType) {
	t.Helper()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:    uuid.New(),
		Name:  "test",
		Email: email,
		Role:  role,
	}))
}

func okHandler(sawEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawEmail != nil {
			email, _ := UserEmail(r.Context())
			*sawEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeaderIs401(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	auth.Authenticate(okHandler(nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadTokenIs401(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	auth.Authenticate(okHandler(nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateExpiredTokenIs401(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	expired := services.NewTokenService("test-secret", -time.Minute)
	token, err := expired.Issue("alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Authenticate(okHandler(nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePutsEmailInContext(t *testing.T) {
	auth, tokens, _ := newAuthFixture(t)
	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	var sawEmail string
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Authenticate(okHandler(&sawEmail)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice@example.com", sawEmail)
}

func TestRequireAdminChecksStoredRole(t *testing.T) {
	auth, tokens, users := newAuthFixture(t)
	addUser(t, users, "admin@example.com", models.RoleAdmin)
	addUser(t, users, "user@example.com", models.RoleUser)

	chain := Chain(okHandler(nil), auth.Authenticate, auth.RequireAdmin)

	cases := []struct {
		email string
		want  int
	}{
		{"admin@example.com", http.StatusOK},
		{"user@example.com", http.StatusForbidden},
		{"stranger@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := tokens.Issue(tc.email)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)

		require.Equal(t, tc.want, rec.Code, "email %s", tc.email)
	}
}

func TestRequireMemberChecksStoredRole(t *testing.T) {
	auth, tokens, users := newAuthFixture(t)
	addUser(t, users, "member@example.com", models.RoleMember)
	addUser(t, users, "admin@example.com", models.RoleAdmin)

	chain := Chain(okHandler(nil), auth.Authenticate, auth.RequireMember)

	cases := []struct {
		email string
		want  int
	}{
		{"member@example.com", http.StatusOK},
		// Role checks are exact; an admin is not a member.
		{"admin@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := tokens.Issue(tc.email)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/member", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)

		require.Equal(t, tc.want, rec.Code, "email %s", tc.email)
	}
}

func TestRoleCheckSeesCurrentRole(t *testing.T) {
	auth, tokens, users := newAuthFixture(t)
	addUser(t, users, "cara@example.com", models.RoleMember)

	chain := Chain(okHandler(nil), auth.Authenticate, auth.RequireMember)
	token, err := tokens.Issue("cara@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Demotion takes effect immediately even with a live token.
	_, err = users.UpdateRole(context.Background(), "cara@example.com", models.RoleUser)
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/member", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	chain.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
