package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
}
