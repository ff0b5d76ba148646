package authenticator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	raw, expires, err := issuer.Issue("auth0|123", "Jane@Example.com", 4)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "auth0|123", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, 4, claims.OrganizationID)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	raw, _, err := other.Issue("auth0|123", "jane@example.com", 1)
	require.NoError(t, err)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken, "wrong secret")

	expired, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _, err = expired.Issue("auth0|123", "jane@example.com", 1)
	require.NoError(t, err)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "x"},
	})
	raw, err = none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken, "alg none")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", Subject: "x"},
	})
	raw, err = foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken, "issuer")

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenIssuer("secret", 0)
	assert.Error(t, err)

	issuer, err := NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	_, _, err = issuer.Issue("", "jane@example.com", 1)
	assert.Error(t, err)
}

func TestClaimsHelpers(t *testing.T) {
	claims := Claims{"sub": "auth0|9", "email": " Pat@Plant.COM ", "name": "Pat"}
	assert.Equal(t, "auth0|9", claims.Subject())
	assert.Equal(t, "pat@plant.com", claims.Email())
	assert.Equal(t, "Pat", claims.DisplayName())
	assert.Equal(t, "auth0|9", Claims{"sub": "auth0|9"}.DisplayName())
}

func TestOpenIDConfig(t *testing.T) {
	cfg := OpenIDConfig{Domain: "tenant.eu.auth0.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost:8080/callback"}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "https://tenant.eu.auth0.com/", cfg.IssuerURL())

	cfg.Domain = "http://localhost:9999/realms/plant/"
	assert.Equal(t, "http://localhost:9999/realms/plant/", cfg.IssuerURL())

	cfg.ClientSecret = ""
	assert.EqualError(t, cfg.Validate(), "client secret is required")
}
