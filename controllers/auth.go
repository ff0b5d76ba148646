package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/middleware"
	"github.com/blogem/opsledger/services"
	"github.com/blogem/opsledger/userctx"
)

// AuthController handles browser login and API token issuance
type AuthController struct {
	provider authenticator.Provider
	tokens   *authenticator.TokenIssuer
	orgs     services.OrganizationService
	logger   *zap.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(provider authenticator.Provider, tokens *authenticator.TokenIssuer, orgs services.OrganizationService, logger *zap.Logger) *AuthController {
	return &AuthController{provider: provider, tokens: tokens, orgs: orgs, logger: logger}
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.Error(w, "Login is not configured", http.StatusNotFound)
		return
	}

	state, err := generateRandomState()
	if err != nil {
		http.Error(w, "Failed to start login", http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set(middleware.SessionState, state)

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.Error(w, "Login is not configured", http.StatusNotFound)
		return
	}
	sess := session.GetSession(r)

	storedState, _ := sess.Get(middleware.SessionState).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	token, err := ac.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		ac.logger.Warn("authorization code exchange failed", zap.Error(err))
		http.Error(w, "Failed to exchange authorization code for a token", http.StatusUnauthorized)
		return
	}

	claims, err := ac.provider.GetClaims(r.Context(), token)
	if err != nil {
		ac.logger.Warn("ID token verification failed", zap.Error(err))
		http.Error(w, "Failed to verify ID token", http.StatusUnauthorized)
		return
	}
	if claims.Subject() == "" || claims.Email() == "" {
		http.Error(w, "The identity provider did not return a user and email address", http.StatusForbidden)
		return
	}

	sess.Set(middleware.SessionUserID, claims.Subject())
	sess.Set(middleware.SessionUserEmail, claims.Email())
	sess.Set(middleware.SessionUserName, claims.DisplayName())
	sess.Delete(middleware.SessionState)

	ac.logger.Info("user logged in", zap.String("user", claims.Email()))

	redirect := "/"
	if target, ok := sess.Get(middleware.SessionRedirectAfter).(string); ok && target != "" {
		redirect = target
		sess.Delete(middleware.SessionRedirectAfter)
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout clears the login from the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	for _, key := range []string{middleware.SessionUserID, middleware.SessionUserEmail, middleware.SessionUserName} {
		sess.Delete(key)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type tokenRequest struct {
	OrganizationID int `json:"organization_id"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken handles POST /api/token. An organization_id in the body is
// embedded as the token's org claim once membership is confirmed.
func (ac *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	if ac.tokens == nil {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "API tokens are not enabled"})
		return
	}

	var req tokenRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	email := userctx.GetUserEmail(ctx)
	if req.OrganizationID > 0 {
		if _, err := ac.orgs.Membership(ctx, req.OrganizationID, email); err != nil {
			respondError(w, err, "issue a token for", "organization")
			return
		}
	}

	raw, expires, err := ac.tokens.Issue(userctx.GetUserID(ctx), email, req.OrganizationID)
	if err != nil {
		ac.logger.Error("failed to issue API token", zap.Error(err), zap.String("user", email))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to issue token"})
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: raw, TokenType: "Bearer", ExpiresAt: expires})
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
