package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/middleware"
)

type fakeProvider struct {
	claims authenticator.Claims
}

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://idp.example.com/authorize?state=" + url.QueryEscape(state)
}

func (p *fakeProvider) ExchangeCode(_ context.Context, code string) (*authenticator.Token, error) {
	if code != "good-code" {
		return nil, errors.New("invalid_grant")
	}
	return &authenticator.Token{IDToken: "id-token"}, nil
}

func (p *fakeProvider) GetClaims(context.Context, *authenticator.Token) (authenticator.Claims, error) {
	return p.claims, nil
}

func authRouter(t *testing.T, provider authenticator.Provider) *chi.Mux {
	t.Helper()
	sessioner, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session"})
	require.NoError(t, err)

	ctrl := &Controllers{Auth: NewAuthController(provider, nil, nil, zap.NewNop())}
	r := chi.NewRouter()
	r.Use(sessioner)
	ctrl.MountAuth(r)
	r.With(middleware.RequireAuth(nil)).Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		email, _ := sess.Get(middleware.SessionUserEmail).(string)
		_, _ = w.Write([]byte(email))
	})
	return r
}

// send replays the session cookies of earlier responses
func send(r http.Handler, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginCallbackFlow(t *testing.T) {
	provider := &fakeProvider{claims: authenticator.Claims{
		"sub": "auth0|9", "email": "Ann@Example.com", "nickname": "ann",
	}}
	r := authRouter(t, provider)

	// protected page remembers the destination
	rec := send(r, httptest.NewRequest(http.MethodGet, "/whoami", nil), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = send(r, httptest.NewRequest(http.MethodGet, "/login", nil), cookies)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	rec = send(r, httptest.NewRequest(http.MethodGet, "/callback?state=wrong&code=good-code", nil), cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(r, httptest.NewRequest(http.MethodGet, "/callback?state="+url.QueryEscape(state)+"&code=good-code", nil), cookies)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/whoami", rec.Header().Get("Location"))

	rec = send(r, httptest.NewRequest(http.MethodGet, "/whoami", nil), cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann@example.com", rec.Body.String())

	rec = send(r, httptest.NewRequest(http.MethodGet, "/logout", nil), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	rec = send(r, httptest.NewRequest(http.MethodGet, "/whoami", nil), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestCallback_ExchangeFails(t *testing.T) {
	r := authRouter(t, &fakeProvider{})

	rec := send(r, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	cookies := rec.Result().Cookies()
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)

	rec = send(r, httptest.NewRequest(http.MethodGet, "/callback?state="+url.QueryEscape(location.Query().Get("state"))+"&code=bad", nil), cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_NotConfigured(t *testing.T) {
	r := authRouter(t, nil)

	rec := send(r, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
