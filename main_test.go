package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/blobstore"
	"github.com/blogem/opsledger/controllers"
	"github.com/blogem/opsledger/database"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/services"
)

type server struct {
	handler http.Handler
	token   string
}

func newServer(t *testing.T) *server {
	t.Helper()

	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "opsledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	registry := prometheus.NewRegistry()
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, services.Deps{
		Cache:  querycache.New(64, time.Minute, querycache.NewMetrics(registry)),
		Logger: zap.NewNop(),
		Blobs:  blobstore.NewMemory(),
	})

	tokens, err := authenticator.NewTokenIssuer("router-test-secret", time.Hour)
	require.NoError(t, err)
	raw, _, err := tokens.Issue("auth0|1", "ann@example.com", 0)
	require.NoError(t, err)

	r, err := setupRouter(routerDeps{
		ctrl:     controllers.NewControllers(srvs, nil, tokens, zap.NewNop()),
		tokens:   tokens,
		members:  srvs.Organization,
		audit:    repos.Audit,
		logger:   zap.NewNop(),
		registry: registry,
	})
	require.NoError(t, err)
	return &server{handler: r, token: raw}
}

func (s *server) do(method, path, body string, orgID int) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if orgID > 0 {
		req.Header.Set("X-Organization-ID", strconv.Itoa(orgID))
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "opsledger"}`, rec.Body.String())
}

func TestAPIRequiresAuthentication(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginDisabledWithoutProvider(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrganizationLifecycle(t *testing.T) {
	s := newServer(t)

	rec := s.do(http.MethodPost, "/api/organizations", `{"name":"Acme Foods","slug":"acme"}`, 0)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var org models.Organization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
	require.NotZero(t, org.ID)

	t.Run("dashboard is scoped to the organization", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/dashboard", "", org.ID)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var d models.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, models.Dashboard{}, d)
	})

	t.Run("other organizations are forbidden", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/dashboard", "", org.ID+100)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("mutations are audited", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/organizations/"+strconv.Itoa(org.ID)+"/members",
			`{"email":"bob@example.com","role":"viewer"}`, org.ID)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		// the audit write is asynchronous
		require.Eventually(t, func() bool {
			rec := s.do(http.MethodGet, "/api/audit-log", "", org.ID)
			if rec.Code != http.StatusOK {
				return false
			}
			var entries []models.AuditLogEntry
			if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
				return false
			}
			for _, e := range entries {
				if e.Method == http.MethodPost && strings.HasSuffix(e.Path, "/members") {
					return e.UserEmail == "ann@example.com" && e.OrganizationID == org.ID
				}
			}
			return false
		}, 2*time.Second, 20*time.Millisecond)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newServer(t)
	s.do(http.MethodGet, "/api/organizations", "", 0)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `opsledger_http_requests_total{method="GET",route="/api/organizations",status="200"} 1`)
}

func TestDescribe(t *testing.T) {
	err := describe(models.NewValidationErrors([]string{"Name is required", "Slug is required"}))
	assert.Equal(t, "validation failed:\n  Name is required\n  Slug is required", err.Error())

	plain := errors.New("database is locked")
	assert.Equal(t, plain, describe(plain))
}
