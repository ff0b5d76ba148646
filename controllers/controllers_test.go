package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/blobstore"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/repositories/mocks"
	"github.com/blogem/opsledger/services"
	"github.com/blogem/opsledger/userctx"
)

const (
	testOrgID  = 7
	roleHeader = "X-Test-Role"
)

var fixedNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

type harness struct {
	router  *chi.Mux
	tokens  *authenticator.TokenIssuer
	orgs    *mocks.MockOrganizationRepository
	ppe     *mocks.MockPPERepository
	runs    *mocks.MockProductionRunRepository
	docs    *mocks.MockDocumentRepository
	tiers   *mocks.MockApprovalTierRepository
	osha    *mocks.MockOSHARepository
	auditDB *mocks.MockAuditRepository
}

// newHarness wires real services over repository mocks into the API router.
// Every request is made by ann@example.com in org 7 with the role given in
// the X-Test-Role header (member when absent).
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		orgs:    mocks.NewMockOrganizationRepository(t),
		ppe:     mocks.NewMockPPERepository(t),
		runs:    mocks.NewMockProductionRunRepository(t),
		docs:    mocks.NewMockDocumentRepository(t),
		tiers:   mocks.NewMockApprovalTierRepository(t),
		osha:    mocks.NewMockOSHARepository(t),
		auditDB: mocks.NewMockAuditRepository(t),
	}
	repos := &repositories.Repositories{
		Organization:  h.orgs,
		PPE:           h.ppe,
		ProductionRun: h.runs,
		Document:      h.docs,
		ApprovalTier:  h.tiers,
		OSHA:          h.osha,
		Audit:         h.auditDB,
	}
	srvs := services.NewServices(repos, services.Deps{
		Logger: zap.NewNop(),
		Blobs:  blobstore.NewMemory(),
		Now:    func() time.Time { return fixedNow },
	})

	tokens, err := authenticator.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	h.tokens = tokens

	ctrl := NewControllers(srvs, nil, tokens, zap.NewNop())
	h.router = chi.NewRouter()
	ctrl.MountAPI(h.router, Guards{
		Auth: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := userctx.SetUserID(r.Context(), "auth0|1")
				ctx = userctx.SetUserEmail(ctx, "ann@example.com")
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		},
		Organization: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				role := r.Header.Get(roleHeader)
				if role == "" {
					role = models.RoleMember
				}
				next.ServeHTTP(w, r.WithContext(userctx.SetOrganization(r.Context(), testOrgID, role)))
			})
		},
	})
	return h
}

func (h *harness) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPPEList(t *testing.T) {
	h := newHarness(t)
	h.ppe.EXPECT().List(mock.Anything, testOrgID, models.PPEFilter{
		Area:        "Packaging",
		Status:      "active",
		ListOptions: models.ListOptions{Search: "glove", SortBy: "task", Desc: true, Limit: 20},
	}).Return(nil, nil)

	rec := h.do(http.MethodGet, "/api/ppe-requirements?area=Packaging&status=active&q=glove&sort=task&order=desc&limit=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPPEList_BadQuery(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/ppe-requirements?limit=ten&offset=x", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"limit must be a whole number", "offset must be a whole number"}, decodeError(t, rec).Details)
}

func TestPPEGet(t *testing.T) {
	h := newHarness(t)
	h.ppe.EXPECT().GetByID(mock.Anything, testOrgID, 3).
		Return(&models.PPERequirement{ID: 3, Area: "Packaging", PPEType: "hand"}, nil)
	h.ppe.EXPECT().GetByID(mock.Anything, testOrgID, 4).
		Return(nil, models.ErrNotFound)

	rec := h.do(http.MethodGet, "/api/ppe-requirements/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"area":"Packaging"`)

	rec = h.do(http.MethodGet, "/api/ppe-requirements/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PPE requirement not found", decodeError(t, rec).Error)

	rec = h.do(http.MethodGet, "/api/ppe-requirements/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid PPE requirement ID", decodeError(t, rec).Error)
}

func TestPPECreate(t *testing.T) {
	h := newHarness(t)
	h.ppe.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.PPERequirement")).
		Run(func(_ context.Context, req *models.PPERequirement) { req.ID = 11 }).
		Return(nil)

	rec := h.do(http.MethodPost, "/api/ppe-requirements",
		`{"area":"Packaging","task":"Box sealing","ppe_type":"hand","is_mandatory":true,"effective_date":"2025-01-01","status":"active"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.PPERequirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, testOrgID, created.OrganizationID)
}

func TestPPECreate_Invalid(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/ppe-requirements",
		`{"task":"Box sealing","ppe_type":"hand","effective_date":"2025-01-01","status":"active"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Details, "Area is required")

	rec = h.do(http.MethodPost, "/api/ppe-requirements", `{"colour":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec).Error)
}

func TestPPEDelete(t *testing.T) {
	h := newHarness(t)
	h.ppe.EXPECT().Delete(mock.Anything, testOrgID, 3).Return(nil)
	h.ppe.EXPECT().Delete(mock.Anything, testOrgID, 4).Return(errors.New("database is locked"))

	rec := h.do(http.MethodDelete, "/api/ppe-requirements/3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(http.MethodDelete, "/api/ppe-requirements/4", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete PPE requirement", decodeError(t, rec).Error)
}

func TestProductionRunStatusConflict(t *testing.T) {
	h := newHarness(t)
	h.runs.EXPECT().GetByID(mock.Anything, testOrgID, 5).
		Return(&models.ProductionRun{ID: 5, OrganizationID: testOrgID, Status: models.RunCompleted}, nil)

	rec := h.do(http.MethodPost, "/api/production-runs/5/status", `{"status":"running"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Cannot change status of production run in its current state", body.Error)
	require.Len(t, body.Details, 1)
	assert.Contains(t, body.Details[0], "cannot move from completed to running")
}

func TestApprovalTierMatch(t *testing.T) {
	h := newHarness(t)
	end := 10000.0
	h.tiers.EXPECT().List(mock.Anything, testOrgID, mock.AnythingOfType("models.ApprovalTierFilter")).
		Return([]models.ApprovalTier{
			{ID: 1, Name: "Supervisor", Level: 1, IsActive: true, Thresholds: []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpLessThan, Value: 1000}}},
			{ID: 2, Name: "Manager", Level: 2, IsActive: true, Thresholds: []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpBetween, Value: 1000, ValueEnd: &end}}},
			{ID: 3, Name: "Director", Level: 3, IsActive: true},
		}, nil)

	rec := h.do(http.MethodGet, "/api/approval-tiers/match?category=purchase_order&amount=2500", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var match models.TierMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &match))
	require.NotNil(t, match.Tier)
	assert.Equal(t, "Manager", match.Tier.Name)
	assert.Equal(t, 2500.0, match.Amount)

	rec = h.do(http.MethodGet, "/api/approval-tiers/match?category=purchase_order", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"amount is required"}, decodeError(t, rec).Details)

	rec = h.do(http.MethodGet, "/api/approval-tiers/match?category=lunch&amount=5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentFileRoundTrip(t *testing.T) {
	h := newHarness(t)
	var storedKey string
	h.docs.EXPECT().GetByID(mock.Anything, testOrgID, 9).
		Return(&models.Document{ID: 9, OrganizationID: testOrgID, Title: "Diesel SDS"}, nil).Once()
	h.docs.EXPECT().SetFile(mock.Anything, mock.AnythingOfType("*models.Document")).
		Run(func(_ context.Context, doc *models.Document) { storedKey = doc.FileKey }).
		Return(nil)
	h.docs.EXPECT().GetByID(mock.Anything, testOrgID, 9).
		RunAndReturn(func(context.Context, int, int) (*models.Document, error) {
			return &models.Document{
				ID: 9, OrganizationID: testOrgID, FileKey: storedKey,
				FileName: "diesel.pdf", ContentType: "application/pdf", FileSize: 8,
			}, nil
		}).Once()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "diesel.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.7"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/9/file", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"file_name":"diesel.pdf"`)
	assert.NotContains(t, rec.Body.String(), storedKey, "blob keys stay internal")
	assert.True(t, strings.HasPrefix(storedKey, "org/7/documents/9/"))

	rec = h.do(http.MethodGet, "/api/documents/9/file", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=diesel.pdf`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7", rec.Body.String())
}

func TestDocumentUpload_MissingFile(t *testing.T) {
	h := newHarness(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "no file"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/9/file", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"File is required"}, decodeError(t, rec).Details)
}

func TestOSHAExport(t *testing.T) {
	h := newHarness(t)
	h.osha.EXPECT().List(mock.Anything, testOrgID, mock.AnythingOfType("models.OSHAFilter")).
		Return([]models.OSHAEntry{{
			ID: 1, CaseNumber: "2025-001", EmployeeName: "J. Rivera", JobTitle: "Operator",
			IncidentDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Classification: "days_away",
			DaysAway: 3, InjuryType: "injury",
		}}, nil)

	rec := h.do(http.MethodGet, "/api/osha-entries/export?year=2025", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="osha-300-2025.xlsx"`, rec.Header().Get("Content-Disposition"))

	book, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer book.Close()
	assert.Equal(t, []string{"Form 300", "Form 300A"}, book.GetSheetList())
}

func TestAuditLogRequiresAdmin(t *testing.T) {
	h := newHarness(t)
	h.auditDB.EXPECT().List(mock.Anything, testOrgID, 5).
		Return([]models.AuditLogEntry{{ID: 1, Method: "POST", Path: "/api/documents"}}, nil)

	rec := h.do(http.MethodGet, "/api/audit-log", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to read audit log", decodeError(t, rec).Error)

	rec = h.do(http.MethodGet, "/api/audit-log?limit=5", "", roleHeader, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"/api/documents"`)
}

func TestIssueToken(t *testing.T) {
	h := newHarness(t)
	h.orgs.EXPECT().GetMembership(mock.Anything, testOrgID, "ann@example.com").
		Return(&models.Membership{OrganizationID: testOrgID, UserEmail: "ann@example.com", Role: models.RoleAdmin}, nil)
	h.orgs.EXPECT().GetMembership(mock.Anything, 3, "ann@example.com").
		Return(nil, models.ErrNotFound)

	rec := h.do(http.MethodPost, "/api/token", `{"organization_id":7}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := h.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "auth0|1", claims.Subject)
	assert.Equal(t, testOrgID, claims.OrganizationID)

	rec = h.do(http.MethodPost, "/api/token", `{"organization_id":3}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// no body issues a token without an org claim
	rec = h.do(http.MethodPost, "/api/token", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOrganizationCreate(t *testing.T) {
	h := newHarness(t)
	h.orgs.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.Organization")).
		Run(func(_ context.Context, org *models.Organization) { org.ID = 21 }).
		Return(nil)
	h.orgs.EXPECT().AddMember(mock.Anything, &models.Membership{OrganizationID: 21, UserEmail: "ann@example.com", Role: models.RoleOwner}).
		Return(nil)

	rec := h.do(http.MethodPost, "/api/organizations", `{"name":"Acme Foods","slug":"acme-foods"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":21`)
}
