package server

import (
	"net/http"
	"testing"

	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeWithoutCookie(t *testing.T) {
	svc := &fakeCompanyService{}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodGet, "/api/companies/me", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not authenticated", body["message"])
	assert.Zero(t, svc.detailsCalls)
}

func TestMeWithGarbageCookie(t *testing.T) {
	svc := &fakeCompanyService{}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodGet, "/api/companies/me", nil,
		&http.Cookie{Name: "company_token", Value: "not-a-jwt"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid token", body["message"])
	assert.Zero(t, svc.detailsCalls)
}

func TestMeReshapesCompanyName(t *testing.T) {
	svc := &fakeCompanyService{
		details: map[string]any{
			"company": map[string]any{
				"id":           "c-1",
				"company_name": "Acme Industries",
			},
			"metadata": map[string]any{"pan": "ABCDE1234F"},
		},
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodGet, "/api/companies/me", nil,
		issueTestToken(t, "c-1", "admin@acme.test"))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Acme Industries", data["companyName"])
	assert.Contains(t, data, "company")
	assert.Contains(t, data, "metadata")

	assert.Equal(t, "c-1", svc.lastDetailID, "lookup uses the session subject")
}

func TestMeBackendNotFound(t *testing.T) {
	svc := &fakeCompanyService{
		detailsErr: domain.NewBackendError(domain.ErrNotFound, "company not found"),
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodGet, "/api/companies/me", nil,
		issueTestToken(t, "c-404", "admin@acme.test"))

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "company not found", body["message"])
}

func TestRequestVerificationForwardsRawBody(t *testing.T) {
	svc := &fakeCompanyService{
		verifyRaw: []byte(`{"success":true,"status":"VERIFICATION_PENDING"}`),
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/companies/request-verification", nil,
		issueTestToken(t, "c-1", "admin@acme.test"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"status":"VERIFICATION_PENDING"}`, w.Body.String())
	assert.Equal(t, "c-1", svc.lastVerifyFor)
}

func TestRequestVerificationRequiresSession(t *testing.T) {
	svc := &fakeCompanyService{}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/companies/request-verification", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.verifyCalls)
}
