package server

import (
	"net/http"
	"testing"

	"github.com/hirestack/company-portal/internal/auth/token"
	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	svc := &fakeCompanyService{
		loginResult: &domain.LoginResult{
			Success: true,
			Company: &domain.Company{ID: "c-1", CompanyName: "Acme", Email: "admin@acme.test"},
		},
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@acme.test",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])

	company, ok := body["company"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c-1", company["id"])

	ck := sessionCookie(t, w)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)

	tokens, err := token.NewManager(testSecret, 0)
	require.NoError(t, err)
	claims, err := tokens.Verify(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, "c-1", claims.Subject)
	assert.Equal(t, "admin@acme.test", claims.Email)
	assert.Equal(t, token.PrincipalTypeCompany, claims.PrincipalType)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &fakeCompanyService{
		loginResult: &domain.LoginResult{Success: false},
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@acme.test",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.Nil(t, sessionCookie(t, w), "failed login must not set a cookie")
}

func TestLoginBackendFailure(t *testing.T) {
	svc := &fakeCompanyService{
		loginErr: domain.NewBackendError(domain.ErrUnavailable, ""),
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@acme.test",
		"password": "secret",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login failed", body["message"])
	assert.Nil(t, sessionCookie(t, w))
}

func TestLoginMissingFields(t *testing.T) {
	svc := &fakeCompanyService{}
	engine := newTestServer(t, svc, &fakeDirectory{})

	for _, payload := range []map[string]any{
		{},
		{"email": "admin@acme.test"},
		{"password": "secret"},
		{"email": "   ", "password": "secret"},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "email and password are required", body["message"])
	}
	assert.Zero(t, svc.validateCalls, "validation failures must not reach the backend")
}

func TestLogoutClearsCookie(t *testing.T) {
	engine := newTestServer(t, &fakeCompanyService{}, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Logged out successfully", body["message"])

	ck := sessionCookie(t, w)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Less(t, ck.MaxAge, 0)
}

func TestRegisterSuccess(t *testing.T) {
	svc := &fakeCompanyService{registerData: []byte(`{"id":"c-9"}`)}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", map[string]any{
		"companyName": "Acme",
		"email":       "admin@acme.test",
		"password":    "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c-9", data["id"])
	assert.Equal(t, 1, svc.registerCalls)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := &fakeCompanyService{}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", map[string]any{
		"companyName": "Acme",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Missing required fields", body["message"])
	assert.Zero(t, svc.registerCalls)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := &fakeCompanyService{
		registerErr: domain.NewBackendError(domain.ErrAlreadyExists, ""),
	}
	engine := newTestServer(t, svc, &fakeDirectory{})

	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", map[string]any{
		"companyName": "Acme",
		"email":       "admin@acme.test",
		"password":    "secret",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Company with this ID or Email already exists", body["message"])
}
