package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/auth/session"
	"github.com/hirestack/company-portal/internal/auth/token"
	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/hirestack/company-portal/internal/config"
	"github.com/hirestack/company-portal/internal/reference"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "server-test-secret"

type fakeCompanyService struct {
	validateCalls int
	loginResult   *domain.LoginResult
	loginErr      error

	registerCalls int
	registerData  json.RawMessage
	registerErr   error

	createCalls   int
	createCompany *domain.Company
	createErr     error
	lastCreate    domain.CreateCompanyInput

	metadataCalls int
	metadataOut   json.RawMessage
	metadataErr   error

	contactCalls int
	contactOut   json.RawMessage
	contactErr   error

	bankingCalls int
	bankingOut   json.RawMessage
	bankingErr   error

	detailsCalls int
	details      map[string]any
	detailsErr   error
	lastDetailID string

	verifyCalls   int
	verifyRaw     json.RawMessage
	verifyErr     error
	lastVerifyFor string
}

var _ domain.Service = (*fakeCompanyService)(nil)

func (f *fakeCompanyService) ValidateCredentials(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	_ = ctx
	_ = email
	_ = password
	f.validateCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeCompanyService) RegisterCompany(ctx context.Context, req domain.RegisterRequest) (json.RawMessage, error) {
	_ = ctx
	_ = req
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerData, nil
}

func (f *fakeCompanyService) CreateCompany(ctx context.Context, in domain.CreateCompanyInput) (*domain.Company, error) {
	_ = ctx
	f.createCalls++
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createCompany, nil
}

func (f *fakeCompanyService) UpdateCompanyMetadata(ctx context.Context, in domain.MetadataUpdate) (json.RawMessage, error) {
	_ = ctx
	_ = in
	f.metadataCalls++
	if f.metadataErr != nil {
		return nil, f.metadataErr
	}
	return f.metadataOut, nil
}

func (f *fakeCompanyService) UpdateCompanyContact(ctx context.Context, in domain.ContactUpdate) (json.RawMessage, error) {
	_ = ctx
	_ = in
	f.contactCalls++
	if f.contactErr != nil {
		return nil, f.contactErr
	}
	return f.contactOut, nil
}

func (f *fakeCompanyService) UpdateCompanyBanking(ctx context.Context, in domain.BankingUpdate) (json.RawMessage, error) {
	_ = ctx
	_ = in
	f.bankingCalls++
	if f.bankingErr != nil {
		return nil, f.bankingErr
	}
	return f.bankingOut, nil
}

func (f *fakeCompanyService) GetCompanyFullDetails(ctx context.Context, id string) (map[string]any, error) {
	_ = ctx
	f.detailsCalls++
	f.lastDetailID = id
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func (f *fakeCompanyService) RequestVerification(ctx context.Context, companyID string) (json.RawMessage, error) {
	_ = ctx
	f.verifyCalls++
	f.lastVerifyFor = companyID
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyRaw, nil
}

type fakeDirectory struct {
	current       *domain.Company
	currentErr    error
	lastCurrentID string

	linked  *domain.CompanyUser
	linkErr error

	unlinkErr error

	updated   map[string]any
	updateErr error

	users       []domain.CompanyUser
	usersErr    error
	lastListFor string
}

var _ domain.Directory = (*fakeDirectory)(nil)

func (f *fakeDirectory) CurrentCompany(ctx context.Context, id string) (*domain.Company, error) {
	_ = ctx
	f.lastCurrentID = id
	return f.current, f.currentErr
}

func (f *fakeDirectory) LinkUser(ctx context.Context, in domain.LinkUserInput) (*domain.CompanyUser, error) {
	_ = ctx
	_ = in
	return f.linked, f.linkErr
}

func (f *fakeDirectory) UnlinkUser(ctx context.Context, companyID, userID string) error {
	_ = ctx
	_ = companyID
	_ = userID
	return f.unlinkErr
}

func (f *fakeDirectory) UpdateCompany(ctx context.Context, in domain.UpdateCompanyInput) (map[string]any, error) {
	_ = ctx
	_ = in
	return f.updated, f.updateErr
}

func (f *fakeDirectory) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	_ = ctx
	f.lastListFor = companyID
	return f.users, f.usersErr
}

func newTestServer(t *testing.T, svc domain.Service, dir domain.Directory) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	cfg := config.Config{Environment: "test", JWTSecret: testSecret}
	tokens, err := token.NewManager(testSecret, 0)
	require.NoError(t, err)
	industries, err := reference.NewIndustries(zap.NewNop())
	require.NoError(t, err)

	s := NewServer(ServerParams{
		Gin:        engine,
		Cfg:        cfg,
		CompanySvc: svc,
		Directory:  dir,
		Tokens:     tokens,
		Sessions:   session.NewManager(cfg),
		Industries: industries,
		Log:        zap.NewNop(),
	})
	s.RegisterRoutes()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	return nil
}

func issueTestToken(t *testing.T, subject, email string) *http.Cookie {
	t.Helper()
	tokens, err := token.NewManager(testSecret, 0)
	require.NoError(t, err)
	raw, err := tokens.Issue(subject, email, token.PrincipalTypeCompany)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: raw}
}
