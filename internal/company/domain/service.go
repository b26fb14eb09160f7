package domain

import (
	"context"
	"encoding/json"
)

// Service is the company-management backend as the portal consumes it. The
// production implementation invokes the gRPC service dynamically; tests
// substitute fakes.
type Service interface {
	ValidateCredentials(ctx context.Context, email, password string) (*LoginResult, error)
	RegisterCompany(ctx context.Context, req RegisterRequest) (json.RawMessage, error)
	CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error)
	UpdateCompanyMetadata(ctx context.Context, in MetadataUpdate) (json.RawMessage, error)
	UpdateCompanyContact(ctx context.Context, in ContactUpdate) (json.RawMessage, error)
	UpdateCompanyBanking(ctx context.Context, in BankingUpdate) (json.RawMessage, error)
	GetCompanyFullDetails(ctx context.Context, id string) (map[string]any, error)
	RequestVerification(ctx context.Context, companyID string) (json.RawMessage, error)
}

// Directory serves the user-company association operations. Two
// implementations exist behind the same contract: an in-memory stub with
// placeholder data and a gRPC-backed one, selected by configuration, so the
// handlers never change when the stub is replaced.
type Directory interface {
	CurrentCompany(ctx context.Context, id string) (*Company, error)
	LinkUser(ctx context.Context, in LinkUserInput) (*CompanyUser, error)
	UnlinkUser(ctx context.Context, companyID, userID string) error
	UpdateCompany(ctx context.Context, in UpdateCompanyInput) (map[string]any, error)
	ListCompanyUsers(ctx context.Context, companyID string) ([]CompanyUser, error)
}
