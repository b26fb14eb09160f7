package grpcclient

import (
	"context"
	"encoding/json"

	"github.com/hirestack/company-portal/internal/company/domain"
)

// Directory is the gRPC-backed user-company association implementation. It
// shares the Backend's call path and replaces the in-memory stub when
// COMPANY_DIRECTORY_BACKEND=grpc.
type Directory struct {
	b *Backend
}

var _ domain.Directory = (*Directory)(nil)

func NewDirectory(b *Backend) *Directory {
	return &Directory{b: b}
}

func (d *Directory) CurrentCompany(ctx context.Context, id string) (*domain.Company, error) {
	in := map[string]string{"id": id}
	var raw json.RawMessage
	if err := d.b.call(ctx, "GetCompany", in, &raw); err != nil {
		return nil, err
	}

	// The backend wraps the entity as {company: {...}}.
	var wrapped struct {
		Company *domain.Company `json:"company"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Company != nil {
		return wrapped.Company, nil
	}

	var company domain.Company
	if err := json.Unmarshal(raw, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (d *Directory) LinkUser(ctx context.Context, in domain.LinkUserInput) (*domain.CompanyUser, error) {
	var out domain.CompanyUser
	if err := d.b.call(ctx, "LinkUserToCompany", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Directory) UnlinkUser(ctx context.Context, companyID, userID string) error {
	in := map[string]string{"companyId": companyID, "userId": userID}
	return d.b.call(ctx, "UnlinkUserFromCompany", in, nil)
}

func (d *Directory) UpdateCompany(ctx context.Context, in domain.UpdateCompanyInput) (map[string]any, error) {
	var out map[string]any
	if err := d.b.call(ctx, "UpdateCompany", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Directory) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	in := map[string]string{"companyId": companyID}
	var raw json.RawMessage
	if err := d.b.call(ctx, "ListCompanyUsers", in, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Users []domain.CompanyUser `json:"users"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Users != nil {
		return wrapped.Users, nil
	}

	var users []domain.CompanyUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}
