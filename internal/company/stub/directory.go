package stub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hirestack/company-portal/internal/company/domain"
)

// Directory is the in-memory stand-in for the directory operations the
// backend does not serve yet. It fabricates placeholder data behind the same
// contract as the gRPC implementation, so swapping the real backend in never
// changes the handlers.
type Directory struct {
	mu    sync.Mutex
	links map[string][]domain.CompanyUser // keyed by company id
}

var _ domain.Directory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{links: map[string][]domain.CompanyUser{}}
}

func (d *Directory) CurrentCompany(ctx context.Context, id string) (*domain.Company, error) {
	_ = ctx
	if id == "" {
		id = "123e4567-e89b-12d3-a456-426614174000"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return &domain.Company{
		ID:          id,
		CompanyName: "Demo Company",
		CompanyID:   "DEMO001",
		Address:     "123 Business Street, City, State 12345",
		Email:       "contact@democompany.com",
		Phone:       "+91 9876543210",
		Industry:    1,
		LogoURL:     "https://via.placeholder.com/200",
		WebsiteURL:  "https://democompany.com",
		Description: "A leading technology company focused on innovation and excellence.",
		Status:      "ACTIVE",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (d *Directory) LinkUser(ctx context.Context, in domain.LinkUserInput) (*domain.CompanyUser, error) {
	_ = ctx
	assignedBy := in.AssignedBy
	if assignedBy == "" {
		assignedBy = "system"
	}
	link := domain.CompanyUser{
		ID:         uuid.NewString(),
		CompanyID:  in.CompanyID,
		UserID:     in.UserID,
		Role:       in.Role,
		IsActive:   true,
		AssignedBy: assignedBy,
		CreatedAt:  time.Now().UTC(),
	}

	d.mu.Lock()
	d.links[in.CompanyID] = append(d.links[in.CompanyID], link)
	d.mu.Unlock()

	return &link, nil
}

func (d *Directory) UnlinkUser(ctx context.Context, companyID, userID string) error {
	_ = ctx
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.links[companyID][:0]
	for _, link := range d.links[companyID] {
		if link.UserID != userID {
			kept = append(kept, link)
		}
	}
	d.links[companyID] = kept
	return nil
}

func (d *Directory) UpdateCompany(ctx context.Context, in domain.UpdateCompanyInput) (map[string]any, error) {
	_ = ctx
	updated := map[string]any{
		"id":        in.ID,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if in.CompanyName != "" {
		updated["companyName"] = in.CompanyName
	}
	if in.Address != "" {
		updated["address"] = in.Address
	}
	if in.Email != "" {
		updated["email"] = in.Email
	}
	if in.Phone != "" {
		updated["phone"] = in.Phone
	}
	if in.Industry != 0 {
		updated["industry"] = in.Industry
	}
	if in.LogoURL != "" {
		updated["logoUrl"] = in.LogoURL
	}
	if in.WebsiteURL != "" {
		updated["websiteUrl"] = in.WebsiteURL
	}
	if in.Description != "" {
		updated["description"] = in.Description
	}
	if in.UpdatedBy != "" {
		updated["updatedBy"] = in.UpdatedBy
	}
	return updated, nil
}

func (d *Directory) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	_ = ctx
	d.mu.Lock()
	linked := append([]domain.CompanyUser(nil), d.links[companyID]...)
	d.mu.Unlock()

	if len(linked) > 0 {
		return linked, nil
	}
	return placeholderUsers(companyID), nil
}

func placeholderUsers(companyID string) []domain.CompanyUser {
	now := time.Now().UTC()
	users := make([]domain.CompanyUser, 0, 3)
	for i, days := range []int{7, 3, 1} {
		assignedBy := "user-001"
		if i == 0 {
			assignedBy = "system"
		}
		users = append(users, domain.CompanyUser{
			ID:         uuid.NewString(),
			CompanyID:  companyID,
			UserID:     fmt.Sprintf("user-%03d", i+1),
			Role:       int32(i + 1),
			IsActive:   i < 2,
			AssignedBy: assignedBy,
			CreatedAt:  now.AddDate(0, 0, -days),
		})
	}
	return users
}
