package domain

import "time"

// Company is the backend-owned entity as the portal shapes it. Storage and
// lifecycle live in the company service; the portal only forwards and
// displays.
type Company struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	CompanyID   string `json:"companyId"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Industry    int32  `json:"industry"`
	LogoURL     string `json:"logoUrl,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
}

// CompanyUser is a user-company association record.
type CompanyUser struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"companyId"`
	UserID     string    `json:"userId"`
	Role       int32     `json:"role"`
	IsActive   bool      `json:"isActive"`
	AssignedBy string    `json:"assignedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LoginResult is the backend's credential-check response.
type LoginResult struct {
	Success bool     `json:"success"`
	Company *Company `json:"company"`
	Message string   `json:"message,omitempty"`
}

// RegisterRequest creates the initial company account.
type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// CreateCompanyRequest is the browser payload for company creation. Industry
// is a pointer so an absent field and the zero "Select Domain" sentinel stay
// distinguishable.
type CreateCompanyRequest struct {
	CompanyName string                 `json:"companyName"`
	CompanyID   string                 `json:"companyId"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	Address     string                 `json:"address"`
	Industry    *int32                 `json:"industry"`
	LogoURL     string                 `json:"logoUrl"`
	WebsiteURL  string                 `json:"websiteUrl"`
	Description string                 `json:"description"`
	Metadata    *CreateCompanyMetadata `json:"metadata"`
}

// CreateCompanyMetadata carries the optional enrichment applied after the
// primary create succeeds.
type CreateCompanyMetadata struct {
	PAN         string          `json:"pan"`
	GST         string          `json:"gst"`
	TAN         string          `json:"tan"`
	SocialMedia *SocialMedia    `json:"socialMedia"`
	Banking     *BankingDetails `json:"banking"`
}

// SocialMedia holds contact and social profile fields.
type SocialMedia struct {
	State     string `json:"state"`
	City      string `json:"city"`
	PinCode   string `json:"pinCode"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// BankingDetails holds company banking fields.
type BankingDetails struct {
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
	BranchName        string `json:"branchName"`
}

// CreateCompanyInput is the primary create call forwarded to the backend.
type CreateCompanyInput struct {
	CompanyName string `json:"companyName"`
	CompanyID   string `json:"companyId"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Industry    int32  `json:"industry"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Description string `json:"description"`
}

// MetadataUpdate is the best-effort PAN/GST/TAN follow-up.
type MetadataUpdate struct {
	ID  string `json:"id"`
	PAN string `json:"pan"`
	GST string `json:"gst"`
	TAN string `json:"tan"`
}

// ContactUpdate is the best-effort contact/social follow-up.
type ContactUpdate struct {
	CompanyID string `json:"companyId"`
	State     string `json:"state"`
	City      string `json:"city"`
	PinCode   string `json:"pinCode"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// BankingUpdate is the best-effort banking follow-up.
type BankingUpdate struct {
	CompanyID         string `json:"companyId"`
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
	BranchName        string `json:"branchName"`
}

// LinkUserInput associates a user with a company.
type LinkUserInput struct {
	CompanyID  string `json:"companyId"`
	UserID     string `json:"userId"`
	Role       int32  `json:"role"`
	AssignedBy string `json:"assignedBy"`
}

// UpdateCompanyInput is the directory-side company update payload.
type UpdateCompanyInput struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Industry    int32  `json:"industry,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`
	Description string `json:"description,omitempty"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
}
