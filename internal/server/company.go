package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/company/domain"
	"go.uber.org/zap"
)

// CreateCompany validates the payload, creates the primary record and then
// attempts up to three best-effort enrichment updates. A follow-up failure is
// logged and its sub-result omitted; the primary record already exists, so
// partial enrichment is acceptable and the request still succeeds.
func (s *Server) CreateCompany(c *gin.Context) {
	var req domain.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("Invalid request body"))
		return
	}

	if msg, ok := domain.ValidateCreateCompany(req, s.industries.Valid); !ok {
		AbortWithError(c, newValidationError(msg))
		return
	}

	ctx := c.Request.Context()
	company, err := s.companysvc.CreateCompany(ctx, domain.CreateCompanyInput{
		CompanyName: req.CompanyName,
		CompanyID:   req.CompanyID,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		Industry:    *req.Industry,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	results := gin.H{"company": company}

	if md := req.Metadata; md != nil {
		if md.PAN != "" || md.GST != "" || md.TAN != "" {
			if out, err := s.companysvc.UpdateCompanyMetadata(ctx, domain.MetadataUpdate{
				ID:  company.ID,
				PAN: md.PAN,
				GST: md.GST,
				TAN: md.TAN,
			}); err != nil {
				s.log.Warn("company metadata update failed",
					zap.String("company_id", company.ID), zap.Error(err))
			} else {
				results["metadata"] = json.RawMessage(out)
			}
		}

		if sm := md.SocialMedia; sm != nil {
			if out, err := s.companysvc.UpdateCompanyContact(ctx, domain.ContactUpdate{
				CompanyID: company.ID,
				State:     sm.State,
				City:      sm.City,
				PinCode:   sm.PinCode,
				LinkedIn:  sm.LinkedIn,
				Instagram: sm.Instagram,
				Twitter:   sm.Twitter,
			}); err != nil {
				s.log.Warn("company contact update failed",
					zap.String("company_id", company.ID), zap.Error(err))
			} else {
				results["contact"] = json.RawMessage(out)
			}
		}

		if bk := md.Banking; bk != nil {
			if out, err := s.companysvc.UpdateCompanyBanking(ctx, domain.BankingUpdate{
				CompanyID:         company.ID,
				BankName:          bk.BankName,
				AccountNumber:     bk.AccountNumber,
				IFSCCode:          bk.IFSCCode,
				AccountHolderName: bk.AccountHolderName,
				BranchName:        bk.BranchName,
			}); err != nil {
				s.log.Warn("company banking update failed",
					zap.String("company_id", company.ID), zap.Error(err))
			} else {
				results["banking"] = json.RawMessage(out)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company registered successfully. Pending approval.",
		"data":    results,
	})
}
