package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/company/domain"
)

type linkUserRequest struct {
	CompanyID  string `json:"companyId"`
	UserID     string `json:"userId"`
	Role       *int32 `json:"role"`
	AssignedBy string `json:"assignedBy"`
}

type unlinkUserRequest struct {
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId"`
}

// CurrentCompany returns the company for the current session when one
// exists, or the directory's placeholder record.
func (s *Server) CurrentCompany(c *gin.Context) {
	id, _ := s.subjectFromSession(c)

	company, err := s.directory.CurrentCompany(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

// LinkUser associates a user with a company.
func (s *Server) LinkUser(c *gin.Context) {
	var req linkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("companyId, userId, and role are required"))
		return
	}

	if req.CompanyID == "" || req.UserID == "" || req.Role == nil || *req.Role == 0 {
		AbortWithError(c, newValidationError("companyId, userId, and role are required"))
		return
	}

	link, err := s.directory.LinkUser(c.Request.Context(), domain.LinkUserInput{
		CompanyID:  req.CompanyID,
		UserID:     req.UserID,
		Role:       *req.Role,
		AssignedBy: req.AssignedBy,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// ListLinkedUsers returns the associations for ?companyId=.
func (s *Server) ListLinkedUsers(c *gin.Context) {
	companyID := strings.TrimSpace(c.Query("companyId"))
	if companyID == "" {
		AbortWithError(c, newValidationError("companyId is required"))
		return
	}

	users, err := s.directory.ListCompanyUsers(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UnlinkUser removes a user-company association.
func (s *Server) UnlinkUser(c *gin.Context) {
	var req unlinkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("companyId and userId are required"))
		return
	}

	if req.CompanyID == "" || req.UserID == "" {
		AbortWithError(c, newValidationError("companyId and userId are required"))
		return
	}

	if err := s.directory.UnlinkUser(c.Request.Context(), req.CompanyID, req.UserID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User unlinked successfully",
	})
}

// UpdateCompany applies a directory-side company update.
func (s *Server) UpdateCompany(c *gin.Context) {
	var req domain.UpdateCompanyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("Company ID is required"))
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		AbortWithError(c, newValidationError("Company ID is required"))
		return
	}

	updated, err := s.directory.UpdateCompany(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CompanyUsers lists the users linked to the company in the path.
func (s *Server) CompanyUsers(c *gin.Context) {
	companyID := strings.TrimSpace(c.Param("companyId"))
	if companyID == "" {
		AbortWithError(c, newValidationError("Company ID is required"))
		return
	}

	users, err := s.directory.ListCompanyUsers(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
