package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/auth/token"
	"github.com/hirestack/company-portal/internal/company/domain"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Login checks credentials against the backend and opens a session. Backend
// rejections and failures alike come back as 401 with a generic message; the
// cookie is only set on success.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("email and password are required"))
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		AbortWithError(c, newValidationError("email and password are required"))
		return
	}

	result, err := s.companysvc.ValidateCredentials(c.Request.Context(), email, req.Password)
	if err != nil {
		message := domain.BackendDetail(err)
		if message == "" {
			message = "Login failed"
		}
		AbortWithError(c, &AuthError{Message: message})
		return
	}

	if !result.Success || result.Company == nil {
		AbortWithError(c, &AuthError{Message: "Invalid credentials"})
		return
	}

	signed, err := s.tokens.Issue(result.Company.ID, result.Company.Email, token.PrincipalTypeCompany)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, signed)
	s.log.Info("login successful", zap.String("email", result.Company.Email))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": result.Company,
		"message": "Login successful",
	})
}

// Logout clears the session cookie unconditionally; no backend call.
func (s *Server) Logout(c *gin.Context) {
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Register forwards a new company account to the backend. A duplicate signal
// maps to 409 via the taxonomy.
func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("Missing required fields"))
		return
	}

	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		AbortWithError(c, newValidationError("Missing required fields"))
		return
	}

	data, err := s.companysvc.RegisterCompany(c.Request.Context(), domain.RegisterRequest{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
