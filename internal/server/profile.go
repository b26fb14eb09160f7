package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated company's full details. The backend keeps the
// company name under company.company_name; the portal response carries it as
// a top-level camelCase companyName as well.
func (s *Server) Me(c *gin.Context) {
	subject := c.GetString(contextSubjectKey)

	details, err := s.companysvc.GetCompanyFullDetails(c.Request.Context(), subject)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := make(map[string]any, len(details)+1)
	for k, v := range details {
		data[k] = v
	}
	if company, ok := details["company"].(map[string]any); ok {
		if name, ok := company["company_name"].(string); ok {
			data["companyName"] = name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// RequestVerification forwards the session subject as the company identifier
// and passes the backend response through untouched.
func (s *Server) RequestVerification(c *gin.Context) {
	subject := c.GetString(contextSubjectKey)

	raw, err := s.companysvc.RequestVerification(c.Request.Context(), subject)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
