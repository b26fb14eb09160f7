package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/auth/token"
)

const (
	contextSubjectKey = "company_id"
	contextEmailKey   = "company_email"
)

// AuthRequired verifies the session cookie and stores the principal on the
// request context. An unverifiable or expired token is treated the same as
// no session at all.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, &AuthError{Message: "Not authenticated"})
			return
		}

		claims, err := s.tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrTokenMissing) {
				AbortWithError(c, &AuthError{Message: "Not authenticated"})
				return
			}
			AbortWithError(c, &AuthError{Message: "Invalid token"})
			return
		}

		c.Set(contextSubjectKey, claims.Subject)
		c.Set(contextEmailKey, claims.Email)
		c.Next()
	}
}

// subjectFromSession returns the verified company id for the request, when a
// valid session cookie is present.
func (s *Server) subjectFromSession(c *gin.Context) (string, bool) {
	if subject := c.GetString(contextSubjectKey); subject != "" {
		return subject, true
	}

	raw, ok := s.sessions.ReadToken(c)
	if !ok {
		return "", false
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}
