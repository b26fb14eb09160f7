package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/config"
)

// CookieName is the session cookie carrying the signed company token.
const CookieName = "company_token"

// MaxAge is the cookie lifetime in seconds, matching the token expiry.
const MaxAge = 86400

// Manager manages the auth session cookie lifecycle.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: CookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

// ReadToken returns the raw session token from the request cookie.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return "", false
	}
	if strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// Set attaches the token as an HTTP-only strict same-site cookie scoped to /.
func (m *Manager) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(m.cookieName, token, MaxAge, "/", "", m.secure, true)
}

// Clear overwrites the cookie with an empty, already-expired value.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
