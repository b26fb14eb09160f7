package token

import (
	"github.com/hirestack/company-portal/internal/config"
	"go.uber.org/fx"
)

// NewFromConfig builds the token manager with the configured signing secret.
func NewFromConfig(cfg config.Config) (*Manager, error) {
	return NewManager(cfg.JWTSecret, DefaultTTL)
}

var Module = fx.Module("auth.token",
	fx.Provide(NewFromConfig),
)
