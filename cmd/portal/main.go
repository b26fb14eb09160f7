package main

import (
	"github.com/hirestack/company-portal/internal/auth/session"
	"github.com/hirestack/company-portal/internal/auth/token"
	"github.com/hirestack/company-portal/internal/company"
	"github.com/hirestack/company-portal/internal/config"
	"github.com/hirestack/company-portal/internal/logger"
	"github.com/hirestack/company-portal/internal/metrics"
	"github.com/hirestack/company-portal/internal/reference"
	"github.com/hirestack/company-portal/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		metrics.Module,
		reference.Module,
		token.Module,
		session.Module,
		company.Module,
		server.Module,
	)
	app.Run()
}
