package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hirestack/company-portal/internal/auth/session"
	"github.com/hirestack/company-portal/internal/auth/token"
	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/hirestack/company-portal/internal/config"
	"github.com/hirestack/company-portal/internal/logger"
	"github.com/hirestack/company-portal/internal/metrics"
	"github.com/hirestack/company-portal/internal/reference"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with the portal middleware chain.
func NewEngine(cfg config.Config, m *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware())
	r.Use(metrics.GinMiddleware(m))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Server holds the portal's route handlers and their dependencies.
type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	companysvc domain.Service
	directory  domain.Directory
	tokens     *token.Manager
	sessions   *session.Manager
	industries *reference.Industries
	log        *zap.Logger
}

// ServerParams collects the Server dependencies.
type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	CompanySvc domain.Service
	Directory  domain.Directory
	Tokens     *token.Manager
	Sessions   *session.Manager
	Industries *reference.Industries
	Log        *zap.Logger
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		companysvc: p.CompanySvc,
		directory:  p.Directory,
		tokens:     p.Tokens,
		sessions:   p.Sessions,
		industries: p.Industries,
		log:        p.Log,
	}
}

// RegisterRoutes mounts every portal endpoint.
func (s *Server) RegisterRoutes() {
	api := s.engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.POST("/register", s.Register)

	companies := api.Group("/companies")
	companies.POST("/create", s.CreateCompany)
	companies.GET("/me", s.AuthRequired(), s.Me)
	companies.POST("/request-verification", s.AuthRequired(), s.RequestVerification)
	companies.GET("/current", s.CurrentCompany)
	companies.GET("/link-user", s.ListLinkedUsers)
	companies.POST("/link-user", s.LinkUser)
	companies.POST("/unlink-user", s.UnlinkUser)
	companies.POST("/update", s.UpdateCompany)
	companies.GET("/:companyId/users", s.CompanyUsers)

	api.GET("/reference/industries", s.Industries)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// Module wires the HTTP server.
var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(run),
)
