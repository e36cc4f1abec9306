package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/config"
	"github.com/avikm/job-board/internal/realtime"
	"github.com/avikm/job-board/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	cfg          config.ServerConfig
	uploads      config.UploadsConfig
	tokens       *auth.TokenService
	accounts     *services.Accounts
	jobs         *services.Jobs
	applications *services.Applications
	hub          *realtime.Hub
	http         *http.Server
}

func New(cfg config.ServerConfig, uploads config.UploadsConfig, tokens *auth.TokenService,
	accounts *services.Accounts, jobs *services.Jobs, applications *services.Applications,
	hub *realtime.Hub) (*Server, error) {

	if tokens == nil || accounts == nil || jobs == nil || applications == nil || hub == nil {
		return nil, errors.New("missing server dependency")
	}

	if err := registerEnumValidators(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:          cfg,
		uploads:      uploads,
		tokens:       tokens,
		accounts:     accounts,
		jobs:         jobs,
		applications: applications,
		hub:          hub,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestMetrics())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigin == "" || cfg.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	s.registerRoutes(engine)

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}
	return s, nil
}

func (s *Server) registerRoutes(engine *gin.Engine) {

	engine.Static("/uploads", s.uploads.Dir)
	engine.GET("/ws", func(c *gin.Context) {
		s.hub.Serve(c.Writer, c.Request)
	})

	api := engine.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/signup", s.adminSignup)
			admin.POST("/login", s.adminLogin)
			admin.GET("/jobs", s.requireAdmin(), s.adminListJobs)
			admin.PUT("/jobs/:id/status", s.requireAdmin(), s.adminSetJobStatus)
		}

		employer := api.Group("/employer")
		{
			employer.POST("/register", s.employerRegister)
			employer.POST("/login", s.employerLogin)
			employer.GET("/profile", s.requireEmployer(), s.employerProfile)
			employer.GET("/me/jobs", s.requireEmployer(), s.employerJobs)
			employer.GET("/me/applications", s.requireEmployer(), s.employerApplications)
		}

		api.GET("/jobs", s.listPublicJobs)
		api.GET("/jobs/employer", s.requireEmployer(), s.employerJobs)
		api.GET("/jobs/:id", s.getJob)
		api.POST("/jobs", s.requireEmployer(), s.createJob)
		api.PUT("/jobs/:id", s.requireEmployer(), s.updateJob)
		api.DELETE("/jobs/:id", s.requireEmployer(), s.deleteJob)
		api.POST("/jobs/:id/apply", rateLimitByIP(1, 5), s.apply)
	}
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) Run() error {
	log.Infof("server listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
