package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/config"
	"github.com/avikm/job-board/internal/logger"
	"github.com/avikm/job-board/internal/metrics"
	"github.com/avikm/job-board/internal/realtime"
	"github.com/avikm/job-board/internal/repositories"
	"github.com/avikm/job-board/internal/server"
	"github.com/avikm/job-board/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	employers := repositories.NewEmployersRepository(dbContext.DB)
	admins := repositories.NewAdminsRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	publicJobs := repositories.NewCachedPublicJobs(jobs)

	tokens := auth.NewTokenService(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	bus := EventBus.New()

	hub, err := realtime.NewHub(bus, tokens, cfg.Server.AllowedOrigin)
	if err != nil {
		log.Fatalf("can't create realtime hub: %v", err)
	}

	accountsService := services.NewAccountsService(employers, admins, tokens)
	jobsService := services.NewJobsService(jobs, applications, publicJobs, employers)

	applicationsService, err := services.NewApplicationsService(bus, jobs, applications)
	if err != nil {
		log.Fatalf("can't create applications service: %v", err)
	}

	cleaner, err := services.NewOrphansCleaner(applications, jobs)
	if err != nil {
		log.Fatalf("can't create orphans cleaner: %v", err)
	}
	defer cleaner.Stop()

	srv, err := server.New(cfg.Server, cfg.Uploads, tokens,
		accountsService, jobsService, applicationsService, hub)
	if err != nil {
		log.Fatalf("can't create server: %v", err)
	}

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	hub.Close()
	log.Info("Services stopped.")
}
