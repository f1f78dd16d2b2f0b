package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	grpcServer "github.com/dtroode/adminpanel-server/internal/api/grpc/server"
	httpContext "github.com/dtroode/adminpanel-server/internal/api/http/context"
	"github.com/dtroode/adminpanel-server/internal/api/http/router"
	httpServer "github.com/dtroode/adminpanel-server/internal/api/http/server"
	"github.com/dtroode/adminpanel-server/internal/config"
	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
	"github.com/dtroode/adminpanel-server/internal/notify"
	"github.com/dtroode/adminpanel-server/internal/repository/postgres"
	"github.com/dtroode/adminpanel-server/internal/server"
	"github.com/dtroode/adminpanel-server/internal/service"
	"github.com/dtroode/adminpanel-server/internal/session"
	storage "github.com/dtroode/adminpanel-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.CheckSecrets(); err != nil {
		logger.Fatal("refusing to start with insecure configuration", "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN,
		postgres.WithMaxConns(cfg.Database.MaxConns),
		postgres.WithStatementTimeout(cfg.Database.StatementTimeout),
	)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	gate := service.NewGate(userRepo, logger)
	limits := service.ListLimits{Default: cfg.AdminList.DefaultLimit, Max: cfg.AdminList.MaxLimit}
	userService := service.NewUsers(gate, userRepo, newAvatarStorage(ctx, cfg.Storage, logger), limits, logger)
	statsService := service.NewStats(gate, statsRepo, logger)

	var sender model.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = notify.NewResendSender(cfg.Email.ResendAPIKey)
	} else {
		logger.Warn("EMAIL_RESEND_API_KEY is not set, emails will not be delivered")
	}
	notifier, err := notify.New(notify.Options{
		APIKey:    cfg.Email.ResendAPIKey,
		AppURL:    cfg.Email.AppURL,
		BrandName: cfg.Email.BrandName,
	}, sender, logger)
	if err != nil {
		logger.Fatal("failed to initialize notifier", "error", err)
	}
	emailService := service.NewEmails(gate, notifier, cfg.Email.AppURL, logger)

	oracle := session.NewJWT(cfg.Session.Secret, cfg.Session.CookieName, logger)
	ctxMgr := httpContext.NewManager()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gin.SetMode(gin.ReleaseMode)
	engine, err := router.New(userService, statsService, emailService, db, oracle, ctxMgr, registry, cfg.HTTP.PublicURL, logger).Register()
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	servers := []model.Server{
		grpcServer.NewGRPCServer(fmt.Sprintf(":%s", cfg.GRPC.Port), logger),
		httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "server", s.Name(), "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "server", s.Name(), "error", err)
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// The ops listener goes first so health checks report NOT_SERVING while requests drain.
	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "server", s.Name(), "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newAvatarStorage connects to the avatar bucket. On failure the server runs without avatar
// cleanup.
func newAvatarStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.ObjectStorage {
	if !cfg.Enabled {
		return nil
	}

	client, err := storage.NewClient(ctx, storage.Options{
		Endpoint:      cfg.Endpoint,
		AccessKey:     cfg.AccessKey,
		SecretKey:     cfg.SecretKey,
		UseSSL:        cfg.UseSSL,
		Bucket:        cfg.Bucket,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize avatar storage, continuing without it", "error", err)
		return nil
	}

	return client
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
