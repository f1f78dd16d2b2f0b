package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/adminpanel-server/internal/api/http/handler"
	"github.com/dtroode/adminpanel-server/internal/api/http/middleware"
	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Router wires the admin API handlers and middleware into a gin engine.
type Router struct {
	userService    handler.UserService
	statsService   handler.StatsService
	emailService   handler.EmailService
	db             handler.Pinger
	sessionOracle  model.SessionOracle
	contextManager model.ContextManager
	registry       *prometheus.Registry
	publicURL      string
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	userService handler.UserService,
	statsService handler.StatsService,
	emailService handler.EmailService,
	db handler.Pinger,
	sessionOracle model.SessionOracle,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	publicURL string,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService:    userService,
		statsService:   statsService,
		emailService:   emailService,
		db:             db,
		sessionOracle:  sessionOracle,
		contextManager: contextManager,
		registry:       registry,
		publicURL:      publicURL,
		logger:         logger,
	}
}

// Register builds the engine. /metrics and /healthz are public; everything under /admin
// resolves the caller session first.
func (r *Router) Register() (*gin.Engine, error) {
	metrics, err := middleware.NewMetrics(r.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
	}
	logging := middleware.NewLogging(r.logger)
	session := middleware.NewSession(r.sessionOracle, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle, metrics.Handle)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	engine.GET("/healthz", handler.NewHealth(r.db, r.logger).Check)

	admin := engine.Group("/admin", session.Handle)
	r.registerUserRoutes(admin)
	r.registerStatsRoutes(admin)
	r.registerEmailRoutes(admin)

	return engine, nil
}

func (r *Router) registerUserRoutes(group *gin.RouterGroup) {
	h := handler.NewUsers(r.userService, r.contextManager, r.publicURL, r.logger)
	group.GET("/users", h.List)
	group.GET("/users/:userId", h.Get)
	group.PATCH("/users/:userId", h.Patch)
	group.DELETE("/users/:userId", h.Delete)
	group.PATCH("/users/:userId/pro-status", h.ProStatus)
}

func (r *Router) registerStatsRoutes(group *gin.RouterGroup) {
	h := handler.NewStats(r.statsService, r.contextManager, r.publicURL, r.logger)
	group.GET("/stats", h.Get)
}

func (r *Router) registerEmailRoutes(group *gin.RouterGroup) {
	h := handler.NewEmails(r.emailService, r.contextManager, r.publicURL, r.logger)
	group.POST("/emails/test", h.Test)
	group.GET("/emails/preview", h.Preview)
	group.GET("/emails/diagnostics", h.Diagnostics)
}
