package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// StatsService computes the dashboard snapshot.
type StatsService interface {
	Snapshot(ctx context.Context, session *model.Session) (model.StatsSnapshot, error)
}

// Stats handles GET /admin/stats.
type Stats struct {
	base
	statsService StatsService
}

// NewStats creates a new Stats handler.
func NewStats(statsService StatsService, contextManager model.ContextManager, publicURL string, logger *logger.Logger) *Stats {
	return &Stats{
		base:         base{contextManager: contextManager, publicURL: publicURL, logger: logger},
		statsService: statsService,
	}
}

// Get returns a freshly computed snapshot.
func (h *Stats) Get(c *gin.Context) {
	snapshot, err := h.statsService.Snapshot(c.Request.Context(), h.session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if snapshot.MessagesByProvider == nil {
		snapshot.MessagesByProvider = []model.ProviderUsage{}
	}
	if snapshot.TopUsers == nil {
		snapshot.TopUsers = []model.TopUser{}
	}

	c.JSON(http.StatusOK, snapshot)
}
