package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

const internalError = "internal server error"

// base carries what every admin handler needs to read the caller and report failures.
type base struct {
	contextManager model.ContextManager
	publicURL      string
	logger         *logger.Logger
}

func (b base) session(c *gin.Context) *model.Session {
	session, _ := b.contextManager.GetSessionFromContext(c.Request.Context())
	return session
}

// handleError writes the response for a service error. Browsers that fail authorization are sent
// to the public site instead of seeing a raw error.
func (b base) handleError(c *gin.Context, err error) {
	kind := model.KindOf(err)

	if kind == model.KindUnauthorized && wantsHTML(c) {
		c.Redirect(http.StatusFound, b.publicURL)
		return
	}

	if kind != model.KindStore {
		b.logger.Debug("HTTP handler: request rejected",
			"route", c.FullPath(),
			"kind", kind.String(),
			"error", err.Error())
	}

	switch kind {
	case model.KindUnauthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": model.ErrUnauthorized.Error()})
	case model.KindSelfActionForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": messageOf(err, model.ErrSelfActionForbidden.Error())})
	case model.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case model.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
	case model.KindInvalidQuery, model.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": messageOf(err, err.Error())})
	default:
		_ = c.Error(err)
		b.logger.Error("HTTP handler: request failed",
			"route", c.FullPath(),
			"kind", kind.String(),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalError})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func messageOf(err error, fallback string) string {
	var detailed *model.DetailedError
	if errors.As(err, &detailed) {
		return detailed.Message
	}
	return fallback
}

func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}
