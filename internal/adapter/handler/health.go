package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/storage"
)

const apiVersion = "1.0.0"

// Health serves the liveness endpoints
type Health struct {
	store            storage.AudioStore
	geminiConfigured bool
	logger           *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storage.AudioStore, geminiConfigured bool, logger *zap.Logger) *Health {
	return &Health{
		store:            store,
		geminiConfigured: geminiConfigured,
		logger:           logger,
	}
}

// Root handles GET /
// @Summary      Service banner
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.RootResponse
// @Router       / [get]
func (h *Health) Root(c echo.Context) error {
	return HandleSuccess(h.logger, c, http.StatusOK, common.RootResponse{
		Message: "Meeting Intelligence API",
		Status:  "healthy",
		Version: apiVersion,
	})
}

// Check handles GET /health
// @Summary      Health check
// @Description  Reports whether Gemini is configured and the audio store is reachable
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (h *Health) Check(c echo.Context) error {
	return HandleSuccess(h.logger, c, http.StatusOK, common.HealthResponse{
		Status:           "healthy",
		GeminiConfigured: h.geminiConfigured,
		UploadDir:        h.store.Location(),
		UploadDirExists:  h.store.Ready(c.Request().Context()),
	})
}
