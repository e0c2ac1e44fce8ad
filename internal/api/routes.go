package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/radityarh/pulseband/internal/auth"
	"github.com/radityarh/pulseband/internal/websocket"
	"github.com/radityarh/pulseband/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, heartbeats *usecase.HeartbeatService, bracelets *usecase.BraceletService, hub *websocket.Hub, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "pulseband-server",
		})
	})

	h := &Handler{
		heartbeats: heartbeats,
		bracelets:  bracelets,
		logger:     logger,
	}

	// Generation pipeline
	e.POST("/generate_heartbeat", h.GenerateHeartbeat)
	e.POST("/generate_3d_bracelet", h.GenerateBracelet)
	e.GET("/download_stl/:stl_file", h.DownloadSTL)

	// Viewer APIs
	v1 := e.Group("/api/v1")
	v1.POST("/viewer/token", viewerToken(logger))

	// WebSocket endpoint for live viewers, token-gated when a secret is set
	e.GET("/ws", func(c echo.Context) error {
		return websocketWithAuth(hub, c, logger)
	})
}

// viewerToken issues a viewer token for the websocket endpoint.
func viewerToken(logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !auth.Enabled() {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "auth_disabled",
				Message: "Viewer tokens are not configured on this server",
			})
		}

		viewerID := uuid.New().String()
		token, expiresAt, err := auth.GenerateViewerToken(viewerID)
		if err != nil {
			logger.Error("Failed to generate viewer token", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: "Failed to generate token",
			})
		}

		return c.JSON(http.StatusOK, ViewerTokenResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			ViewerID:  viewerID,
		})
	}
}

// websocketWithAuth handles WebSocket connections, validating the viewer
// token when auth is enabled.
func websocketWithAuth(hub *websocket.Hub, c echo.Context, logger *zap.Logger) error {
	if !auth.Enabled() {
		return websocket.HandleWebSocket(hub, c, uuid.New().String(), logger)
	}

	// Browsers cannot set headers on websocket upgrades, so accept the
	// token from either the Authorization header or a query parameter.
	var token string
	authHeader := c.Request().Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}
	if token == "" {
		token = c.QueryParam("token")
	}

	if token == "" {
		logger.Warn("WebSocket connection rejected: missing token")
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "missing_token",
			Message: "Viewer token is required",
		})
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		logger.Warn("WebSocket connection rejected: invalid token", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_token",
			Message: "Viewer token is invalid or expired",
		})
	}

	return websocket.HandleWebSocket(hub, c, claims.ViewerID, logger)
}
