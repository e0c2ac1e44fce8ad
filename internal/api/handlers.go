package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/radityarh/pulseband/domain/entities"
	"github.com/radityarh/pulseband/usecase"
)

// Handler serves the generation endpoints. Every pipeline failure is
// converted into the success:false envelope; transport-level errors are left
// to the caller to surface.
type Handler struct {
	heartbeats *usecase.HeartbeatService
	bracelets  *usecase.BraceletService
	logger     *zap.Logger
}

// GenerateHeartbeat handles POST /generate_heartbeat
func (h *Handler) GenerateHeartbeat(c echo.Context) error {
	var req GenerateHeartbeatRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind heartbeat request", zap.Error(err))
		return c.JSON(http.StatusOK, GenerateHeartbeatResponse{
			Success: false,
			Error:   "invalid request format",
		})
	}

	params := req.Parameters()
	samples, err := h.heartbeats.Generate(c.Request().Context(), params)
	if err != nil {
		h.logger.Warn("Heartbeat generation rejected", zap.Error(err))
		return c.JSON(http.StatusOK, GenerateHeartbeatResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, GenerateHeartbeatResponse{
		Success:       true,
		HeartbeatData: samples,
		Parameters:    &params,
	})
}

// GenerateBracelet handles POST /generate_3d_bracelet
func (h *Handler) GenerateBracelet(c echo.Context) error {
	var req GenerateBraceletRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind bracelet request", zap.Error(err))
		return c.JSON(http.StatusOK, GenerateBraceletResponse{
			Success: false,
			Error:   "invalid request format",
		})
	}

	model, mesh, err := h.bracelets.Generate(c.Request().Context(), req.HeartbeatData, req.Parameters())
	if err != nil {
		h.logger.Warn("Bracelet generation failed", zap.Error(err))
		return c.JSON(http.StatusOK, GenerateBraceletResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, GenerateBraceletResponse{
		Success:   true,
		ModelData: mesh,
		STLFile:   model.STLFile,
	})
}

// DownloadSTL handles GET /download_stl/:stl_file
func (h *Handler) DownloadSTL(c echo.Context) error {
	stlFile := c.Param("stl_file")

	document, err := h.bracelets.Download(c.Request().Context(), stlFile)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrModelNotFound) {
			status = http.StatusNotFound
		} else {
			h.logger.Error("STL download failed", zap.String("stl_file", stlFile), zap.Error(err))
		}
		return c.JSON(status, DownloadErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", stlFile))
	return c.Blob(http.StatusOK, "application/octet-stream", document)
}
