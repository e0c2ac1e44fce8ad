package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/radityarh/pulseband/domain/entities"
	"github.com/radityarh/pulseband/domain/repositories"
	"github.com/radityarh/pulseband/internal/geometry"
	"github.com/radityarh/pulseband/internal/stl"
)

// ViewerNotifier pushes generated-model events to connected viewers. The
// websocket hub implements it; a nil notifier disables pushes.
type ViewerNotifier interface {
	ModelGenerated(model *entities.BraceletModel)
}

// BraceletService orchestrates the generation pipeline: waveform samples in,
// stored printable model plus render mesh out. Each call allocates its own
// buffers, so concurrent requests need no coordination.
type BraceletService struct {
	models   repositories.ModelRepository
	notifier ViewerNotifier
	logger   *zap.Logger
}

// NewBraceletService creates a bracelet service.
func NewBraceletService(models repositories.ModelRepository, notifier ViewerNotifier, logger *zap.Logger) *BraceletService {
	return &BraceletService{
		models:   models,
		notifier: notifier,
		logger:   logger,
	}
}

// Generate runs the full pipeline and stores the resulting model. Either the
// whole result is returned or an error; nothing partial escapes.
func (s *BraceletService) Generate(ctx context.Context, samples []float64, params entities.BraceletParameters) (*entities.BraceletModel, *entities.Mesh, error) {
	params.Clamp()
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("%w: no heartbeat data provided", entities.ErrInvalidParameter)
	}

	// The waveform round-trips through the client as JSON, so repair any
	// non-finite values before they reach the mapper.
	repairedInput := geometry.SanitizeValues(samples)
	if repairedInput > 0 {
		s.logger.Warn("Repaired non-finite heartbeat samples",
			zap.Int("repaired", repairedInput))
	}

	profile, err := geometry.MapProfile(samples, params)
	if err != nil {
		return nil, nil, fmt.Errorf("radial profile mapping failed: %w", err)
	}

	mesh, err := geometry.BuildRing(profile, params)
	if err != nil {
		return nil, nil, fmt.Errorf("ring mesh construction failed: %w", err)
	}

	geometry.ComputeNormals(mesh)
	geometry.ComputeColors(mesh, profile)

	repaired := geometry.Sanitize(mesh)
	if repaired > 0 {
		s.logger.Warn("Repaired non-finite mesh values",
			zap.Int("repaired", repaired),
			zap.Int("vertices", mesh.VertexCount()))
	}

	if err := mesh.Validate(); err != nil {
		return nil, nil, fmt.Errorf("mesh validation failed: %w", err)
	}

	document := stl.Encode(mesh)

	model := entities.NewBraceletModel(params, mesh, repairedInput+repaired, document)
	if err := s.models.Save(ctx, model); err != nil {
		return nil, nil, fmt.Errorf("failed to store bracelet model: %w", err)
	}

	s.logger.Info("Bracelet model generated",
		zap.String("id", model.ID),
		zap.String("stl_file", model.STLFile),
		zap.Int("vertices", model.VertexCount),
		zap.Int("triangles", model.TriangleCount),
		zap.Int("stl_bytes", len(document)))

	if s.notifier != nil {
		s.notifier.ModelGenerated(model)
	}

	return model, mesh, nil
}

// Download returns the binary STL document for a previously generated file
// identifier.
func (s *BraceletService) Download(ctx context.Context, stlFile string) ([]byte, error) {
	model, err := s.models.GetBySTLFile(ctx, stlFile)
	if err != nil {
		return nil, err
	}
	return model.STL, nil
}
