package repositories

import (
	"context"
	"time"

	"github.com/radityarh/pulseband/domain/entities"
)

// ModelRepository defines data access methods for generated bracelet models.
// Implementations return entities.ErrModelNotFound for missing identifiers.
type ModelRepository interface {
	Save(ctx context.Context, model *entities.BraceletModel) error
	GetByID(ctx context.Context, id string) (*entities.BraceletModel, error)
	GetBySTLFile(ctx context.Context, stlFile string) (*entities.BraceletModel, error)
	Delete(ctx context.Context, id string) error

	// DeleteOlderThan removes models created before cutoff and returns how
	// many were removed. Used by the retention sweep.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
