package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/radityarh/pulseband/domain/entities"
	"github.com/radityarh/pulseband/domain/repositories"
)

// ModelRepository is the MongoDB-backed model store. The STL document is
// embedded as binary data so a model is self-contained.
type ModelRepository struct {
	collection *mongo.Collection
}

// NewModelRepository creates a new MongoDB model repository
func NewModelRepository(db *mongo.Database) repositories.ModelRepository {
	return &ModelRepository{
		collection: db.Collection(modelCollection),
	}
}

// Save implements repositories.ModelRepository
func (r *ModelRepository) Save(ctx context.Context, model *entities.BraceletModel) error {
	if model == nil {
		return errors.New("model cannot be nil")
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, model); err != nil {
		return fmt.Errorf("failed to store model: %w", err)
	}
	return nil
}

// GetByID implements repositories.ModelRepository
func (r *ModelRepository) GetByID(ctx context.Context, id string) (*entities.BraceletModel, error) {
	if id == "" {
		return nil, errors.New("model ID cannot be empty")
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetBySTLFile implements repositories.ModelRepository
func (r *ModelRepository) GetBySTLFile(ctx context.Context, stlFile string) (*entities.BraceletModel, error) {
	if stlFile == "" {
		return nil, errors.New("stl file name cannot be empty")
	}
	return r.findOne(ctx, bson.M{"stl_file": stlFile})
}

// Delete implements repositories.ModelRepository
func (r *ModelRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("model ID cannot be empty")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete model %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return entities.ErrModelNotFound
	}
	return nil
}

// DeleteOlderThan implements repositories.ModelRepository
func (r *ModelRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired models: %w", err)
	}
	return int(result.DeletedCount), nil
}

func (r *ModelRepository) findOne(ctx context.Context, filter bson.M) (*entities.BraceletModel, error) {
	var model entities.BraceletModel
	err := r.collection.FindOne(ctx, filter).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return &model, nil
}
