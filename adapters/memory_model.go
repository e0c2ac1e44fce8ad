package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/radityarh/pulseband/domain/entities"
)

// MemoryModelRepository is an in-memory implementation of ModelRepository.
// It is the default backend when no MongoDB URI is configured.
type MemoryModelRepository struct {
	mu     sync.RWMutex
	models map[string]*entities.BraceletModel // id -> model
	files  map[string]string                  // stl_file -> id
}

// NewMemoryModelRepository creates a new in-memory model repository.
func NewMemoryModelRepository() *MemoryModelRepository {
	return &MemoryModelRepository{
		models: make(map[string]*entities.BraceletModel),
		files:  make(map[string]string),
	}
}

// Save implements ModelRepository.
func (m *MemoryModelRepository) Save(ctx context.Context, model *entities.BraceletModel) error {
	if model == nil {
		return errors.New("model cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if model.ID == "" {
		model.ID = uuid.New().String()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}

	// Store a copy to prevent external modifications.
	modelCopy := *model
	m.models[model.ID] = &modelCopy
	m.files[model.STLFile] = model.ID

	return nil
}

// GetByID implements ModelRepository.
func (m *MemoryModelRepository) GetByID(ctx context.Context, id string) (*entities.BraceletModel, error) {
	if id == "" {
		return nil, errors.New("model ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	model, exists := m.models[id]
	if !exists {
		return nil, entities.ErrModelNotFound
	}

	modelCopy := *model
	return &modelCopy, nil
}

// GetBySTLFile implements ModelRepository.
func (m *MemoryModelRepository) GetBySTLFile(ctx context.Context, stlFile string) (*entities.BraceletModel, error) {
	if stlFile == "" {
		return nil, errors.New("stl file name cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.files[stlFile]
	if !exists {
		return nil, entities.ErrModelNotFound
	}
	model, exists := m.models[id]
	if !exists {
		return nil, entities.ErrModelNotFound
	}

	modelCopy := *model
	return &modelCopy, nil
}

// Delete implements ModelRepository.
func (m *MemoryModelRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("model ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	model, exists := m.models[id]
	if !exists {
		return entities.ErrModelNotFound
	}

	delete(m.models, id)
	delete(m.files, model.STLFile)
	return nil
}

// DeleteOlderThan implements ModelRepository.
func (m *MemoryModelRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, model := range m.models {
		if model.CreatedAt.Before(cutoff) {
			delete(m.models, id)
			delete(m.files, model.STLFile)
			removed++
		}
	}
	return removed, nil
}
