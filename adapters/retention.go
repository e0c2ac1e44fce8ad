package adapters

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radityarh/pulseband/domain/repositories"
)

// RetentionService periodically removes stored models past their TTL.
// Generated bracelets only need to live long enough for the viewer to fetch
// the STL document.
type RetentionService struct {
	models   repositories.ModelRepository
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewRetentionService creates a retention service sweeping every interval and
// deleting models older than ttl.
func NewRetentionService(models repositories.ModelRepository, ttl, interval time.Duration, logger *zap.Logger) *RetentionService {
	return &RetentionService{
		models:   models,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background sweep.
func (s *RetentionService) Start() {
	go s.sweepLoop()
	s.logger.Info("Model retention service started",
		zap.Duration("ttl", s.ttl),
		zap.Duration("interval", s.interval))
}

// Stop gracefully stops the sweep.
func (s *RetentionService) Stop() {
	close(s.stopChan)
	s.logger.Info("Model retention service stopped")
}

func (s *RetentionService) sweepLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runSweep()
		}
	}
}

func (s *RetentionService) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.models.DeleteOlderThan(ctx, time.Now().Add(-s.ttl))
	if err != nil {
		s.logger.Error("Model retention sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("Expired models removed", zap.Int("removed", removed))
	}
}
