package usecase

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/radityarh/pulseband/domain/entities"
)

// SampleRate is the fixed waveform sampling frequency in Hz. A request for
// duration seconds always yields duration × SampleRate samples.
const SampleRate = 100

// HeartbeatService synthesizes cyclic heartbeat waveforms from physiological
// parameters. The stochastic term is driven entirely by stress_level, so a
// zero-stress request is fully deterministic.
type HeartbeatService struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// NewHeartbeatService creates a heartbeat service with a time-seeded noise
// source.
func NewHeartbeatService(logger *zap.Logger) *HeartbeatService {
	return NewHeartbeatServiceWithSeed(time.Now().UnixNano(), logger)
}

// NewHeartbeatServiceWithSeed creates a heartbeat service with a fixed noise
// seed so tests can pin the stochastic branch.
func NewHeartbeatServiceWithSeed(seed int64, logger *zap.Logger) *HeartbeatService {
	return &HeartbeatService{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Generate produces the waveform sample sequence for the given parameters.
//
// Each cardiac cycle is modeled piecewise over its phase: a QRS spike in the
// first tenth of the cycle, a T wave between 0.3 and 0.6, flat baseline
// elsewhere. Activity raises the QRS amplitude, the emotion's trend shifts it
// deterministically, and stress adds uniform noise scaled by the emotion's
// variability.
func (s *HeartbeatService) Generate(ctx context.Context, params entities.HeartbeatParameters) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	count := params.Duration * SampleRate
	beatsPerSecond := float64(params.HeartRate) / 60.0
	shaping := params.Emotion.Shaping()
	qrsAmplitude := (0.8 + params.ActivityLevel*0.4) * (1 + shaping.Trend)

	samples := make([]float64, count)

	s.mu.Lock()
	for i := range samples {
		t := float64(i) / SampleRate
		phase := t * beatsPerSecond
		phase -= math.Floor(phase)

		var amplitude float64
		switch {
		case phase < 0.1:
			amplitude = math.Sin(phase/0.1*math.Pi) * qrsAmplitude
		case phase > 0.3 && phase < 0.6:
			amplitude = math.Sin((phase-0.3)/0.3*math.Pi) * 0.3
		}

		if params.StressLevel > 0 {
			amplitude += (s.rng.Float64() - 0.5) * params.StressLevel * 0.2 * (1 + shaping.Variability)
		}
		samples[i] = amplitude
	}
	s.mu.Unlock()

	s.logger.Info("Heartbeat waveform generated",
		zap.Int("heart_rate", params.HeartRate),
		zap.Int("duration", params.Duration),
		zap.String("emotion", string(params.Emotion)),
		zap.Int("samples", len(samples)))

	return samples, nil
}
