package entities

import (
	"errors"
	"testing"
)

func TestHeartbeatParametersValidate(t *testing.T) {
	valid := HeartbeatParameters{
		HeartRate:     72,
		StressLevel:   0.5,
		ActivityLevel: 0.3,
		Emotion:       EmotionCalm,
		Duration:      10,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid parameters to pass, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*HeartbeatParameters)
	}{
		{"zero heart rate", func(p *HeartbeatParameters) { p.HeartRate = 0 }},
		{"negative heart rate", func(p *HeartbeatParameters) { p.HeartRate = -10 }},
		{"zero duration", func(p *HeartbeatParameters) { p.Duration = 0 }},
		{"stress above range", func(p *HeartbeatParameters) { p.StressLevel = 1.5 }},
		{"negative activity", func(p *HeartbeatParameters) { p.ActivityLevel = -0.1 }},
		{"unknown emotion", func(p *HeartbeatParameters) { p.Emotion = "furious" }},
	}

	for _, tc := range cases {
		params := valid
		tc.mutate(&params)
		err := params.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
	}
}

func TestEmotionShaping(t *testing.T) {
	for _, e := range []Emotion{EmotionCalm, EmotionExcited, EmotionAnxious, EmotionRelaxed} {
		if !e.Valid() {
			t.Errorf("Expected emotion %q to be valid", e)
		}
	}
	if Emotion("furious").Valid() {
		t.Error("Expected unknown emotion to be invalid")
	}

	if s := EmotionAnxious.Shaping(); s.Trend >= 0 {
		t.Errorf("Expected anxious trend to be negative, got %g", s.Trend)
	}
	// Unknown emotions fall back to calm shaping.
	if got, want := Emotion("furious").Shaping(), EmotionCalm.Shaping(); got != want {
		t.Errorf("Expected fallback shaping %+v, got %+v", want, got)
	}
}

func TestBraceletParametersClamp(t *testing.T) {
	params := BraceletParameters{
		Radius:           500,
		Thickness:        0.1,
		HeightVariation:  -2,
		PatternIntensity: 10,
		Smoothness:       3,
	}
	params.Clamp()

	if params.Radius != 100 {
		t.Errorf("Expected radius clamped to 100, got %g", params.Radius)
	}
	if params.Thickness != 1 {
		t.Errorf("Expected thickness clamped to 1, got %g", params.Thickness)
	}
	if params.HeightVariation != 0.1 {
		t.Errorf("Expected height_variation clamped to 0.1, got %g", params.HeightVariation)
	}
	if params.PatternIntensity != 3 {
		t.Errorf("Expected pattern_intensity clamped to 3, got %g", params.PatternIntensity)
	}
	if params.Smoothness != 1 {
		t.Errorf("Expected smoothness clamped to 1, got %g", params.Smoothness)
	}
	if params.RingCount != DefaultRingCount {
		t.Errorf("Expected default ring count %d, got %d", DefaultRingCount, params.RingCount)
	}
	if params.LayersPerRing != DefaultLayersPerRing {
		t.Errorf("Expected default layers %d, got %d", DefaultLayersPerRing, params.LayersPerRing)
	}

	if err := params.Validate(); err != nil {
		t.Errorf("Expected clamped parameters to validate, got %v", err)
	}
}

func TestBraceletParametersValidateDegenerate(t *testing.T) {
	params := BraceletParameters{
		Radius:           30,
		Thickness:        5,
		HeightVariation:  0.8,
		PatternIntensity: 1,
		Smoothness:       0.7,
		RingCount:        2,
		LayersPerRing:    4,
	}
	if err := params.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for ring_count=2, got %v", err)
	}

	params.RingCount = 64
	params.LayersPerRing = 1
	if err := params.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for layers_per_ring=1, got %v", err)
	}

	params.LayersPerRing = 2
	if err := params.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for layers_per_ring=2, got %v", err)
	}
}
