package entities

import "fmt"

// Emotion tags the emotional state used to shape the synthesized waveform.
type Emotion string

const (
	EmotionCalm    Emotion = "calm"
	EmotionExcited Emotion = "excited"
	EmotionAnxious Emotion = "anxious"
	EmotionRelaxed Emotion = "relaxed"
)

// EmotionShaping holds the per-emotion waveform modifiers. Trend shifts the
// QRS amplitude deterministically; Variability scales the stochastic term.
type EmotionShaping struct {
	Variability float64
	Trend       float64
}

var emotionShapings = map[Emotion]EmotionShaping{
	EmotionCalm:    {Variability: 0.05, Trend: 0},
	EmotionExcited: {Variability: 0.15, Trend: -0.1},
	EmotionAnxious: {Variability: 0.25, Trend: -0.15},
	EmotionRelaxed: {Variability: 0.03, Trend: 0.05},
}

// Shaping returns the waveform modifiers for the emotion. Unknown emotions
// fall back to calm; Validate rejects them before generation.
func (e Emotion) Shaping() EmotionShaping {
	if s, ok := emotionShapings[e]; ok {
		return s
	}
	return emotionShapings[EmotionCalm]
}

// Valid reports whether the emotion is one of the supported tags.
func (e Emotion) Valid() bool {
	_, ok := emotionShapings[e]
	return ok
}

// HeartbeatParameters is the immutable input to waveform synthesis.
type HeartbeatParameters struct {
	HeartRate     int     `json:"heart_rate" bson:"heart_rate"`
	StressLevel   float64 `json:"stress_level" bson:"stress_level"`
	ActivityLevel float64 `json:"activity_level" bson:"activity_level"`
	Emotion       Emotion `json:"emotion" bson:"emotion"`
	Duration      int     `json:"duration" bson:"duration"`
}

// Validate checks the parameter domain before any generation work.
func (p *HeartbeatParameters) Validate() error {
	if p.HeartRate <= 0 {
		return fmt.Errorf("%w: heart_rate must be positive, got %d", ErrInvalidParameter, p.HeartRate)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidParameter, p.Duration)
	}
	if p.StressLevel < 0 || p.StressLevel > 1 {
		return fmt.Errorf("%w: stress_level must be within [0,1], got %g", ErrInvalidParameter, p.StressLevel)
	}
	if p.ActivityLevel < 0 || p.ActivityLevel > 1 {
		return fmt.Errorf("%w: activity_level must be within [0,1], got %g", ErrInvalidParameter, p.ActivityLevel)
	}
	if !p.Emotion.Valid() {
		return fmt.Errorf("%w: unknown emotion %q", ErrInvalidParameter, p.Emotion)
	}
	return nil
}

// Default bracelet geometry resolution.
const (
	DefaultRingCount     = 360
	DefaultLayersPerRing = 4
)

// BraceletParameters controls how the waveform is mapped onto bracelet
// geometry. Values are in millimeters where dimensional.
type BraceletParameters struct {
	Radius           float64 `json:"radius" bson:"radius"`
	Thickness        float64 `json:"thickness" bson:"thickness"`
	HeightVariation  float64 `json:"height_variation" bson:"height_variation"`
	PatternIntensity float64 `json:"pattern_intensity" bson:"pattern_intensity"`
	Smoothness       float64 `json:"smoothness" bson:"smoothness"`
	RingCount        int     `json:"ring_count" bson:"ring_count"`
	LayersPerRing    int     `json:"layers_per_ring" bson:"layers_per_ring"`
}

// Clamp forces dimensional parameters into their printable ranges and fills
// zero-valued resolution fields with defaults.
func (p *BraceletParameters) Clamp() {
	p.Radius = clamp(p.Radius, 10, 100)
	p.Thickness = clamp(p.Thickness, 1, 20)
	p.HeightVariation = clamp(p.HeightVariation, 0.1, 5.0)
	p.PatternIntensity = clamp(p.PatternIntensity, 0.1, 3.0)
	p.Smoothness = clamp(p.Smoothness, 0.0, 1.0)
	if p.RingCount == 0 {
		p.RingCount = DefaultRingCount
	}
	if p.LayersPerRing == 0 {
		p.LayersPerRing = DefaultLayersPerRing
	}
}

// Validate checks the geometric domain. Resolution limits guard against
// degenerate meshes; Clamp does not repair those because a caller asking for
// a two-ring bracelet made an error rather than an out-of-range request.
func (p *BraceletParameters) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, p.Radius)
	}
	if p.Thickness <= 0 {
		return fmt.Errorf("%w: thickness must be positive, got %g", ErrInvalidParameter, p.Thickness)
	}
	if p.HeightVariation < 0 {
		return fmt.Errorf("%w: height_variation must not be negative, got %g", ErrInvalidParameter, p.HeightVariation)
	}
	if p.PatternIntensity < 0 {
		return fmt.Errorf("%w: pattern_intensity must not be negative, got %g", ErrInvalidParameter, p.PatternIntensity)
	}
	if p.Smoothness < 0 {
		return fmt.Errorf("%w: smoothness must not be negative, got %g", ErrInvalidParameter, p.Smoothness)
	}
	if p.RingCount < 3 {
		return fmt.Errorf("%w: ring_count must be at least 3, got %d", ErrInvalidParameter, p.RingCount)
	}
	// The cross-section is a closed loop; 2 layers cannot close it.
	if p.LayersPerRing < 3 {
		return fmt.Errorf("%w: layers_per_ring must be at least 3, got %d", ErrInvalidParameter, p.LayersPerRing)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
