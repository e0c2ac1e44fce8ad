package api

import (
	"time"

	"github.com/radityarh/pulseband/domain/entities"
)

// GenerateHeartbeatRequest is the payload for POST /generate_heartbeat.
// Pointer fields distinguish "absent, use the default" from an explicit
// value, matching the old duck-typed payload's behavior.
type GenerateHeartbeatRequest struct {
	HeartRate     *int     `json:"heart_rate"`
	StressLevel   *float64 `json:"stress_level"`
	ActivityLevel *float64 `json:"activity_level"`
	Emotion       *string  `json:"emotion"`
	Duration      *int     `json:"duration"`
}

// Parameters resolves the request into validated-ready heartbeat parameters,
// applying defaults for absent fields.
func (r *GenerateHeartbeatRequest) Parameters() entities.HeartbeatParameters {
	params := entities.HeartbeatParameters{
		HeartRate:     70,
		StressLevel:   0.5,
		ActivityLevel: 0.3,
		Emotion:       entities.EmotionCalm,
		Duration:      10,
	}
	if r.HeartRate != nil {
		params.HeartRate = *r.HeartRate
	}
	if r.StressLevel != nil {
		params.StressLevel = *r.StressLevel
	}
	if r.ActivityLevel != nil {
		params.ActivityLevel = *r.ActivityLevel
	}
	if r.Emotion != nil {
		params.Emotion = entities.Emotion(*r.Emotion)
	}
	if r.Duration != nil {
		params.Duration = *r.Duration
	}
	return params
}

// GenerateHeartbeatResponse is the envelope for POST /generate_heartbeat.
type GenerateHeartbeatResponse struct {
	Success       bool                          `json:"success"`
	HeartbeatData []float64                     `json:"heartbeat_data,omitempty"`
	Parameters    *entities.HeartbeatParameters `json:"parameters,omitempty"`
	Error         string                        `json:"error,omitempty"`
}

// GenerateBraceletRequest is the payload for POST /generate_3d_bracelet.
type GenerateBraceletRequest struct {
	HeartbeatData    []float64 `json:"heartbeat_data"`
	Radius           *float64  `json:"radius"`
	Thickness        *float64  `json:"thickness"`
	HeightVariation  *float64  `json:"height_variation"`
	PatternIntensity *float64  `json:"pattern_intensity"`
	Smoothness       *float64  `json:"smoothness"`
	RingCount        *int      `json:"ring_count"`
	LayersPerRing    *int      `json:"layers_per_ring"`
}

// Parameters resolves the request into bracelet parameters with defaults for
// absent fields. Out-of-range dimensional values are clamped later by the
// pipeline, not rejected.
func (r *GenerateBraceletRequest) Parameters() entities.BraceletParameters {
	params := entities.BraceletParameters{
		Radius:           30,
		Thickness:        5,
		HeightVariation:  0.8,
		PatternIntensity: 1.0,
		Smoothness:       0.7,
		RingCount:        entities.DefaultRingCount,
		LayersPerRing:    entities.DefaultLayersPerRing,
	}
	if r.Radius != nil {
		params.Radius = *r.Radius
	}
	if r.Thickness != nil {
		params.Thickness = *r.Thickness
	}
	if r.HeightVariation != nil {
		params.HeightVariation = *r.HeightVariation
	}
	if r.PatternIntensity != nil {
		params.PatternIntensity = *r.PatternIntensity
	}
	if r.Smoothness != nil {
		params.Smoothness = *r.Smoothness
	}
	if r.RingCount != nil {
		params.RingCount = *r.RingCount
	}
	if r.LayersPerRing != nil {
		params.LayersPerRing = *r.LayersPerRing
	}
	return params
}

// GenerateBraceletResponse is the envelope for POST /generate_3d_bracelet.
// ModelData is the render buffer uploaded straight to the viewer's GPU.
type GenerateBraceletResponse struct {
	Success   bool           `json:"success"`
	ModelData *entities.Mesh `json:"model_data,omitempty"`
	STLFile   string         `json:"stl_file,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// DownloadErrorResponse is the envelope for a failed STL download.
type DownloadErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ViewerTokenResponse is the payload returned when issuing a viewer token.
type ViewerTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ViewerID  string    `json:"viewer_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
