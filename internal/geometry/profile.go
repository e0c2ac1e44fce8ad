// Package geometry implements the generative pipeline that turns a heartbeat
// waveform into a closed, printable bracelet mesh.
package geometry

import (
	"fmt"
	"math"

	"github.com/radityarh/pulseband/domain/entities"
)

// radiusFloor is the lowest radius a division may take. Offsets that would
// push the surface through the bracelet axis are clamped here instead of
// producing non-positive geometry.
const radiusFloor = 0.1

// MapProfile distributes the waveform exactly once around the bracelet
// circumference and converts it into a per-angle radius curve.
//
// The phase-to-angle mapping is linear resampling with wrap-around: division
// i of ringCount reads position i/ringCount × len(samples) of the waveform,
// interpolating between neighboring samples and wrapping past the end so the
// curve closes on itself regardless of duration.
func MapProfile(samples []float64, params entities.BraceletParameters) (*entities.RadialProfile, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no heartbeat data provided", entities.ErrInvalidParameter)
	}

	norm := normalize(samples)
	amplitudes := resampleCircular(norm, params.RingCount)
	if params.Smoothness > 0 {
		amplitudes = smoothCircular(amplitudes, params.Smoothness)
	}

	radii := make([]float64, len(amplitudes))
	for i, a := range amplitudes {
		r := params.Radius + (a-0.5)*params.HeightVariation*params.PatternIntensity
		if !(r > radiusFloor) || math.IsInf(r, 0) || math.IsNaN(r) {
			r = radiusFloor
		}
		radii[i] = r
	}

	return &entities.RadialProfile{
		BaseRadius: params.Radius,
		Radii:      radii,
		Amplitudes: amplitudes,
	}, nil
}

// normalize rescales samples into [0,1]. Flat or non-finite input collapses
// to the midline so downstream geometry stays a plain band.
func normalize(samples []float64) []float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if !isFinite(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(samples))
	span := max - min
	if !isFinite(span) || span < 1e-8 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range samples {
		if !isFinite(v) {
			out[i] = 0.5
			continue
		}
		out[i] = (v - min) / span
	}
	return out
}

// resampleCircular stretches or compresses samples onto count divisions with
// linear interpolation, treating the sequence as one full cycle.
func resampleCircular(samples []float64, count int) []float64 {
	n := len(samples)
	out := make([]float64, count)
	if n == 1 {
		for i := range out {
			out[i] = samples[0]
		}
		return out
	}
	for i := 0; i < count; i++ {
		pos := float64(i) / float64(count) * float64(n)
		idx := int(math.Floor(pos)) % n
		frac := pos - math.Floor(pos)
		next := (idx + 1) % n
		out[i] = samples[idx]*(1-frac) + samples[next]*frac
	}
	return out
}

// smoothCircular applies a symmetric moving average with wrap-around so the
// transition across the seam is indistinguishable from interior transitions.
// The window grows with smoothness and is always odd.
func smoothCircular(data []float64, smoothness float64) []float64 {
	n := len(data)
	window := int(float64(n) * smoothness * 0.1)
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	if window > n {
		window = n
		if window%2 == 0 {
			window--
		}
	}

	half := window / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := -half; k <= half; k++ {
			sum += data[((i+k)%n+n)%n]
		}
		out[i] = sum / float64(window)
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
