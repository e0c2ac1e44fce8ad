package entities

import (
	"fmt"
	"math"
)

// RadialProfile is the closed per-angle radius curve of the bracelet.
// Division i sits at angle 2πi/len(Radii); the profile wraps past the last
// division back to division 0 (angle 2π is angle 0).
type RadialProfile struct {
	// BaseRadius is the unperturbed bracelet radius the offsets are
	// measured against.
	BaseRadius float64

	// Radii holds one radius per angular division, always positive.
	Radii []float64

	// Amplitudes holds the normalized [0,1] waveform amplitude that
	// produced each division's radius, kept for height and color mapping.
	Amplitudes []float64
}

// RingCount returns the number of angular divisions.
func (p *RadialProfile) RingCount() int {
	return len(p.Radii)
}

// Angle returns the angle of division i in radians.
func (p *RadialProfile) Angle(i int) float64 {
	return 2 * math.Pi * float64(i) / float64(len(p.Radii))
}

// Validate checks the profile invariants.
func (p *RadialProfile) Validate() error {
	if len(p.Radii) == 0 {
		return fmt.Errorf("%w: radial profile is empty", ErrGenerationFailure)
	}
	if len(p.Amplitudes) != len(p.Radii) {
		return fmt.Errorf("%w: profile has %d amplitudes for %d radii",
			ErrGenerationFailure, len(p.Amplitudes), len(p.Radii))
	}
	for i, r := range p.Radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: radius at division %d is %g", ErrGenerationFailure, i, r)
		}
	}
	return nil
}
