package geometry

import (
	"fmt"
	"math"

	"github.com/radityarh/pulseband/domain/entities"
)

// BuildRing extrudes a closed radial profile into a watertight band mesh.
//
// Each angular division carries layersPerRing vertices placed on a closed
// elliptical cross-section loop around the band's core, so the lattice wraps
// in both the angular and the layer direction. That torus topology is what
// makes every edge belong to exactly two triangles. A closed loop needs at
// least 3 distinct points: with 2 layers the wrap edge coincides with the
// forward edge and every vertical edge ends up shared by 4 triangles, so
// layersPerRing below 3 is degenerate. The wrap from the last division back
// to division 0 closes the seam.
func BuildRing(profile *entities.RadialProfile, params entities.BraceletParameters) (*entities.Mesh, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	rings := profile.RingCount()
	layers := params.LayersPerRing
	if rings < 3 {
		return nil, fmt.Errorf("%w: ring count %d is below 3, geometry would be degenerate",
			entities.ErrGenerationFailure, rings)
	}
	if layers < 3 {
		return nil, fmt.Errorf("%w: layers per ring %d cannot close the cross-section loop",
			entities.ErrGenerationFailure, layers)
	}

	halfThickness := params.Thickness / 2

	vertices := make([]float64, 0, rings*layers*3)
	for i := 0; i < rings; i++ {
		angle := profile.Angle(i)
		cosA, sinA := math.Cos(angle), math.Sin(angle)

		// The band core sits half a thickness outside the profile radius
		// so the inner surface touches radius(i) and the outer surface
		// touches radius(i)+thickness. The height offset lets the surface
		// ride the waveform vertically as well.
		coreRadius := profile.Radii[i] + halfThickness
		coreHeight := (profile.Amplitudes[i] - 0.5) * params.Thickness

		for j := 0; j < layers; j++ {
			u := 2 * math.Pi * float64(j) / float64(layers)
			r := coreRadius + halfThickness*math.Cos(u)
			z := coreHeight + halfThickness*math.Sin(u)
			vertices = append(vertices, r*cosA, r*sinA, z)
		}
	}

	// Two counter-clockwise triangles per quad, quads wrapping in both
	// directions. Vertex (i,j) lives at index i*layers+j.
	faces := make([]uint32, 0, rings*layers*6)
	for i := 0; i < rings; i++ {
		next := (i + 1) % rings
		for j := 0; j < layers; j++ {
			up := (j + 1) % layers
			a := uint32(i*layers + j)
			b := uint32(next*layers + j)
			c := uint32(next*layers + up)
			d := uint32(i*layers + up)
			faces = append(faces, a, b, c)
			faces = append(faces, a, c, d)
		}
	}

	return &entities.Mesh{Vertices: vertices, Faces: faces}, nil
}
