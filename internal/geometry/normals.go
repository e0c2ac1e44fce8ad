package geometry

import (
	"math"

	"github.com/radityarh/pulseband/domain/entities"
)

// Surface gradient endpoints, gold to rose gold. Amplitude drives the blend
// so the printed surface visually encodes the heartbeat.
var (
	colorBase      = [3]float64{0.8, 0.6, 0.2}
	colorHighlight = [3]float64{1.0, 0.8, 0.5}
)

// ComputeNormals fills the mesh's per-vertex normals by accumulating face
// normals in winding order and normalizing the result. Vertices no face
// touches get a default up normal.
func ComputeNormals(mesh *entities.Mesh) {
	normals := make([]float64, len(mesh.Vertices))

	for f := 0; f+2 < len(mesh.Faces); f += 3 {
		i0 := int(mesh.Faces[f]) * 3
		i1 := int(mesh.Faces[f+1]) * 3
		i2 := int(mesh.Faces[f+2]) * 3

		e1x := mesh.Vertices[i1] - mesh.Vertices[i0]
		e1y := mesh.Vertices[i1+1] - mesh.Vertices[i0+1]
		e1z := mesh.Vertices[i1+2] - mesh.Vertices[i0+2]
		e2x := mesh.Vertices[i2] - mesh.Vertices[i0]
		e2y := mesh.Vertices[i2+1] - mesh.Vertices[i0+1]
		e2z := mesh.Vertices[i2+2] - mesh.Vertices[i0+2]

		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length > 0 {
			nx /= length
			ny /= length
			nz /= length
		}

		for _, idx := range []int{i0, i1, i2} {
			normals[idx] += nx
			normals[idx+1] += ny
			normals[idx+2] += nz
		}
	}

	for v := 0; v+2 < len(normals); v += 3 {
		length := math.Sqrt(normals[v]*normals[v] + normals[v+1]*normals[v+1] + normals[v+2]*normals[v+2])
		if length > 0 {
			normals[v] /= length
			normals[v+1] /= length
			normals[v+2] /= length
		} else {
			normals[v], normals[v+1], normals[v+2] = 0, 0, 1
		}
	}

	mesh.Normals = normals
}

// ComputeColors fills per-vertex colors from the radial offset that produced
// each vertex's angular division, blended through the gold gradient.
func ComputeColors(mesh *entities.Mesh, profile *entities.RadialProfile) {
	colors := make([]float64, len(mesh.Vertices))
	rings := profile.RingCount()
	if rings == 0 {
		mesh.Colors = colors
		return
	}
	layers := mesh.VertexCount() / rings
	if layers == 0 {
		layers = 1
	}

	for v := 0; v < mesh.VertexCount(); v++ {
		t := profile.Amplitudes[(v/layers)%rings]
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		colors[v*3] = colorBase[0] + t*(colorHighlight[0]-colorBase[0])
		colors[v*3+1] = colorBase[1] + t*(colorHighlight[1]-colorBase[1])
		colors[v*3+2] = colorBase[2] + t*(colorHighlight[2]-colorBase[2])
	}

	mesh.Colors = colors
}
