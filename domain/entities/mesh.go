package entities

import "fmt"

// Mesh is an indexed triangle mesh in the flat layout the renderer consumes.
// Vertices holds x,y,z triples; Faces holds vertex-index triples with
// counter-clockwise winding viewed from outside. Normals and Colors, when
// present, are parallel to Vertices.
type Mesh struct {
	Vertices []float64 `json:"vertices"`
	Faces    []uint32  `json:"faces"`
	Normals  []float64 `json:"normals,omitempty"`
	Colors   []float64 `json:"colors,omitempty"`
}

// VertexCount returns the number of (x,y,z) points.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// Validate checks the structural invariants the pipeline guarantees before
// serialization: divisibility, index bounds and attribute parallelism.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%w: vertex buffer length %d is not a positive multiple of 3",
			ErrGenerationFailure, len(m.Vertices))
	}
	if len(m.Faces) == 0 || len(m.Faces)%3 != 0 {
		return fmt.Errorf("%w: face buffer length %d is not a positive multiple of 3",
			ErrGenerationFailure, len(m.Faces))
	}
	vertexCount := uint32(m.VertexCount())
	for i, idx := range m.Faces {
		if idx >= vertexCount {
			return fmt.Errorf("%w: face index %d at position %d exceeds vertex count %d",
				ErrGenerationFailure, idx, i, vertexCount)
		}
	}
	if m.Normals != nil && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: normal buffer length %d does not match vertex buffer length %d",
			ErrGenerationFailure, len(m.Normals), len(m.Vertices))
	}
	if m.Colors != nil && len(m.Colors) != len(m.Vertices) {
		return fmt.Errorf("%w: color buffer length %d does not match vertex buffer length %d",
			ErrGenerationFailure, len(m.Colors), len(m.Vertices))
	}
	return nil
}
