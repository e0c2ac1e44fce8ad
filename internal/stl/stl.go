// Package stl turns the indexed render mesh into the binary solid-model
// document sent to slicers: 80-byte header, little-endian triangle count,
// then one 50-byte record per triangle carrying its own normal and three
// vertex positions. The format is pure triangle soup, so shared vertices are
// written out once per triangle that uses them.
package stl

import (
	"io"

	"github.com/unixpickle/model3d/model3d"

	"github.com/radityarh/pulseband/domain/entities"
)

// Encode serializes the mesh as a binary STL document. Triangles appear in
// the exact order of the mesh's face list.
func Encode(mesh *entities.Mesh) []byte {
	return model3d.EncodeSTL(triangles(mesh))
}

// Write streams the binary STL document to w.
func Write(w io.Writer, mesh *entities.Mesh) error {
	return model3d.WriteSTL(w, triangles(mesh))
}

// DocumentSize returns the byte size of the STL document for a triangle
// count without encoding it.
func DocumentSize(triangleCount int) int {
	return 84 + 50*triangleCount
}

func triangles(mesh *entities.Mesh) []*model3d.Triangle {
	tris := make([]*model3d.Triangle, 0, mesh.TriangleCount())
	for f := 0; f+2 < len(mesh.Faces); f += 3 {
		var t model3d.Triangle
		for k := 0; k < 3; k++ {
			vi := int(mesh.Faces[f+k]) * 3
			t[k] = model3d.XYZ(mesh.Vertices[vi], mesh.Vertices[vi+1], mesh.Vertices[vi+2])
		}
		tris = append(tris, &t)
	}
	return tris
}
