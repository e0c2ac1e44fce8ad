package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/radityarh/pulseband/domain/entities"
	"github.com/radityarh/pulseband/internal/geometry"
)

func testMesh(t *testing.T) *entities.Mesh {
	t.Helper()

	params := entities.BraceletParameters{
		Radius:           30,
		Thickness:        5,
		HeightVariation:  0.8,
		PatternIntensity: 1.0,
		Smoothness:       0.7,
		RingCount:        32,
		LayersPerRing:    4,
	}
	samples := make([]float64, 100)
	samples[10] = 1

	profile, err := geometry.MapProfile(samples, params)
	if err != nil {
		t.Fatalf("MapProfile failed: %v", err)
	}
	mesh, err := geometry.BuildRing(profile, params)
	if err != nil {
		t.Fatalf("BuildRing failed: %v", err)
	}
	return mesh
}

func TestEncodeDocumentLayout(t *testing.T) {
	mesh := testMesh(t)
	document := Encode(mesh)

	triangles := mesh.TriangleCount()
	if len(document) != DocumentSize(triangles) {
		t.Fatalf("Document is %d bytes, want %d", len(document), DocumentSize(triangles))
	}

	// Little-endian triangle count directly after the 80-byte header.
	count := binary.LittleEndian.Uint32(document[80:84])
	if int(count) != triangles {
		t.Errorf("Document declares %d triangles, mesh has %d", count, triangles)
	}
}

func TestEncodeFirstTriangleVertices(t *testing.T) {
	mesh := testMesh(t)
	document := Encode(mesh)

	// Record layout: 12 bytes normal, then three 12-byte vertices, then a
	// 2-byte attribute count. Triangles appear in face-list order.
	record := document[84 : 84+50]
	for k := 0; k < 3; k++ {
		vi := int(mesh.Faces[k]) * 3
		for c := 0; c < 3; c++ {
			offset := 12 + k*12 + c*4
			bits := binary.LittleEndian.Uint32(record[offset : offset+4])
			got := float64(math.Float32frombits(bits))
			want := mesh.Vertices[vi+c]
			if diff := got - want; diff > 1e-4 || diff < -1e-4 {
				t.Fatalf("Triangle 0 vertex %d component %d: got %g, want %g", k, c, got, want)
			}
		}
	}
}

func TestWriteMatchesEncode(t *testing.T) {
	mesh := testMesh(t)

	var buf bytes.Buffer
	if err := Write(&buf, mesh); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), Encode(mesh)) {
		t.Error("Write and Encode produced different documents")
	}
}
