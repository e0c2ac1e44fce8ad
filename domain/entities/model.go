package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BraceletModel is a generated bracelet kept around so the viewer can fetch
// its printable document later. The render buffers are not stored; they are
// returned once to the requesting client.
type BraceletModel struct {
	ID             string             `json:"id" bson:"_id"`
	STLFile        string             `json:"stl_file" bson:"stl_file"`
	Parameters     BraceletParameters `json:"parameters" bson:"parameters"`
	VertexCount    int                `json:"vertex_count" bson:"vertex_count"`
	TriangleCount  int                `json:"triangle_count" bson:"triangle_count"`
	RepairedValues int                `json:"repaired_values" bson:"repaired_values"`
	STL            []byte             `json:"-" bson:"stl"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// NewBraceletModel creates a stored model with a fresh identifier and
// download filename.
func NewBraceletModel(params BraceletParameters, mesh *Mesh, repaired int, stl []byte) *BraceletModel {
	id := uuid.New().String()
	return &BraceletModel{
		ID:             id,
		STLFile:        fmt.Sprintf("bracelet_%s.stl", id),
		Parameters:     params,
		VertexCount:    mesh.VertexCount(),
		TriangleCount:  mesh.TriangleCount(),
		RepairedValues: repaired,
		STL:            stl,
		CreatedAt:      time.Now(),
	}
}
