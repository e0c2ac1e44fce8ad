package websocket

import (
	"encoding/json"
	"testing"

	"github.com/radityarh/pulseband/domain/entities"
)

func TestModelGeneratedMessage(t *testing.T) {
	mesh := &entities.Mesh{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:    []uint32{0, 1, 2},
	}
	params := entities.BraceletParameters{
		Radius: 30, Thickness: 5,
		HeightVariation: 0.8, PatternIntensity: 1, Smoothness: 0.7,
		RingCount: 360, LayersPerRing: 4,
	}
	model := entities.NewBraceletModel(params, mesh, 3, []byte("doc"))

	payload, err := marshalMessage(NewModelGeneratedMessage(model))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded ModelGeneratedMessage
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Type != MessageTypeModelGenerated {
		t.Errorf("Expected type %s, got %s", MessageTypeModelGenerated, decoded.Type)
	}
	if decoded.ModelID != model.ID {
		t.Errorf("Expected model ID %s, got %s", model.ID, decoded.ModelID)
	}
	if decoded.STLFile != model.STLFile {
		t.Errorf("Expected stl file %s, got %s", model.STLFile, decoded.STLFile)
	}
	if decoded.TriangleCount != 1 {
		t.Errorf("Expected 1 triangle, got %d", decoded.TriangleCount)
	}
	if decoded.RepairedValues != 3 {
		t.Errorf("Expected 3 repaired values, got %d", decoded.RepairedValues)
	}
	if decoded.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
}

func TestErrorAndPongMessages(t *testing.T) {
	pong := NewPongMessage("hello")
	if pong.Type != MessageTypePong {
		t.Errorf("Expected pong type, got %s", pong.Type)
	}

	errMsg := NewErrorMessage("bad_request", "unsupported")
	if errMsg.Type != MessageTypeError {
		t.Errorf("Expected error type, got %s", errMsg.Type)
	}
	if errMsg.Code != "bad_request" {
		t.Errorf("Expected code bad_request, got %s", errMsg.Code)
	}
}
