package websocket

import (
	"encoding/json"
	"time"

	"github.com/radityarh/pulseband/domain/entities"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Supported message types
const (
	MessageTypeModelGenerated MessageType = "model_generated"
	MessageTypePing           MessageType = "ping"
	MessageTypePong           MessageType = "pong"
	MessageTypeError          MessageType = "error"
)

// BaseMessage defines the common structure for all WebSocket messages
type BaseMessage struct {
	Type      MessageType `json:"type"`
	Timestamp string      `json:"timestamp"`
}

// ModelGeneratedMessage notifies viewers that a new bracelet model is ready
// to fetch. It carries the summary, not the geometry buffers; viewers pull
// the STL document over HTTP.
type ModelGeneratedMessage struct {
	BaseMessage
	ModelID        string                      `json:"model_id"`
	STLFile        string                      `json:"stl_file"`
	VertexCount    int                         `json:"vertex_count"`
	TriangleCount  int                         `json:"triangle_count"`
	RepairedValues int                         `json:"repaired_values"`
	Parameters     entities.BraceletParameters `json:"parameters"`
}

// PongMessage answers a viewer ping
type PongMessage struct {
	BaseMessage
	Data string `json:"data,omitempty"`
}

// ErrorMessage represents an error response
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// NewModelGeneratedMessage builds the broadcast payload for a stored model.
func NewModelGeneratedMessage(model *entities.BraceletModel) *ModelGeneratedMessage {
	return &ModelGeneratedMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypeModelGenerated,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		ModelID:        model.ID,
		STLFile:        model.STLFile,
		VertexCount:    model.VertexCount,
		TriangleCount:  model.TriangleCount,
		RepairedValues: model.RepairedValues,
		Parameters:     model.Parameters,
	}
}

// NewPongMessage builds the answer to a ping.
func NewPongMessage(data string) *PongMessage {
	return &PongMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypePong,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Data: data,
	}
}

// NewErrorMessage builds an error payload for a viewer.
func NewErrorMessage(code, message string) *ErrorMessage {
	return &ErrorMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypeError,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Code:    code,
		Message: message,
	}
}

func marshalMessage(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
