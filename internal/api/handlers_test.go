package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/radityarh/pulseband/adapters"
	"github.com/radityarh/pulseband/internal/websocket"
	"github.com/radityarh/pulseband/usecase"
)

func setupTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zap.NewNop()
	repo := adapters.NewMemoryModelRepository()
	hub := websocket.NewHub(logger)
	go hub.Run()

	heartbeats := usecase.NewHeartbeatServiceWithSeed(7, logger)
	bracelets := usecase.NewBraceletService(repo, hub, logger)

	e := echo.New()
	InitRoutes(e, heartbeats, bracelets, hub, logger)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGenerateHeartbeatEndpoint(t *testing.T) {
	e := setupTestServer(t)

	rec := postJSON(e, "/generate_heartbeat",
		`{"heart_rate": 72, "stress_level": 0.2, "activity_level": 0.4, "emotion": "calm", "duration": 2}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp GenerateHeartbeatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got error %q", resp.Error)
	}
	if len(resp.HeartbeatData) != 2*usecase.SampleRate {
		t.Errorf("Expected %d samples, got %d", 2*usecase.SampleRate, len(resp.HeartbeatData))
	}
	if resp.Parameters == nil || resp.Parameters.HeartRate != 72 {
		t.Error("Expected parameters echoed back")
	}
}

func TestGenerateHeartbeatDefaults(t *testing.T) {
	e := setupTestServer(t)

	rec := postJSON(e, "/generate_heartbeat", `{}`)

	var resp GenerateHeartbeatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success with defaults, got error %q", resp.Error)
	}
	if len(resp.HeartbeatData) != 10*usecase.SampleRate {
		t.Errorf("Expected default duration of 10s, got %d samples", len(resp.HeartbeatData))
	}
}

func TestGenerateHeartbeatInvalidParameters(t *testing.T) {
	e := setupTestServer(t)

	rec := postJSON(e, "/generate_heartbeat", `{"heart_rate": -5}`)

	// Invalid parameters come back as a success:false envelope, not a
	// transport error.
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp GenerateHeartbeatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false for invalid heart rate")
	}
	if resp.Error == "" {
		t.Error("Expected an error message")
	}
	if resp.HeartbeatData != nil {
		t.Error("Expected no heartbeat data on failure")
	}
}

func TestGenerateBraceletEndpoint(t *testing.T) {
	e := setupTestServer(t)

	// Get a waveform first, mirroring the client's two-step flow.
	rec := postJSON(e, "/generate_heartbeat", `{"duration": 1, "stress_level": 0}`)
	var heartbeat GenerateHeartbeatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &heartbeat); err != nil {
		t.Fatalf("Failed to decode heartbeat response: %v", err)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"heartbeat_data": heartbeat.HeartbeatData,
		"radius":         30,
		"thickness":      5,
		"ring_count":     64,
	})
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	rec = postJSON(e, "/generate_3d_bracelet", string(payload))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp GenerateBraceletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got error %q", resp.Error)
	}
	if resp.ModelData == nil {
		t.Fatal("Expected model data in response")
	}
	if resp.ModelData.VertexCount() != 64*4 {
		t.Errorf("Expected 256 vertices, got %d", resp.ModelData.VertexCount())
	}
	if resp.STLFile == "" {
		t.Fatal("Expected an stl_file identifier")
	}

	// The identifier must resolve to the binary document.
	req := httptest.NewRequest(http.MethodGet, "/download_stl/"+resp.STLFile, nil)
	download := httptest.NewRecorder()
	e.ServeHTTP(download, req)

	if download.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for download, got %d", download.Code)
	}
	if got := download.Header().Get(echo.HeaderContentType); got != "application/octet-stream" {
		t.Errorf("Expected octet-stream content type, got %q", got)
	}
	if want := 84 + 50*resp.ModelData.TriangleCount(); download.Body.Len() != want {
		t.Errorf("Expected %d document bytes, got %d", want, download.Body.Len())
	}
}

func TestGenerateBraceletWithoutWaveform(t *testing.T) {
	e := setupTestServer(t)

	rec := postJSON(e, "/generate_3d_bracelet", `{"radius": 30}`)

	var resp GenerateBraceletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false without heartbeat data")
	}
}

func TestDownloadSTLMissing(t *testing.T) {
	e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/download_stl/missing.stl", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	var resp DownloadErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false for missing document")
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
}
