package bridge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/esphome/esphomeapi-go/internal/client"
)

func newTestServer() *Server {
	device := client.New("127.0.0.1", 6053)
	return NewServer(ServerConfig{Port: "0", Logger: zap.NewNop().Sugar(), Device: device})
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "ok", body["status"])
}

func TestAllStatesEndpointEmptyCache(t *testing.T) {
	s := newTestServer()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/states", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	require.Empty(t, body["data"])
}

func TestStateEndpointUnknownKeyReturnsNotFound(t *testing.T) {
	s := newTestServer()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/states/5", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
}

func TestStateEndpointRejectsNonNumericKey(t *testing.T) {
	s := newTestServer()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/states/not-a-number", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSwitchCommandRejectsNonNumericKey(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command/switch/abc", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSwitchCommandOnUnconnectedDeviceFailsGracefully(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command/switch/1", strings.NewReader(`{"state": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	// An unconnected device has no write path yet; the recover middleware
	// (or the command's own error return) must still produce a response,
	// never crash the process.
	require.GreaterOrEqual(t, resp.StatusCode, 400)
}
