package bot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStatusAPI() *StatusAPI {
	api := NewStatusAPI(func() int { return 3 })
	api.startedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	api.now = func() time.Time { return api.startedAt.Add(90 * time.Second) }
	return api
}

func TestStatusAPI_Root(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestStatusAPI().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bot online", rec.Body.String())
}

func TestStatusAPI_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestStatusAPI().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStatusAPI_Status(t *testing.T) {
	api := newTestStatusAPI()
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body.Status)
	assert.Equal(t, api.instanceID, body.InstanceID)
	assert.Equal(t, int64(90), body.UptimeSeconds)
	assert.Equal(t, "1m30s", body.Uptime)
	assert.Equal(t, 3, body.Guilds)
}

func TestStatusAPI_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestStatusAPI().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
