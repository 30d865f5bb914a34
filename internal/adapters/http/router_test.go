package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/huddle/internal/adapters/signal"
	"github.com/dkeye/huddle/internal/app"
	"github.com/dkeye/huddle/internal/config"
)

func testRouter(t *testing.T) (*gin.Engine, *app.Coordinator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Mode:        "release",
		StaticPath:  t.TempDir(),
		ReadLimit:   32768,
		PingPeriod:  54 * time.Second,
		MaxRoomSize: 10,
		StunURLs:    []string{"stun:stun.l.google.com:19302"},
	}
	reg := app.NewRegistry()
	coord := app.NewCoordinator(reg, cfg.MaxRoomSize)
	ctl := signal.NewController(cfg, coord, reg)
	return SetupRouter(context.Background(), cfg, ctl, coord), coord
}

func TestHealthz(t *testing.T) {
	r, _ := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIceServers(t *testing.T) {
	r, _ := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/ice", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		IceServers []struct {
			URLs []string `json:"urls"`
		} `json:"iceServers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.IceServers, 1)
	assert.Equal(t, []string{"stun:stun.l.google.com:19302"}, body.IceServers[0].URLs)
}

func TestRoomsListing(t *testing.T) {
	r, coord := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/rooms", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rooms []app.RoomInfo `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Rooms)

	coord.Join("a", "standup", "Alice")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/rooms", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "standup", string(body.Rooms[0].ID))
	assert.Equal(t, 1, body.Rooms[0].Members)
	assert.False(t, body.Rooms[0].Locked)
}
