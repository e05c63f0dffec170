package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/colony-defense/internal/game"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	session, err := game.NewSession(game.ColonyConfig{
		Food:    10,
		Seed:    1,
		Layout:  game.LayoutConfig{Kind: "test"},
		Assault: game.AssaultConfig{Preset: "test"},
	}, nil)
	require.NoError(t, err)
	s := NewServer(session, nil)
	return s, s.Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleGetColony(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/colony", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 10, snap.Food)
	assert.Equal(t, 2, snap.QueuedAttackers)
	assert.Len(t, snap.Locations, 9)
	assert.NotEmpty(t, snap.SessionID)
}

func TestHandleGetDefenders(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/defenders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var kinds []game.DefenderKind
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kinds))
	require.NotEmpty(t, kinds)
	assert.Equal(t, game.HarvesterName, kinds[0].Name)
	assert.Equal(t, 2, kinds[0].FoodCost)
}

func TestHandleDeploy(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		body   string
		code   int
	}{
		{"queued", http.MethodPost, `{"location":"tunnel_0_0","variant":"Thrower"}`, http.StatusAccepted},
		{"unknown variant", http.MethodPost, `{"location":"tunnel_0_0","variant":"Cannon"}`, http.StatusNotFound},
		{"unknown location", http.MethodPost, `{"location":"moon","variant":"Thrower"}`, http.StatusNotFound},
		{"bad json", http.MethodPost, `{`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, h := newTestServer(t)
			rec := do(t, h, tc.method, "/api/defenders/deploy", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleStep_AppliesQueuedOrders(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/defenders/deploy", `{"location":"tunnel_0_0","variant":"Thrower"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var order game.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, game.OrderDeploy, order.Action)

	rec = do(t, h, http.MethodGet, "/api/orders", "")
	assert.Contains(t, rec.Body.String(), order.ID)

	rec = do(t, h, http.MethodPost, "/api/colony/step", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "continuing", resp.Outcome)
	assert.Equal(t, 1, resp.Snapshot.Turn)
	assert.Equal(t, 6, resp.Snapshot.Food)
	require.NotNil(t, resp.Snapshot.Locations[0].Defender)
	assert.Equal(t, game.ThrowerName, resp.Snapshot.Locations[0].Defender.Variant)
}

func TestHandleRemove(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/api/defenders/remove", `{"location":"tunnel_0_3"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/defenders/remove", `{"location":"Hive"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReset(t *testing.T) {
	s, h := newTestServer(t)
	before := s.session.ID()
	do(t, h, http.MethodPost, "/api/colony/step", "")

	rec := do(t, h, http.MethodPost, "/api/colony/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 0, snap.Turn)
	assert.NotEqual(t, before, snap.SessionID)
}

func TestHandleHogPlay(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/hog/play?strategy0=swap&strategy1=always:4&seed=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Score0 >= 100 || resp.Score1 >= 100)

	rec = do(t, h, http.MethodGet, "/api/hog/play?strategy0=random", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebSocketDisabledWithoutHub(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/ws", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
