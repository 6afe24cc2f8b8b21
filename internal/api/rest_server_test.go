package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world"
	"github.com/annel0/voxel-game/internal/world/block"
	_ "github.com/annel0/voxel-game/internal/world/block/implementations"
)

// Сервер создаётся один раз: middleware регистрирует Prometheus-метрики
// в глобальном регистре, повторная регистрация паникует.
func TestRestServer(t *testing.T) {
	wm := world.NewWorldManager(1337)
	wm.EnsureLoaded(vec.Vec2{X: 0, Z: 0}, 0)

	server := NewRestServer(Config{Port: ":0", World: wm})

	doRequest := func(method, path, body string) *httptest.ResponseRecorder {
		var reader *strings.Reader
		if body == "" {
			reader = strings.NewReader("")
		} else {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		recorder := httptest.NewRecorder()
		server.router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("health", func(t *testing.T) {
		resp := doRequest(http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, "ok", payload["status"])
		assert.Equal(t, wm.ID().String(), payload["world_id"])
	})

	t.Run("stats", func(t *testing.T) {
		resp := doRequest(http.MethodGet, "/api/stats", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, float64(1337), payload["seed"])
		assert.Equal(t, float64(1), payload["loaded_chunks"])
		assert.Greater(t, payload["blocks"], float64(0))
	})

	t.Run("exposed with limit", func(t *testing.T) {
		resp := doRequest(http.MethodGet, "/api/world/exposed?limit=10", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload struct {
			Total  int `json:"total"`
			Blocks []struct {
				Kind  uint16 `json:"kind"`
				Name  string `json:"name"`
				Color string `json:"color"`
			} `json:"blocks"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Len(t, payload.Blocks, 10, "Ответ должен быть ограничен limit")
		assert.Greater(t, payload.Total, 10, "total считает все открытые блоки")
		for _, b := range payload.Blocks {
			assert.NotEmpty(t, b.Name)
			assert.True(t, strings.HasPrefix(b.Color, "#"), "Цвет — hex-строка")
		}
	})

	t.Run("exposed with huge limit", func(t *testing.T) {
		// limit из запроса ограничивается сверху и не управляет
		// размером аллокации
		resp := doRequest(http.MethodGet, "/api/world/exposed?limit=1152921504606846976", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload struct {
			Total  int               `json:"total"`
			Blocks []json.RawMessage `json:"blocks"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, payload.Total, len(payload.Blocks),
			"Открытых блоков меньше потолка — ответ должен содержать их все")
	})

	t.Run("exposed with bad limit", func(t *testing.T) {
		resp := doRequest(http.MethodGet, "/api/world/exposed?limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("block lookup", func(t *testing.T) {
		wm.SetBlock(vec.Vec3{X: 0, Y: 60, Z: 0}, block.WoodBlockID)

		resp := doRequest(http.MethodGet, "/api/world/block?x=0&y=60&z=0", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, float64(block.WoodBlockID), payload["kind"])
		assert.Equal(t, "Wood", payload["name"])
	})

	t.Run("block lookup missing params", func(t *testing.T) {
		resp := doRequest(http.MethodGet, "/api/world/block?x=1&y=2", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("selected kind roundtrip", func(t *testing.T) {
		resp := doRequest(http.MethodPut, "/api/world/selected", `{"kind": 5}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, block.SandBlockID, wm.SelectedKind())

		resp = doRequest(http.MethodGet, "/api/world/selected", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, "Sand", payload["name"])
	})

	t.Run("selected kind invalid", func(t *testing.T) {
		resp := doRequest(http.MethodPut, "/api/world/selected", `{"kind": 999}`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)

		resp = doRequest(http.MethodPut, "/api/world/selected", `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
