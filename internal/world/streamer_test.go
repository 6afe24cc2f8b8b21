package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-game/internal/vec"
)

func newTestStreamer(seed int64) (*ChunkStreamer, *WorldGrid) {
	grid := NewWorldGrid()
	return NewChunkStreamer(grid, NewTerrainGenerator(seed)), grid
}

func TestChunkStreamer_RadiusOne(t *testing.T) {
	streamer, _ := newTestStreamer(123)

	generated := streamer.EnsureLoaded(vec.Vec2{X: 0, Z: 0}, 1)

	// Радиус Чебышева 1 вокруг (0,0) — ровно 9 чанков {-1,0,1}x{-1,0,1}
	assert.Len(t, generated, 9, "Радиус 1 должен загрузить ровно 9 чанков")
	assert.Equal(t, 9, streamer.LoadedCount())

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			assert.True(t, streamer.IsLoaded(vec.Vec2{X: dx, Z: dz}),
				"Чанк (%d,%d) должен быть загружен", dx, dz)
		}
	}
}

func TestChunkStreamer_RepeatedCallIsNoop(t *testing.T) {
	streamer, grid := newTestStreamer(123)

	streamer.EnsureLoaded(vec.Vec2{X: 0, Z: 0}, 1)
	blocksBefore := grid.Len()

	generated := streamer.EnsureLoaded(vec.Vec2{X: 0, Z: 0}, 1)

	assert.Empty(t, generated, "Повторный вызов для загруженной области не должен генерировать чанки")
	assert.Equal(t, 9, streamer.LoadedCount(), "Множество загруженных чанков не должно измениться")
	assert.Equal(t, blocksBefore, grid.Len(), "Сетка не должна измениться")
}

func TestChunkStreamer_MovingViewpoint(t *testing.T) {
	streamer, _ := newTestStreamer(42)

	streamer.EnsureLoaded(vec.Vec2{X: 0, Z: 0}, 1)

	// Сдвиг наблюдателя на один чанк догружает только новый столбец
	generated := streamer.EnsureLoaded(vec.Vec2{X: 1, Z: 0}, 1)

	assert.Len(t, generated, 3, "Сдвиг на один чанк должен догрузить 3 новых чанка")
	assert.Equal(t, 12, streamer.LoadedCount())

	for _, coords := range generated {
		assert.Equal(t, 2, coords.X, "Новые чанки должны лежать в столбце X=2")
	}
}

func TestChunkStreamer_RadiusZero(t *testing.T) {
	streamer, _ := newTestStreamer(7)

	generated := streamer.EnsureLoaded(vec.Vec2{X: 5, Z: -5}, 0)

	assert.Len(t, generated, 1, "Радиус 0 загружает только чанк наблюдателя")
	assert.True(t, streamer.IsLoaded(vec.Vec2{X: 5, Z: -5}))
}
