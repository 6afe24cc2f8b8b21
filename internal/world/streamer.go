package world

import (
	"github.com/annel0/voxel-game/internal/vec"
)

// ChunkStreamer отслеживает, какие чанки уже сгенерированы, и запускает
// генерацию чанков, впервые попавших в радиус наблюдателя. Множество
// загруженных чанков растёт монотонно: выгрузка чанков не поддерживается,
// координата попадает в множество ровно один раз — когда для неё отработал
// генератор.
type ChunkStreamer struct {
	loaded    map[vec.Vec2]struct{}
	generator *TerrainGenerator
	grid      *WorldGrid
}

// NewChunkStreamer создаёт стример чанков поверх сетки и генератора
func NewChunkStreamer(grid *WorldGrid, generator *TerrainGenerator) *ChunkStreamer {
	return &ChunkStreamer{
		loaded:    make(map[vec.Vec2]struct{}),
		generator: generator,
		grid:      grid,
	}
}

// EnsureLoaded генерирует все чанки в радиусе Чебышева radius от center,
// которые ещё не были загружены, и возвращает их координаты. Повторный
// вызов с тем же наблюдателем и уже загруженной областью не делает ничего.
// Порядок генерации внутри партии не специфицирован: генерация чистая
// и не зависит от порядка.
func (cs *ChunkStreamer) EnsureLoaded(center vec.Vec2, radius int) []vec.Vec2 {
	var generated []vec.Vec2

	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			coords := vec.Vec2{X: center.X + dx, Z: center.Z + dz}
			if _, exists := cs.loaded[coords]; exists {
				continue
			}

			cs.generator.Generate(cs.grid, coords)
			cs.loaded[coords] = struct{}{}
			generated = append(generated, coords)
		}
	}

	return generated
}

// IsLoaded сообщает, был ли чанк уже сгенерирован
func (cs *ChunkStreamer) IsLoaded(coords vec.Vec2) bool {
	_, exists := cs.loaded[coords]
	return exists
}

// LoadedCount возвращает количество сгенерированных чанков
func (cs *ChunkStreamer) LoadedCount() int {
	return len(cs.loaded)
}
