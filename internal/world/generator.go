package world

import (
	"math"

	"github.com/annel0/voxel-game/internal/util"
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// Константы мира
const (
	ChunkSize   = 16 // Ширина чанка по осям X и Z
	WorldHeight = 64 // Потолок мира по оси Y
)

// TerrainParams содержит параметры генерации ландшафта
type TerrainParams struct {
	Frequency   float64 // Масштаб шума по горизонтали
	Amplitude   float64 // Размах высот рельефа
	FloorOffset int     // Минимальная высота поверхности
	DirtDepth   int     // Толщина слоя земли под поверхностью
}

// DefaultTerrainParams возвращает параметры генерации по умолчанию
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		Frequency:   0.05,
		Amplitude:   15,
		FloorOffset: 1,
		DirtDepth:   3,
	}
}

// TerrainGenerator детерминированно генерирует колонны ландшафта.
// Высота каждой колонны — чистая функция мировых координат (X, Z) и сида:
// одинаковые входы всегда дают одинаковый ландшафт независимо от порядка
// вызовов, что позволяет идемпотентную регенерацию и воспроизводимые тесты.
type TerrainGenerator struct {
	noise  *util.NoiseGenerator
	params TerrainParams
	seed   int64
}

// NewTerrainGenerator создаёт генератор ландшафта с параметрами по умолчанию
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return NewTerrainGeneratorWithParams(seed, DefaultTerrainParams())
}

// NewTerrainGeneratorWithParams создаёт генератор ландшафта с указанными параметрами
func NewTerrainGeneratorWithParams(seed int64, params TerrainParams) *TerrainGenerator {
	return &TerrainGenerator{
		noise:  util.NewNoiseGenerator(seed),
		params: params,
		seed:   seed,
	}
}

// Seed возвращает сид генератора
func (tg *TerrainGenerator) Seed() int64 {
	return tg.seed
}

// Generate заполняет сетку мира блоками чанка с указанными координатами.
// Для каждой колонны (x, z) блоки пишутся от y=0 до высоты поверхности
// включительно; выше поверхности остаётся открытый воздух. Генератор
// мутирует только сетку; учёт загруженных чанков ведёт ChunkStreamer.
func (tg *TerrainGenerator) Generate(grid *WorldGrid, coords vec.Vec2) {
	globalStartX := coords.X << 4 // chunkX * 16
	globalStartZ := coords.Z << 4 // chunkZ * 16

	for z := 0; z < ChunkSize; z++ {
		for x := 0; x < ChunkSize; x++ {
			globalX := globalStartX + x
			globalZ := globalStartZ + z

			height := tg.ColumnHeight(globalX, globalZ)

			for y := 0; y <= height; y++ {
				pos := vec.Vec3{X: globalX, Y: y, Z: globalZ}
				grid.Set(pos, tg.blockForDepth(y, height))
			}
		}
	}
}

// ColumnHeight возвращает высоту поверхности колонны в мировых координатах
func (tg *TerrainGenerator) ColumnHeight(globalX, globalZ int) int {
	noiseX := float64(globalX) * tg.params.Frequency
	noiseZ := float64(globalZ) * tg.params.Frequency

	// Шум приведён к [0, 1], высота — к [FloorOffset, FloorOffset+Amplitude]
	height := int(math.Round(tg.noise.Noise2D01(noiseX, noiseZ)*tg.params.Amplitude)) + tg.params.FloorOffset

	if height < 0 {
		height = 0
	}
	if height > WorldHeight-1 {
		height = WorldHeight - 1
	}
	return height
}

// blockForDepth возвращает тип блока для глубины y в колонне высотой height
func (tg *TerrainGenerator) blockForDepth(y, height int) block.BlockID {
	switch {
	case y == height:
		return block.GrassBlockID
	case y >= height-tg.params.DirtDepth:
		return block.DirtBlockID
	default:
		return block.StoneBlockID
	}
}
