package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

func TestWorldGrid_GetEmptyByDefault(t *testing.T) {
	grid := NewWorldGrid()

	pos := vec.Vec3{X: 10, Y: 5, Z: -3}
	assert.Equal(t, block.EmptyBlockID, grid.Get(pos), "Пустая сетка должна возвращать EmptyBlockID для любой позиции")
	assert.Equal(t, 0, grid.Len(), "Пустая сетка не должна содержать блоков")
}

func TestWorldGrid_SetAndGet(t *testing.T) {
	grid := NewWorldGrid()
	pos := vec.Vec3{X: 1, Y: 2, Z: 3}

	grid.Set(pos, block.StoneBlockID)
	assert.Equal(t, block.StoneBlockID, grid.Get(pos), "Записанный блок должен читаться обратно")
	assert.Equal(t, 1, grid.Len())

	// Перезапись другим типом
	grid.Set(pos, block.DirtBlockID)
	assert.Equal(t, block.DirtBlockID, grid.Get(pos), "Повторная запись должна перезаписывать тип")
	assert.Equal(t, 1, grid.Len(), "Перезапись не должна создавать новую запись")
}

func TestWorldGrid_SetIdempotent(t *testing.T) {
	grid := NewWorldGrid()
	pos := vec.Vec3{X: 0, Y: 0, Z: 0}

	grid.Set(pos, block.GrassBlockID)
	grid.Set(pos, block.GrassBlockID)

	assert.Equal(t, block.GrassBlockID, grid.Get(pos))
	assert.Equal(t, 1, grid.Len(), "Двойная запись того же типа должна быть эквивалентна одной")
}

func TestWorldGrid_SetEmptyRemoves(t *testing.T) {
	grid := NewWorldGrid()
	pos := vec.Vec3{X: 4, Y: 4, Z: 4}

	grid.Set(pos, block.SandBlockID)
	grid.Set(pos, block.EmptyBlockID)

	assert.Equal(t, block.EmptyBlockID, grid.Get(pos), "Запись EmptyBlockID должна удалять блок")
	assert.Equal(t, 0, grid.Len(), "Хранилище не должно содержать пустых записей")
}

func TestWorldGrid_SetEmptyOnEmptyIsNoop(t *testing.T) {
	grid := NewWorldGrid()
	pos := vec.Vec3{X: 7, Y: 8, Z: 9}

	// Удаление из уже пустой позиции не меняет состояние
	grid.Set(pos, block.EmptyBlockID)

	assert.Equal(t, 0, grid.Len())
	assert.Equal(t, block.EmptyBlockID, grid.Get(pos))
}

func TestWorldGrid_ForEachStopsOnFalse(t *testing.T) {
	grid := NewWorldGrid()
	grid.Set(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID)
	grid.Set(vec.Vec3{X: 1, Y: 0, Z: 0}, block.StoneBlockID)
	grid.Set(vec.Vec3{X: 2, Y: 0, Z: 0}, block.StoneBlockID)

	visited := 0
	grid.ForEach(func(pos vec.Vec3, id block.BlockID) bool {
		visited++
		return false
	})

	assert.Equal(t, 1, visited, "Возврат false должен прерывать обход")
}
