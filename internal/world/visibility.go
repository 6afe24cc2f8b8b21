package world

import (
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// ExposedBlock — занятая позиция с типом блока, пригодная для отрисовки
type ExposedBlock struct {
	Pos vec.Vec3
	ID  block.BlockID
}

// IsExposed сообщает, открыт ли блок в позиции pos: занят и хотя бы один
// из шести осевых соседей пуст. Соседи за пределами сгенерированной
// области читаются как пустые.
func IsExposed(grid *WorldGrid, pos vec.Vec3) bool {
	if grid.Get(pos) == block.EmptyBlockID {
		return false
	}
	for _, neighbor := range pos.Neighbors6() {
		if grid.Get(neighbor) == block.EmptyBlockID {
			return true
		}
	}
	return false
}

// ForEachExposed обходит все открытые блоки сетки. Фильтр — чистая
// функция текущего состояния сетки, без кеша и инвалидации: когда
// пересчитывать, решает вызывающая сторона. Порядок обхода не
// определён; возврат false из fn прерывает обход.
//
// Полностью замурованный блок не влияет на итоговую картинку, поэтому
// объём работы рендера ограничен площадью поверхности ландшафта,
// а не его объёмом.
func ForEachExposed(grid *WorldGrid, fn func(pos vec.Vec3, id block.BlockID) bool) {
	grid.ForEach(func(pos vec.Vec3, id block.BlockID) bool {
		for _, neighbor := range pos.Neighbors6() {
			if grid.Get(neighbor) == block.EmptyBlockID {
				return fn(pos, id)
			}
		}
		return true
	})
}

// ExposedBlocks возвращает срез всех открытых блоков сетки
func ExposedBlocks(grid *WorldGrid) []ExposedBlock {
	var result []ExposedBlock
	ForEachExposed(grid, func(pos vec.Vec3, id block.BlockID) bool {
		result = append(result, ExposedBlock{Pos: pos, ID: id})
		return true
	})
	return result
}
