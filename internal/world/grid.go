package world

import (
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// WorldGrid — разреженное 3D-хранилище блоков мира.
// Хранятся только непустые блоки: запись EmptyBlockID удаляет ключ,
// поэтому в карте никогда не бывает пустого значения. Пустота
// подразумевается отсутствием ключа, и Get остаётся тотальной функцией.
type WorldGrid struct {
	blocks map[vec.Vec3]block.BlockID
}

// NewWorldGrid создаёт пустое хранилище блоков
func NewWorldGrid() *WorldGrid {
	return &WorldGrid{
		blocks: make(map[vec.Vec3]block.BlockID),
	}
}

// Get возвращает тип блока в позиции или EmptyBlockID, если блока нет
func (g *WorldGrid) Get(pos vec.Vec3) block.BlockID {
	if id, exists := g.blocks[pos]; exists {
		return id
	}
	return block.EmptyBlockID
}

// Set записывает тип блока в позицию. Запись EmptyBlockID удаляет
// существующую запись. Операция идемпотентна.
func (g *WorldGrid) Set(pos vec.Vec3, id block.BlockID) {
	if id == block.EmptyBlockID {
		delete(g.blocks, pos)
		return
	}
	g.blocks[pos] = id
}

// Len возвращает количество непустых блоков в мире
func (g *WorldGrid) Len() int {
	return len(g.blocks)
}

// ForEach обходит все непустые блоки. Порядок обхода не определён;
// возврат false из fn прерывает обход.
func (g *WorldGrid) ForEach(fn func(pos vec.Vec3, id block.BlockID) bool) {
	for pos, id := range g.blocks {
		if !fn(pos, id) {
			return
		}
	}
}
