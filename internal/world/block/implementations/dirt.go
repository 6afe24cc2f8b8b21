package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// DirtDescriptor описывает блок земли — слой под поверхностью
type DirtDescriptor struct{}

// ID возвращает идентификатор блока
func (d *DirtDescriptor) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (d *DirtDescriptor) Name() string {
	return "Dirt"
}

// Color возвращает цвет блока
func (d *DirtDescriptor) Color() block.Color {
	return block.Color{R: 134, G: 96, B: 67}
}

func init() {
	block.Register(block.DirtBlockID, &DirtDescriptor{})
}
