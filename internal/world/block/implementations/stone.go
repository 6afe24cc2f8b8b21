package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// StoneDescriptor описывает блок камня — основание колонны
type StoneDescriptor struct{}

// ID возвращает идентификатор блока
func (d *StoneDescriptor) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (d *StoneDescriptor) Name() string {
	return "Stone"
}

// Color возвращает цвет блока
func (d *StoneDescriptor) Color() block.Color {
	return block.Color{R: 130, G: 130, B: 130}
}

func init() {
	block.Register(block.StoneBlockID, &StoneDescriptor{})
}
