package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// SandDescriptor описывает блок песка — доступен только для установки игроком
type SandDescriptor struct{}

// ID возвращает идентификатор блока
func (d *SandDescriptor) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает имя блока
func (d *SandDescriptor) Name() string {
	return "Sand"
}

// Color возвращает цвет блока
func (d *SandDescriptor) Color() block.Color {
	return block.Color{R: 219, G: 206, B: 142}
}

func init() {
	block.Register(block.SandBlockID, &SandDescriptor{})
}
