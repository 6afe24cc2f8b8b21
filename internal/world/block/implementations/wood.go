package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// WoodDescriptor описывает блок дерева — доступен только для установки игроком
type WoodDescriptor struct{}

// ID возвращает идентификатор блока
func (d *WoodDescriptor) ID() block.BlockID {
	return block.WoodBlockID
}

// Name возвращает имя блока
func (d *WoodDescriptor) Name() string {
	return "Wood"
}

// Color возвращает цвет блока
func (d *WoodDescriptor) Color() block.Color {
	return block.Color{R: 102, G: 72, B: 38}
}

func init() {
	block.Register(block.WoodBlockID, &WoodDescriptor{})
}
