package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// EmptyDescriptor описывает отсутствующий блок (воздух)
type EmptyDescriptor struct{}

// ID возвращает идентификатор блока
func (d *EmptyDescriptor) ID() block.BlockID {
	return block.EmptyBlockID
}

// Name возвращает имя блока
func (d *EmptyDescriptor) Name() string {
	return "Empty"
}

// Color возвращает цвет блока. Пустой блок не рисуется,
// цвет присутствует только для полноты каталога.
func (d *EmptyDescriptor) Color() block.Color {
	return block.Color{R: 0, G: 0, B: 0}
}

func init() {
	block.Register(block.EmptyBlockID, &EmptyDescriptor{})
}
