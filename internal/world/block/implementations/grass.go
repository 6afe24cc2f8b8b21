package implementations

import (
	"github.com/annel0/voxel-game/internal/world/block"
)

// GrassDescriptor описывает блок травы — поверхность сгенерированной колонны
type GrassDescriptor struct{}

// ID возвращает идентификатор блока
func (d *GrassDescriptor) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (d *GrassDescriptor) Name() string {
	return "Grass"
}

// Color возвращает цвет блока
func (d *GrassDescriptor) Color() block.Color {
	return block.Color{R: 64, G: 168, B: 56}
}

func init() {
	block.Register(block.GrassBlockID, &GrassDescriptor{})
}
