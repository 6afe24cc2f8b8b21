package block

// Color представляет презентационный цвет блока в формате RGB
type Color struct {
	R, G, B uint8
}

// BlockDescriptor определяет визуальные атрибуты типа блока.
// Рендерер отображает каждый видимый блок цветом из каталога;
// ядро симуляции самими атрибутами не пользуется.
type BlockDescriptor interface {
	ID() BlockID
	Name() string
	Color() Color
}
