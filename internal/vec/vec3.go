package vec

// Vec3 представляет мировую координату блока с целочисленными компонентами.
// Используется как ключ хранилища: равенство и хеширование точные, без плавающей точки.
type Vec3 struct {
	X int
	Y int
	Z int
}

// ToChunkCoords преобразует мировые координаты блока в координаты чанка
func (v Vec3) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Z: v.Z >> 4} // Деление на 16
}

// LocalInChunk возвращает локальные координаты внутри чанка (по осям X и Z)
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: v.X & 0xF, Y: v.Y, Z: v.Z & 0xF} // Модуль 16
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Neighbors6 возвращает шесть соседей по осям (±X, ±Y, ±Z)
func (v Vec3) Neighbors6() [6]Vec3 {
	return [6]Vec3{
		{X: v.X + 1, Y: v.Y, Z: v.Z},
		{X: v.X - 1, Y: v.Y, Z: v.Z},
		{X: v.X, Y: v.Y + 1, Z: v.Z},
		{X: v.X, Y: v.Y - 1, Z: v.Z},
		{X: v.X, Y: v.Y, Z: v.Z + 1},
		{X: v.X, Y: v.Y, Z: v.Z - 1},
	}
}
