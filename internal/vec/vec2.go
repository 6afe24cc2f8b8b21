package vec

// Vec2 представляет координаты чанка (chunkX, chunkZ)
type Vec2 struct {
	X, Z int
}

// ChebyshevTo вычисляет расстояние Чебышева до другого чанка
func (v Vec2) ChebyshevTo(other Vec2) int {
	dx := v.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dz := v.Z - other.Z
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}
