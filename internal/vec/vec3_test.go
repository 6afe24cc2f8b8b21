package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_ToChunkCoords(t *testing.T) {
	// Сдвиг вправо даёт корректное деление с округлением вниз
	// и для отрицательных координат
	cases := []struct {
		pos   Vec3
		chunk Vec2
	}{
		{Vec3{X: 0, Y: 10, Z: 0}, Vec2{X: 0, Z: 0}},
		{Vec3{X: 15, Y: 0, Z: 15}, Vec2{X: 0, Z: 0}},
		{Vec3{X: 16, Y: 0, Z: 16}, Vec2{X: 1, Z: 1}},
		{Vec3{X: -1, Y: 0, Z: -1}, Vec2{X: -1, Z: -1}},
		{Vec3{X: -16, Y: 0, Z: -17}, Vec2{X: -1, Z: -2}},
	}

	for _, c := range cases {
		assert.Equal(t, c.chunk, c.pos.ToChunkCoords(), "Чанк для блока (%d,%d,%d)", c.pos.X, c.pos.Y, c.pos.Z)
	}
}

func TestVec2_ChebyshevTo(t *testing.T) {
	assert.Equal(t, 0, Vec2{}.ChebyshevTo(Vec2{}))
	assert.Equal(t, 3, Vec2{X: 0, Z: 0}.ChebyshevTo(Vec2{X: 3, Z: -2}))
	assert.Equal(t, 5, Vec2{X: -2, Z: 4}.ChebyshevTo(Vec2{X: 3, Z: 1}))
}

func TestVec3Float_Round(t *testing.T) {
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: -2}, Vec3Float{X: 0.6, Y: 2.4, Z: -1.5}.Round())
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 0}, Vec3Float{X: 0.4, Y: -0.4, Z: 0}.Round())
}

func TestVec3Float_Normalized(t *testing.T) {
	n := Vec3Float{X: 3, Y: 0, Z: 4}.Normalized()
	assert.InDelta(t, 1.0, n.Length(), 1e-9, "Нормализованный вектор имеет длину 1")

	zero := Vec3Float{}.Normalized()
	assert.Equal(t, Vec3Float{}, zero, "Нулевой вектор остаётся нулевым")
}
