package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-game/internal/world/block"
	_ "github.com/annel0/voxel-game/internal/world/block/implementations"
)

func TestRegistry_AllKindsRegistered(t *testing.T) {
	kinds := []block.BlockID{
		block.EmptyBlockID,
		block.GrassBlockID,
		block.DirtBlockID,
		block.StoneBlockID,
		block.WoodBlockID,
		block.SandBlockID,
	}

	for _, id := range kinds {
		assert.True(t, block.IsValidBlockID(id), "Тип %d должен быть зарегистрирован", id)

		descriptor, exists := block.Get(id)
		assert.True(t, exists)
		assert.Equal(t, id, descriptor.ID(), "ID дескриптора должен совпадать с ключом регистра")
		assert.NotEmpty(t, descriptor.Name(), "Каждый тип блока должен иметь имя")
	}

	assert.Len(t, block.RegisteredIDs(), len(kinds), "Набор типов закрытый")
}

func TestRegistry_UnknownKind(t *testing.T) {
	assert.False(t, block.IsValidBlockID(block.BlockID(4242)))

	_, exists := block.Get(block.BlockID(4242))
	assert.False(t, exists)
}

func TestRegistry_DistinctColors(t *testing.T) {
	// Непустые типы должны различаться цветом — рендерер различает их только так
	seen := make(map[block.Color]block.BlockID)
	for _, id := range block.RegisteredIDs() {
		if id == block.EmptyBlockID {
			continue
		}
		descriptor, _ := block.Get(id)
		color := descriptor.Color()
		if other, dup := seen[color]; dup {
			t.Errorf("Типы %d и %d имеют одинаковый цвет %+v", id, other, color)
		}
		seen[color] = id
	}
}
