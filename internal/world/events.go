package world

import (
	"time"

	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// EventType определяет тип события мира
type EventType uint8

const (
	EventTypeChunkGenerated EventType = iota // Сгенерирован новый чанк
	EventTypeBlockPlaced                     // Игрок установил блок
	EventTypeBlockBroken                     // Игрок разрушил блок
	EventTypeTick                            // Тик симуляции
)

// Event представляет собой интерфейс для всех событий мира
type Event interface {
	GetType() EventType
}

// ChunkEvent представляет событие генерации чанка
type ChunkEvent struct {
	Coords   vec.Vec2      // Координаты сгенерированного чанка
	Duration time.Duration // Время генерации
}

// GetType возвращает тип события
func (e ChunkEvent) GetType() EventType {
	return EventTypeChunkGenerated
}

// BlockEvent представляет событие изменения блока игроком
type BlockEvent struct {
	EventType EventType
	Position  vec.Vec3      // Мировые координаты блока
	Block     block.BlockID // Установленный или снесённый блок
	Chunk     vec.Vec2      // Координаты чанка, которому принадлежит блок
}

// GetType возвращает тип события
func (e BlockEvent) GetType() EventType {
	return e.EventType
}

// TickEvent представляет событие тика симуляции
type TickEvent struct {
	TickID    uint64  // Номер тика
	DeltaTime float64 // Время, прошедшее с предыдущего тика (в секундах)
}

// GetType возвращает тип события
func (e TickEvent) GetType() EventType {
	return EventTypeTick
}
