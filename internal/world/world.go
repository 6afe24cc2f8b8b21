package world

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// EventObserver получает события мира из цикла обработки.
// Используется для привязки метрик без зависимости ядра от observability.
type EventObserver interface {
	ObserveEvent(event Event)
}

// WorldManager владеет состоянием одного мира и координирует все операции:
// сетку блоков, генератор, стример чанков и текущий выбранный тип блока.
// Состояние явное, без глобальных переменных — в одном процессе может
// существовать несколько независимых миров.
//
// Контракт ядра однопоточный: мутации и чтения чередуются в пределах
// одного шага симуляции. Мьютекс — внешняя синхронизация для фонового
// цикла событий и HTTP-обработчиков.
type WorldManager struct {
	id          uuid.UUID      // Уникальный идентификатор мира
	grid        *WorldGrid     // Разреженная сетка блоков
	generator   *TerrainGenerator
	streamer    *ChunkStreamer
	selected    block.BlockID // Текущий тип блока для установки
	events      chan Event    // События мира
	currentTick uint64        // Текущий тик симуляции
	seed        int64         // Сид генерации
	observer    EventObserver // Приёмник событий (опционально)
	mu          sync.RWMutex  // Мьютекс для общего доступа
	ctx         context.Context
	cancelFunc  context.CancelFunc
}

// NewWorldManager создаёт новый мир с указанным сидом и параметрами
// генерации по умолчанию
func NewWorldManager(seed int64) *WorldManager {
	return NewWorldManagerWithParams(seed, DefaultTerrainParams())
}

// NewWorldManagerWithParams создаёт новый мир с указанными параметрами генерации
func NewWorldManagerWithParams(seed int64, params TerrainParams) *WorldManager {
	ctx, cancel := context.WithCancel(context.Background())

	grid := NewWorldGrid()
	generator := NewTerrainGeneratorWithParams(seed, params)

	return &WorldManager{
		id:         uuid.New(),
		grid:       grid,
		generator:  generator,
		streamer:   NewChunkStreamer(grid, generator),
		selected:   block.GrassBlockID,
		events:     make(chan Event, 1024),
		seed:       seed,
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// ID возвращает уникальный идентификатор мира
func (wm *WorldManager) ID() uuid.UUID {
	return wm.id
}

// Seed возвращает сид генерации мира
func (wm *WorldManager) Seed() int64 {
	return wm.seed
}

// SetEventObserver задаёт приёмник событий мира
func (wm *WorldManager) SetEventObserver(observer EventObserver) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.observer = observer
}

// Run запускает обработку событий мира. Если parentCtx != nil,
// жизненный цикл привязывается к нему.
func (wm *WorldManager) Run(parentCtx context.Context) {
	if parentCtx != nil {
		wm.cancelFunc() // освобождаем контекст, созданный конструктором
		childCtx, cancel := context.WithCancel(parentCtx)
		wm.ctx = childCtx
		wm.cancelFunc = cancel
	}

	go wm.processEvents()
}

// Stop останавливает обработку событий мира
func (wm *WorldManager) Stop() {
	wm.cancelFunc()
}

// processEvents обрабатывает события мира
func (wm *WorldManager) processEvents() {
	for {
		select {
		case <-wm.ctx.Done():
			return
		case event := <-wm.events:
			wm.handleEvent(event)
		}
	}
}

// handleEvent обрабатывает одно событие мира
func (wm *WorldManager) handleEvent(event Event) {
	switch e := event.(type) {
	case ChunkEvent:
		logging.Debug("Чанк (%d,%d) сгенерирован за %v", e.Coords.X, e.Coords.Z, e.Duration)
	case BlockEvent:
		if e.EventType == EventTypeBlockPlaced {
			logging.Debug("Блок %d установлен в (%d,%d,%d)", e.Block, e.Position.X, e.Position.Y, e.Position.Z)
		} else {
			logging.Debug("Блок %d разрушен в (%d,%d,%d)", e.Block, e.Position.X, e.Position.Y, e.Position.Z)
		}
	case TickEvent:
		// Тики не логируем, только передаём наблюдателю
	}

	wm.mu.RLock()
	observer := wm.observer
	wm.mu.RUnlock()

	if observer != nil {
		observer.ObserveEvent(event)
	}
}

// emitEvent отправляет событие в канал без блокировки
func (wm *WorldManager) emitEvent(event Event) {
	select {
	case wm.events <- event:
		// Успешно отправлено
	default:
		logging.Warn("Канал событий мира переполнен, событие %d пропущено", event.GetType())
	}
}

// GetBlock возвращает тип блока в мировой позиции
func (wm *WorldManager) GetBlock(pos vec.Vec3) block.BlockID {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.grid.Get(pos)
}

// SetBlock записывает тип блока в мировую позицию
func (wm *WorldManager) SetBlock(pos vec.Vec3, id block.BlockID) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.grid.Set(pos, id)
}

// BlockCount возвращает количество непустых блоков в мире
func (wm *WorldManager) BlockCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.grid.Len()
}

// LoadedChunkCount возвращает количество сгенерированных чанков
func (wm *WorldManager) LoadedChunkCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.streamer.LoadedCount()
}

// EnsureLoaded генерирует недостающие чанки в радиусе Чебышева radius от
// чанка наблюдателя и возвращает количество новых чанков. Вызывается
// каждый раз, когда наблюдатель пересекает границу чанка.
func (wm *WorldManager) EnsureLoaded(viewpoint vec.Vec2, radius int) int {
	wm.mu.Lock()
	start := time.Now()
	generated := wm.streamer.EnsureLoaded(viewpoint, radius)
	elapsed := time.Since(start)
	wm.mu.Unlock()

	for _, coords := range generated {
		wm.emitEvent(ChunkEvent{
			Coords:   coords,
			Duration: elapsed / time.Duration(max(len(generated), 1)),
		})
	}

	return len(generated)
}

// ExposedBlocks возвращает все открытые блоки мира — единственные блоки,
// которые нужны рендереру
func (wm *WorldManager) ExposedBlocks() []ExposedBlock {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return ExposedBlocks(wm.grid)
}

// ForEachExposed обходит открытые блоки мира под блокировкой чтения
func (wm *WorldManager) ForEachExposed(fn func(pos vec.Vec3, id block.BlockID) bool) {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	ForEachExposed(wm.grid, fn)
}

// Interact разрешает взаимодействие лучом: разрушение ближайшего блока
// или установку выбранного типа перед ближайшей поверхностью
func (wm *WorldManager) Interact(origin, direction vec.Vec3Float, action Action) InteractionResult {
	wm.mu.Lock()
	result := ResolveInteraction(wm.grid, origin, direction, action, wm.selected)
	wm.mu.Unlock()

	if result.Applied {
		eventType := EventTypeBlockBroken
		changed := result.Removed
		if result.Action == ActionPlace {
			eventType = EventTypeBlockPlaced
			// Тип берётся из результата: он зафиксирован под блокировкой,
			// параллельный SelectKind не может подменить его в событии
			changed = result.Placed
		}
		wm.emitEvent(BlockEvent{
			EventType: eventType,
			Position:  result.Target,
			Block:     changed,
			Chunk:     result.Target.ToChunkCoords(),
		})
	}

	return result
}

// SelectKind устанавливает текущий тип блока для установки.
// Пустой или незарегистрированный тип отклоняется.
func (wm *WorldManager) SelectKind(id block.BlockID) error {
	if id == block.EmptyBlockID {
		return fmt.Errorf("нельзя выбрать пустой блок для установки")
	}
	if !block.IsValidBlockID(id) {
		return fmt.Errorf("неизвестный тип блока: %d", id)
	}

	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.selected = id
	return nil
}

// SelectedKind возвращает текущий тип блока для установки
func (wm *WorldManager) SelectedKind() block.BlockID {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.selected
}

// CurrentTick возвращает номер текущего тика симуляции
func (wm *WorldManager) CurrentTick() uint64 {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.currentTick
}

// ProcessTick обрабатывает один тик симуляции
func (wm *WorldManager) ProcessTick(deltaTime float64) {
	wm.mu.Lock()
	wm.currentTick++
	tickID := wm.currentTick
	wm.mu.Unlock()

	wm.emitEvent(TickEvent{TickID: tickID, DeltaTime: deltaTime})
}
