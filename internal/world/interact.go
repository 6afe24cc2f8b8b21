package world

import (
	"math"

	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world/block"
)

// Action определяет тип взаимодействия с миром
type Action uint8

const (
	ActionBreak Action = iota // Разрушение блока
	ActionPlace               // Установка блока
)

// String возвращает строковое представление действия
func (a Action) String() string {
	switch a {
	case ActionBreak:
		return "break"
	case ActionPlace:
		return "place"
	default:
		return "unknown"
	}
}

// MaxRayDistance — максимальная дальность луча взаимодействия в блоках
const MaxRayDistance = 10

// InteractionResult представляет результат взаимодействия с миром
type InteractionResult struct {
	Applied bool          // Было ли изменение применено
	Action  Action        // Выполненное действие
	Target  vec.Vec3      // Позиция изменённого блока
	Removed block.BlockID // Снесённый блок (только для ActionBreak)
	Placed  block.BlockID // Установленный блок (только для ActionPlace)
}

// ResolveInteraction выполняет пошаговый марш луча из origin вдоль
// единичного направления direction: на каждом целом шаге d от 1 до
// MaxRayDistance точка origin + direction·d округляется до позиции блока.
//
//   - Break: первый непустой блок по лучу удаляется; если в пределах
//     дальности его нет — ничего не происходит.
//   - Place: выбранный тип ставится в последнюю пустую позицию,
//     пройденную до первого непустого блока ("упора"). Без упора в
//     пределах дальности установка невозможна: нельзя поставить блок
//     в пустоту, за которой ничего нет.
//
// Марш завершается на первой непустой ячейке и не проходит сквозь
// поверхность. Из-за округления соседние шаги могут попадать в одну
// и ту же позицию или перескакивать позицию на пологих лучах — это
// принятая аппроксимация, а не дефект.
//
// Отсутствие цели — нормальный исход, не ошибка. Неединичное направление
// молча меняло бы эффективный шаг и дальность луча, поэтому считается
// нарушением контракта.
func ResolveInteraction(grid *WorldGrid, origin, direction vec.Vec3Float, action Action, selected block.BlockID) InteractionResult {
	if math.Abs(direction.Length()-1.0) > 1e-6 {
		panic("world: направление луча должно быть единичным вектором")
	}

	var lastEmpty vec.Vec3
	haveEmpty := false

	for d := 1; d <= MaxRayDistance; d++ {
		pos := origin.Add(direction.Mul(float64(d))).Round()
		id := grid.Get(pos)

		if id == block.EmptyBlockID {
			lastEmpty = pos
			haveEmpty = true
			continue
		}

		// Первая непустая ячейка по лучу — ближайшая поверхность
		switch action {
		case ActionBreak:
			grid.Set(pos, block.EmptyBlockID)
			return InteractionResult{Applied: true, Action: action, Target: pos, Removed: id}

		case ActionPlace:
			if !haveEmpty || selected == block.EmptyBlockID || !block.IsValidBlockID(selected) {
				return InteractionResult{Applied: false, Action: action}
			}
			grid.Set(lastEmpty, selected)
			return InteractionResult{Applied: true, Action: action, Target: lastEmpty, Placed: selected}
		}
	}

	return InteractionResult{Applied: false, Action: action}
}
