package block

var registry = make(map[BlockID]BlockDescriptor)

// Register добавляет описание блока в регистр
func Register(id BlockID, descriptor BlockDescriptor) {
	registry[id] = descriptor
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (BlockDescriptor, bool) {
	descriptor, exists := registry[id]
	return descriptor, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// RegisteredIDs возвращает все зарегистрированные идентификаторы блоков
func RegisteredIDs() []BlockID {
	ids := make([]BlockID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков. Набор закрытый: EmptyBlockID — сентинел
// "блока нет", он никогда не хранится в сетке мира.
const (
	EmptyBlockID BlockID = iota // 0
	GrassBlockID                // 1
	DirtBlockID                 // 2
	StoneBlockID                // 3
	WoodBlockID                 // 4
	SandBlockID                 // 5
)
