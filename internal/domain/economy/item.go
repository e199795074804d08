package economy

// ItemID identifies an item definition. IDs are stable for the lifetime of a
// player session and are resolved through a Catalog.
type ItemID string

// Tag is a category label attached to an item definition. Crafting
// ingredients address items by tag rather than by specific ID.
type Tag string

// ItemDef is the static, read-only definition of an item.
type ItemDef struct {
	ID        ItemID  `json:"id"`
	Name      string  `json:"name"`
	Tag       Tag     `json:"tag"`
	MaxStack  int     `json:"max_stack"`
	SellValue int     `json:"sell_value"`
	Recipe    *Recipe `json:"recipe,omitempty"`
}

// Recipe describes how an item is crafted. Ingredients are addressed by tag.
type Recipe struct {
	Output      ItemID      `json:"output"`
	Ingredients map[Tag]int `json:"ingredients"`
	Unlocked    bool        `json:"unlocked"`
}

// Catalog resolves item IDs to their definitions. Implementations are
// supplied by content data and must be read-only from the engine's view.
type Catalog interface {
	Resolve(id ItemID) (ItemDef, bool)
}

// StackEntry is one slot's contents: an item and a count in
// [1, MaxStack(item)]. A count of zero is never stored; the slot is removed
// from the container instead.
type StackEntry struct {
	Item  ItemID `json:"item"`
	Count int    `json:"count"`
}

// SlotRecord is the ordered serialization unit for a container, consumed by
// the persistence collaborator.
type SlotRecord struct {
	Slot  int    `json:"slot"`
	Item  ItemID `json:"item"`
	Count int    `json:"count"`
}
