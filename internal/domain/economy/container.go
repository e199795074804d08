package economy

import "sort"

// AddResult reports how much of an AddItem request was placed. Overflow is
// the portion that did not fit; disposal of overflow is the caller's policy.
type AddResult struct {
	Accepted int `json:"accepted"`
	Overflow int `json:"overflow"`
}

// Container is a slot-indexed store of item stacks. Slots are sparse: an
// absent index is an empty slot. One instance backs the carried inventory
// and a structurally identical instance backs the stash.
//
// Every occupied slot holds a count in [1, MaxStack(item)]. All failing
// operations validate before any mutation, so a returned error always means
// the container is unchanged.
type Container struct {
	capacity int
	catalog  Catalog
	slots    map[int]StackEntry
	pending  []DomainEvent
}

func NewContainer(capacity int, catalog Catalog) *Container {
	if capacity < 0 {
		capacity = 0
	}
	return &Container{
		capacity: capacity,
		catalog:  catalog,
		slots:    make(map[int]StackEntry),
	}
}

// RestoreContainer rebuilds a container from persisted slot records,
// validating the stack-capacity invariant at the boundary.
func RestoreContainer(capacity int, catalog Catalog, records []SlotRecord) (*Container, error) {
	c := NewContainer(capacity, catalog)
	for _, rec := range records {
		if rec.Slot < 0 || rec.Slot >= c.capacity {
			return nil, ErrInvalidSlot
		}
		def, ok := catalog.Resolve(rec.Item)
		if !ok {
			return nil, ErrUnknownItem
		}
		if rec.Count < 1 || rec.Count > def.MaxStack {
			return nil, ErrInvalidAmount
		}
		if _, occupied := c.slots[rec.Slot]; occupied {
			return nil, ErrInvalidSlot
		}
		c.slots[rec.Slot] = StackEntry{Item: rec.Item, Count: rec.Count}
	}
	return c, nil
}

func (c *Container) Capacity() int { return c.capacity }

func (c *Container) UsedSlots() int { return len(c.slots) }

// At returns the stack at a slot, if any.
func (c *Container) At(slot int) (StackEntry, bool) {
	entry, ok := c.slots[slot]
	return entry, ok
}

// Records returns the container contents as ordered (slot, item, count)
// records for the persistence collaborator.
func (c *Container) Records() []SlotRecord {
	out := make([]SlotRecord, 0, len(c.slots))
	for _, slot := range c.occupiedSlots() {
		entry := c.slots[slot]
		out = append(out, SlotRecord{Slot: slot, Item: entry.Item, Count: entry.Count})
	}
	return out
}

// AddItem places count units of item, filling partially-filled stacks of the
// same item in ascending slot order first, then opening new stacks in empty
// slots. Whatever does not fit is reported as overflow.
func (c *Container) AddItem(item ItemID, count int) (AddResult, error) {
	if count <= 0 {
		return AddResult{}, ErrInvalidAmount
	}
	def, ok := c.catalog.Resolve(item)
	if !ok {
		return AddResult{}, ErrUnknownItem
	}

	remaining := count
	for _, slot := range c.occupiedSlots() {
		if remaining == 0 {
			break
		}
		entry := c.slots[slot]
		if entry.Item != item || entry.Count >= def.MaxStack {
			continue
		}
		take := def.MaxStack - entry.Count
		if take > remaining {
			take = remaining
		}
		entry.Count += take
		c.slots[slot] = entry
		remaining -= take
	}
	for slot := 0; slot < c.capacity && remaining > 0; slot++ {
		if _, occupied := c.slots[slot]; occupied {
			continue
		}
		take := def.MaxStack
		if take > remaining {
			take = remaining
		}
		c.slots[slot] = StackEntry{Item: item, Count: take}
		remaining -= take
	}

	res := AddResult{Accepted: count - remaining, Overflow: remaining}
	if res.Accepted > 0 {
		c.notifyChanged(item, res.Accepted)
	}
	return res, nil
}

// RemoveItem removes count units of item across slots in ascending order.
// It fails without mutating when the container owns fewer than count.
func (c *Container) RemoveItem(item ItemID, count int) error {
	if count <= 0 {
		return ErrInvalidAmount
	}
	if c.GetAmount(item) < count {
		return ErrInsufficientMaterials
	}

	remaining := count
	for _, slot := range c.FindSlotsFor(item) {
		if remaining == 0 {
			break
		}
		entry := c.slots[slot]
		take := entry.Count
		if take > remaining {
			take = remaining
		}
		entry.Count -= take
		remaining -= take
		if entry.Count == 0 {
			delete(c.slots, slot)
		} else {
			c.slots[slot] = entry
		}
	}
	c.notifyChanged(item, -count)
	return nil
}

// RemoveAtSlot removes amount units from exactly one slot.
func (c *Container) RemoveAtSlot(slot, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	entry, ok := c.slots[slot]
	if !ok || slot < 0 || slot >= c.capacity {
		return ErrInvalidSlot
	}
	if entry.Count < amount {
		return ErrInsufficientMaterials
	}
	entry.Count -= amount
	if entry.Count == 0 {
		delete(c.slots, slot)
	} else {
		c.slots[slot] = entry
	}
	c.notifyChanged(entry.Item, -amount)
	return nil
}

// GetAmount sums the counts of item across all slots.
func (c *Container) GetAmount(item ItemID) int {
	total := 0
	for _, entry := range c.slots {
		if entry.Item == item {
			total += entry.Count
		}
	}
	return total
}

// GetAmountByTag sums counts across slots whose item resolves to tag. Used
// for tag-addressed ingredient lookups.
func (c *Container) GetAmountByTag(tag Tag) int {
	total := 0
	for _, entry := range c.slots {
		if def, ok := c.catalog.Resolve(entry.Item); ok && def.Tag == tag {
			total += entry.Count
		}
	}
	return total
}

// FindSlotsFor returns the slots holding item in ascending order. Add and
// Remove both walk this order, which keeps placement stable and repeatable.
func (c *Container) FindSlotsFor(item ItemID) []int {
	out := make([]int, 0, len(c.slots))
	for _, slot := range c.occupiedSlots() {
		if c.slots[slot].Item == item {
			out = append(out, slot)
		}
	}
	return out
}

// CanAccept reports whether AddItem(item, count) would place every unit.
func (c *Container) CanAccept(item ItemID, count int) bool {
	def, ok := c.catalog.Resolve(item)
	if !ok || count <= 0 {
		return false
	}
	room := (c.capacity - len(c.slots)) * def.MaxStack
	for _, entry := range c.slots {
		if entry.Item == item && entry.Count < def.MaxStack {
			room += def.MaxStack - entry.Count
		}
	}
	return room >= count
}

// MoveTo transfers amount units from one slot of c into dst atomically:
// either the destination accepts the full amount and both sides commit, or
// neither container changes.
func (c *Container) MoveTo(dst *Container, slot, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	entry, ok := c.slots[slot]
	if !ok {
		return ErrInvalidSlot
	}
	if entry.Count < amount {
		return ErrInsufficientMaterials
	}
	if !dst.CanAccept(entry.Item, amount) {
		return ErrInventoryFull
	}
	if err := c.RemoveAtSlot(slot, amount); err != nil {
		return err
	}
	res, err := dst.AddItem(entry.Item, amount)
	if err != nil || res.Overflow != 0 {
		// Unreachable after the CanAccept probe; kept as a consistency check.
		return ErrInventoryFull
	}
	return nil
}

// DrainEvents returns and clears the notifications accumulated by
// successful mutations since the last drain.
func (c *Container) DrainEvents() []DomainEvent {
	out := c.pending
	c.pending = nil
	return out
}

// Clone copies the container contents. Pending notifications are not
// carried over; scratch copies exist to be thrown away or adopted.
func (c *Container) Clone() *Container {
	slots := make(map[int]StackEntry, len(c.slots))
	for slot, entry := range c.slots {
		slots[slot] = entry
	}
	return &Container{capacity: c.capacity, catalog: c.catalog, slots: slots}
}

// adopt replaces the container contents with a committed scratch copy and
// keeps the notifications the scratch accumulated.
func (c *Container) adopt(scratch *Container) {
	c.slots = scratch.slots
	c.pending = append(c.pending, scratch.pending...)
}

func (c *Container) occupiedSlots() []int {
	slots := make([]int, 0, len(c.slots))
	for slot := range c.slots {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

func (c *Container) notifyChanged(item ItemID, delta int) {
	c.pending = append(c.pending, newEvent(EventInventoryChanged, map[string]any{
		"item":  string(item),
		"delta": delta,
	}))
}

// removeByTag consumes count units matching tag across slots in ascending
// order. The caller is responsible for validating availability first.
func (c *Container) removeByTag(tag Tag, count int) error {
	if c.GetAmountByTag(tag) < count {
		return ErrInsufficientMaterials
	}
	remaining := count
	for _, slot := range c.occupiedSlots() {
		if remaining == 0 {
			break
		}
		entry := c.slots[slot]
		def, ok := c.catalog.Resolve(entry.Item)
		if !ok || def.Tag != tag {
			continue
		}
		take := entry.Count
		if take > remaining {
			take = remaining
		}
		entry.Count -= take
		remaining -= take
		if entry.Count == 0 {
			delete(c.slots, slot)
		} else {
			c.slots[slot] = entry
		}
		c.notifyChanged(entry.Item, -take)
	}
	return nil
}
