package stateview

import (
	"time"

	"gravehold/internal/domain/economy"
)

// SlotView is one rendered slot: resolved display data plus the raw count.
type SlotView struct {
	Slot  int    `json:"slot"`
	Item  string `json:"item"`
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type ContainerView struct {
	Capacity int        `json:"capacity"`
	Used     int        `json:"used"`
	Slots    []SlotView `json:"slots"`
}

// PlayerView is the read model the UI layer renders from after each call.
type PlayerView struct {
	PlayerID  string        `json:"player_id"`
	Currency  int           `json:"currency"`
	Carried   ContainerView `json:"carried"`
	Stash     ContainerView `json:"stash"`
	Version   int64         `json:"version"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Derive projects a player aggregate into its UI read model, resolving
// display data through the catalog.
func Derive(state economy.PlayerState, catalog economy.Catalog) PlayerView {
	return PlayerView{
		PlayerID:  state.PlayerID,
		Currency:  state.Purse.Amount(),
		Carried:   deriveContainer(state.Carried, catalog),
		Stash:     deriveContainer(state.Stash, catalog),
		Version:   state.Version,
		UpdatedAt: state.UpdatedAt,
	}
}

func deriveContainer(c *economy.Container, catalog economy.Catalog) ContainerView {
	if c == nil {
		return ContainerView{}
	}
	records := c.Records()
	view := ContainerView{
		Capacity: c.Capacity(),
		Used:     len(records),
		Slots:    make([]SlotView, 0, len(records)),
	}
	for _, rec := range records {
		slot := SlotView{Slot: rec.Slot, Item: string(rec.Item), Count: rec.Count}
		if def, ok := catalog.Resolve(rec.Item); ok {
			slot.Name = def.Name
			slot.Tag = string(def.Tag)
		}
		view.Slots = append(view.Slots, slot)
	}
	return view
}
