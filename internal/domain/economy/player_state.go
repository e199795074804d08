package economy

import "time"

// PlayerState is the session-owned aggregate the engine mutates: carried
// inventory, stash, and currency, persisted together under one optimistic
// version.
type PlayerState struct {
	PlayerID  string
	Carried   *Container
	Stash     *Container
	Purse     Ledger
	Version   int64
	UpdatedAt time.Time
}

// Clone deep-copies the aggregate so repositories and scratch commits never
// alias live state.
func (p PlayerState) Clone() PlayerState {
	out := p
	if p.Carried != nil {
		out.Carried = p.Carried.Clone()
	}
	if p.Stash != nil {
		out.Stash = p.Stash.Clone()
	}
	out.Purse = NewLedger(p.Purse.Amount())
	return out
}

// DrainEvents collects pending notifications from every part of the
// aggregate in a stable order.
func (p *PlayerState) DrainEvents() []DomainEvent {
	var out []DomainEvent
	if p.Carried != nil {
		out = append(out, p.Carried.DrainEvents()...)
	}
	if p.Stash != nil {
		out = append(out, p.Stash.DrainEvents()...)
	}
	out = append(out, p.Purse.DrainEvents()...)
	return out
}
