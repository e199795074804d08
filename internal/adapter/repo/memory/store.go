package memory

import (
	"context"
	"sync"

	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"
)

// Store holds the in-memory backing data shared by the repositories. The
// TxManager takes the write lock for the whole transaction and marks the
// context; repository methods lock themselves only outside a transaction.
type Store struct {
	mu        sync.RWMutex
	players   map[string]economy.PlayerState
	offers    map[string]map[economy.ItemID]economy.Offer
	execution map[string]ports.ExecutionRecord
	events    map[string][]economy.DomainEvent
}

func NewStore() *Store {
	return &Store{
		players:   make(map[string]economy.PlayerState),
		offers:    make(map[string]map[economy.ItemID]economy.Offer),
		execution: make(map[string]ports.ExecutionRecord),
		events:    make(map[string][]economy.DomainEvent),
	}
}

type lockedKeyType struct{}

var lockedKey = lockedKeyType{}

func withLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, lockedKey, true)
}

func lockHeld(ctx context.Context) bool {
	return ctx.Value(lockedKey) != nil
}

func (s *Store) read(ctx context.Context, fn func()) {
	if !lockHeld(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if !lockHeld(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func execKey(playerID, key string) string {
	return playerID + "::" + key
}

func (s *Store) SeedPlayer(state economy.PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[state.PlayerID] = state.Clone()
}

func (s *Store) SeedOffer(vendorID string, offer economy.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offers[vendorID] == nil {
		s.offers[vendorID] = make(map[economy.ItemID]economy.Offer)
	}
	s.offers[vendorID][offer.Item] = offer
}
