package memory

import (
	"context"

	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []economy.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.write(ctx, func() {
		r.store.events[playerID] = append(r.store.events[playerID], events...)
	})
	return nil
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]economy.DomainEvent, error) {
	var out []economy.DomainEvent
	var err error
	r.store.read(ctx, func() {
		events, ok := r.store.events[playerID]
		if !ok || len(events) == 0 {
			err = ports.ErrNotFound
			return
		}
		// Newest first, like the durable adapter.
		out = make([]economy.DomainEvent, 0, len(events))
		for i := len(events) - 1; i >= 0; i-- {
			out = append(out, events[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	})
	return out, err
}
