package memory

import (
	"context"

	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"
)

type PlayerStateRepo struct {
	store *Store
}

func NewPlayerStateRepo(store *Store) PlayerStateRepo {
	return PlayerStateRepo{store: store}
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (economy.PlayerState, error) {
	var out economy.PlayerState
	var err error
	r.store.read(ctx, func() {
		state, ok := r.store.players[playerID]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		out = state.Clone()
	})
	return out, err
}

func (r PlayerStateRepo) SaveWithVersion(ctx context.Context, state economy.PlayerState, expectedVersion int64) error {
	var err error
	r.store.write(ctx, func() {
		current, ok := r.store.players[state.PlayerID]
		if !ok {
			if expectedVersion != 0 {
				err = ports.ErrConflict
				return
			}
			r.store.players[state.PlayerID] = state.Clone()
			return
		}
		if current.Version != expectedVersion {
			err = ports.ErrConflict
			return
		}
		r.store.players[state.PlayerID] = state.Clone()
	})
	return err
}
