package playertx

import (
	"context"
	"time"

	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"
)

// Mutate runs fn against the player aggregate inside one transaction:
// load, mutate, bump version, save with the loaded version, persist the
// drained notifications. fn errors abort before anything is written.
func Mutate(
	ctx context.Context,
	tx ports.TxManager,
	states ports.PlayerStateRepository,
	events ports.EventRepository,
	playerID string,
	now func() time.Time,
	fn func(state *economy.PlayerState) error,
) (economy.PlayerState, []economy.DomainEvent, error) {
	if now == nil {
		now = time.Now
	}
	var outState economy.PlayerState
	var outEvents []economy.DomainEvent
	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := states.GetByPlayerID(txCtx, playerID)
		if err != nil {
			return err
		}
		loadedVersion := state.Version
		if err := fn(&state); err != nil {
			return err
		}
		state.Version++
		state.UpdatedAt = now()
		if err := states.SaveWithVersion(txCtx, state, loadedVersion); err != nil {
			return err
		}
		drained := state.DrainEvents()
		if events != nil {
			if err := events.Append(txCtx, playerID, drained); err != nil {
				return err
			}
		}
		outState = state
		outEvents = drained
		return nil
	})
	if err != nil {
		return economy.PlayerState{}, nil, err
	}
	return outState, outEvents, nil
}
