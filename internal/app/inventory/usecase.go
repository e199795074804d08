package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"gravehold/internal/app/ports"
	"gravehold/internal/app/shared/playertx"
	"gravehold/internal/app/stateview"
	"gravehold/internal/domain/economy"
)

var (
	ErrInvalidRequest   = errors.New("invalid inventory request")
	ErrUnknownContainer = errors.New("unknown container reference")
)

// UseCase drives the non-transactional inventory operations: looting,
// removal, discarding at a slot, and moving stacks between the carried
// inventory and the stash.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Now       func() time.Time
}

// Add loots count units of an item into the carried inventory. Overflow is
// reported back so the caller can drop the remainder in the world.
func (u UseCase) Add(ctx context.Context, req AddRequest) (AddResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Item == "" || req.Count <= 0 {
		return AddResponse{}, ErrInvalidRequest
	}
	var res economy.AddResult
	state, _, err := playertx.Mutate(ctx, u.TxManager, u.StateRepo, u.EventRepo, req.PlayerID, u.Now,
		func(state *economy.PlayerState) error {
			var err error
			res, err = state.Carried.AddItem(req.Item, req.Count)
			return err
		})
	if err != nil {
		return AddResponse{}, err
	}
	return AddResponse{
		Accepted: res.Accepted,
		Overflow: res.Overflow,
		Player:   stateview.Derive(state, u.Catalog),
	}, nil
}

// Remove takes count units of an item out of the carried inventory,
// failing without mutation when the player owns fewer.
func (u UseCase) Remove(ctx context.Context, req RemoveRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Item == "" || req.Count <= 0 {
		return Response{}, ErrInvalidRequest
	}
	return u.mutate(ctx, req.PlayerID, func(state *economy.PlayerState) error {
		return state.Carried.RemoveItem(req.Item, req.Count)
	})
}

// Discard destroys amount units at one slot of the referenced container.
func (u UseCase) Discard(ctx context.Context, req DiscardRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Amount <= 0 {
		return Response{}, ErrInvalidRequest
	}
	return u.mutate(ctx, req.PlayerID, func(state *economy.PlayerState) error {
		c, err := containerFor(state, req.From)
		if err != nil {
			return err
		}
		return c.RemoveAtSlot(req.Slot, req.Amount)
	})
}

// Move transfers amount units from a slot of one container into the other:
// carried to stash stores, stash to carried retrieves. The transfer is
// atomic across both containers.
func (u UseCase) Move(ctx context.Context, req MoveRequest) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Amount <= 0 {
		return Response{}, ErrInvalidRequest
	}
	return u.mutate(ctx, req.PlayerID, func(state *economy.PlayerState) error {
		src, err := containerFor(state, req.From)
		if err != nil {
			return err
		}
		dst := state.Stash
		if req.From == RefStash {
			dst = state.Carried
		}
		return src.MoveTo(dst, req.Slot, req.Amount)
	})
}

func (u UseCase) mutate(ctx context.Context, playerID string, fn func(*economy.PlayerState) error) (Response, error) {
	state, events, err := playertx.Mutate(ctx, u.TxManager, u.StateRepo, u.EventRepo, playerID, u.Now, fn)
	if err != nil {
		return Response{}, err
	}
	return Response{Player: stateview.Derive(state, u.Catalog), Events: events}, nil
}

func containerFor(state *economy.PlayerState, ref ContainerRef) (*economy.Container, error) {
	switch ref {
	case RefCarried:
		return state.Carried, nil
	case RefStash:
		return state.Stash, nil
	default:
		return nil, ErrUnknownContainer
	}
}
