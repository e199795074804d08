package replay

import (
	"context"
	"errors"
	"strings"

	"gravehold/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase serves the durable notification feed, newest first. This is the
// polled form of the engine's "inventory changed" / "currency changed"
// hooks.
type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByPlayerID(ctx, req.PlayerID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}
