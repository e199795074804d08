package observe

import (
	"context"
	"errors"
	"strings"

	"gravehold/internal/app/ports"
	"gravehold/internal/app/stateview"
)

var ErrInvalidRequest = errors.New("invalid observe request")

// UseCase is the read side: the UI renders from this snapshot after every
// mutating call.
type UseCase struct {
	StateRepo ports.PlayerStateRepository
	Catalog   ports.CatalogProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PlayerID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.StateRepo.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	return Response{Player: stateview.Derive(state, u.Catalog)}, nil
}
