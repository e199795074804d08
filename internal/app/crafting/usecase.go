package crafting

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"gravehold/internal/app/ports"
	"gravehold/internal/app/stateview"
	"gravehold/internal/domain/economy"
)

var (
	ErrInvalidRequest = errors.New("invalid crafting request")
	ErrNoRecipe       = errors.New("item has no recipe")
)

// UseCase executes crafting as a transaction: validate-then-commit against
// the carried inventory, idempotent per (player, key).
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlayerStateRepository
	ExecRepo  ports.ExecutionRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Metrics   ports.TradeMetrics
	Craft     economy.CraftingService
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.PlayerID == "" || req.IdempotencyKey == "" || req.Output == "" || req.Quantity <= 0 {
		return Response{}, ErrInvalidRequest
	}
	recipe, err := u.resolveRecipe(req.Output)
	if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ExecRepo.GetByIdempotencyKey(txCtx, req.PlayerID, req.IdempotencyKey)
		if err == nil && exec != nil {
			state, err := u.StateRepo.GetByPlayerID(txCtx, req.PlayerID)
			if err != nil {
				return err
			}
			out = Response{Player: stateview.Derive(state, u.Catalog), Events: exec.Result.Events}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.StateRepo.GetByPlayerID(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		loadedVersion := state.Version

		if err := u.Craft.Craft(state.Carried, recipe, req.Quantity); err != nil {
			return err
		}

		state.Version++
		state.UpdatedAt = nowFn()
		if err := u.StateRepo.SaveWithVersion(txCtx, state, loadedVersion); err != nil {
			return err
		}

		events := state.DrainEvents()
		if err := u.EventRepo.Append(txCtx, req.PlayerID, events); err != nil {
			return err
		}
		if err := u.ExecRepo.SaveExecution(txCtx, ports.ExecutionRecord{
			ID:             uuid.NewString(),
			PlayerID:       req.PlayerID,
			IdempotencyKey: req.IdempotencyKey,
			Operation:      "craft",
			Result:         ports.ExecutionResult{Reason: "OK", Events: events},
			AppliedAt:      nowFn(),
		}); err != nil {
			return err
		}

		out = Response{Player: stateview.Derive(state, u.Catalog), Events: events}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("craft")
	}
	return out, nil
}

// Preview reports craftability and the maximum quantity for a recipe, for
// the UI to bound its amount selector before calling Execute.
func (u UseCase) Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" || req.Output == "" {
		return PreviewResponse{}, ErrInvalidRequest
	}
	recipe, err := u.resolveRecipe(req.Output)
	if err != nil {
		return PreviewResponse{}, err
	}
	state, err := u.StateRepo.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return PreviewResponse{}, err
	}
	return PreviewResponse{
		CanCraft:     u.Craft.CanCraft(state.Carried, recipe),
		MaxCraftable: u.Craft.MaxCraftable(state.Carried, recipe),
	}, nil
}

func (u UseCase) resolveRecipe(output economy.ItemID) (economy.Recipe, error) {
	def, ok := u.Catalog.Resolve(output)
	if !ok {
		return economy.Recipe{}, economy.ErrUnknownItem
	}
	if def.Recipe == nil {
		return economy.Recipe{}, ErrNoRecipe
	}
	return *def.Recipe, nil
}
