package trade

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

var ErrInvalidRequest = errors.New("invalid trade request")

// UseCase executes vendor buy and sell transactions. Stock, currency, and
// inventory move together inside one transaction or not at all.
type UseCase struct {
	TxManager  ports.TxManager
	StateRepo  ports.PlayerStateRepository
	VendorRepo ports.VendorRepository
	ExecRepo   ports.ExecutionRepository
	EventRepo  ports.EventRepository
	Catalog    ports.CatalogProvider
	Metrics    ports.TradeMetrics
	Trade      economy.TradeService
	Now        func() time.Time
}

func (u UseCase) Buy(ctx context.Context, req BuyRequest) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	req.VendorID = strings.TrimSpace(req.VendorID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.PlayerID == "" || req.VendorID == "" || req.Item == "" || req.Quantity <= 0 || req.IdempotencyKey == "" {
		return Response{}, ErrInvalidRequest
	}

	return u.transact(ctx, req.PlayerID, req.IdempotencyKey, "buy", func(txCtx context.Context, state *economy.PlayerState) error {
		offer, err := u.VendorRepo.GetOffer(txCtx, req.VendorID, req.Item)
		if err != nil {
			return err
		}
		if err := u.Trade.Buy(&offer, state.Carried, &state.Purse, req.Quantity); err != nil {
			return err
		}
		return u.VendorRepo.SaveOffer(txCtx, req.VendorID, offer)
	})
}

func (u UseCase) Sell(ctx context.Context, req SellRequest) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.PlayerID == "" || req.Item == "" || req.Quantity <= 0 || req.IdempotencyKey == "" {
		return Response{}, ErrInvalidRequest
	}
	def, ok := u.Catalog.Resolve(req.Item)
	if !ok {
		return Response{}, economy.ErrUnknownItem
	}

	return u.transact(ctx, req.PlayerID, req.IdempotencyKey, "sell", func(_ context.Context, state *economy.PlayerState) error {
		return u.Trade.Sell(state.Carried, &state.Purse, req.Item, req.Quantity, def.SellValue)
	})
}

// Offers lists a vendor's stock with per-offer purchase bounds for the
// requesting player.
func (u UseCase) Offers(ctx context.Context, req OffersRequest) (OffersResponse, error) {
	if strings.TrimSpace(req.PlayerID) == "" || strings.TrimSpace(req.VendorID) == "" {
		return OffersResponse{}, ErrInvalidRequest
	}
	state, err := u.StateRepo.GetByPlayerID(ctx, req.PlayerID)
	if err != nil {
		return OffersResponse{}, err
	}
	offers, err := u.VendorRepo.ListByVendorID(ctx, req.VendorID)
	if err != nil {
		return OffersResponse{}, err
	}
	out := OffersResponse{VendorID: req.VendorID, Offers: make([]OfferView, 0, len(offers))}
	for _, offer := range offers {
		view := OfferView{
			Item:          string(offer.Item),
			Price:         offer.Price,
			Stock:         offer.Stock,
			InfiniteStock: offer.InfiniteStock,
			MaxAffordable: u.Trade.MaxAffordable(offer, state.Purse),
		}
		if def, ok := u.Catalog.Resolve(offer.Item); ok {
			view.Name = def.Name
		}
		out.Offers = append(out.Offers, view)
	}
	return out, nil
}

func (u UseCase) transact(ctx context.Context, playerID, key, operation string, fn func(context.Context, *economy.PlayerState) error) (Response, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ExecRepo.GetByIdempotencyKey(txCtx, playerID, key)
		if err == nil && exec != nil {
			state, err := u.StateRepo.GetByPlayerID(txCtx, playerID)
			if err != nil {
				return err
			}
			out = Response{Player: stateview.Derive(state, u.Catalog), Events: exec.Result.Events}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.StateRepo.GetByPlayerID(txCtx, playerID)
		if err != nil {
			return err
		}
		loadedVersion := state.Version

		if err := fn(txCtx, &state); err != nil {
			return err
		}

		state.Version++
		state.UpdatedAt = nowFn()
		if err := u.StateRepo.SaveWithVersion(txCtx, state, loadedVersion); err != nil {
			return err
		}

		events := state.DrainEvents()
		if err := u.EventRepo.Append(txCtx, playerID, events); err != nil {
			return err
		}
		if err := u.ExecRepo.SaveExecution(txCtx, ports.ExecutionRecord{
			ID:             uuid.NewString(),
			PlayerID:       playerID,
			IdempotencyKey: key,
			Operation:      operation,
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
		u.Metrics.RecordSuccess(operation)
	}
	return out, nil
}
