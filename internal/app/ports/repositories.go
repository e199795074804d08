package ports

import (
	"context"
	"time"

	"gravehold/internal/domain/economy"
)

// ExecutionResult is the snapshot persisted alongside an idempotency key so
// a retried craft or trade replays its original outcome.
type ExecutionResult struct {
	Reason string
	Events []economy.DomainEvent
}

type ExecutionRecord struct {
	ID             string
	PlayerID       string
	IdempotencyKey string
	Operation      string
	Result         ExecutionResult
	AppliedAt      time.Time
}

// PlayerStateRepository persists the whole player aggregate (carried
// inventory, stash, purse) under an optimistic version.
type PlayerStateRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (economy.PlayerState, error)
	SaveWithVersion(ctx context.Context, state economy.PlayerState, expectedVersion int64) error
}

// VendorRepository owns vendor offers and their remaining stock.
type VendorRepository interface {
	GetOffer(ctx context.Context, vendorID string, item economy.ItemID) (economy.Offer, error)
	SaveOffer(ctx context.Context, vendorID string, offer economy.Offer) error
	ListByVendorID(ctx context.Context, vendorID string) ([]economy.Offer, error)
}

// ExecutionRepository stores idempotency records for the transactional
// subsystems (crafting, vendor trade).
type ExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ExecutionRecord) error
}

// EventRepository is the durable notification feed the UI layer polls.
type EventRepository interface {
	Append(ctx context.Context, playerID string, events []economy.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]economy.DomainEvent, error)
}

// CatalogProvider resolves item definitions from game content data.
type CatalogProvider interface {
	economy.Catalog
}
