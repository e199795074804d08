package trade

import (
	"gravehold/internal/app/stateview"
	"gravehold/internal/domain/economy"
)

type BuyRequest struct {
	PlayerID       string         `json:"player_id"`
	VendorID       string         `json:"vendor_id"`
	Item           economy.ItemID `json:"item"`
	Quantity       int            `json:"quantity"`
	IdempotencyKey string         `json:"idempotency_key"`
}

type SellRequest struct {
	PlayerID       string         `json:"player_id"`
	Item           economy.ItemID `json:"item"`
	Quantity       int            `json:"quantity"`
	IdempotencyKey string         `json:"idempotency_key"`
}

type Response struct {
	Player stateview.PlayerView  `json:"player"`
	Events []economy.DomainEvent `json:"events"`
}

type OffersRequest struct {
	PlayerID string `json:"player_id"`
	VendorID string `json:"vendor_id"`
}

// OfferView is one vendor listing enriched with the purchase bound for the
// requesting player's funds.
type OfferView struct {
	Item          string `json:"item"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Stock         int    `json:"stock"`
	InfiniteStock bool   `json:"infinite_stock"`
	MaxAffordable int    `json:"max_affordable"`
}

type OffersResponse struct {
	VendorID string      `json:"vendor_id"`
	Offers   []OfferView `json:"offers"`
}
