package crafting

import (
	"gravehold/internal/app/stateview"
	"gravehold/internal/domain/economy"
)

type Request struct {
	PlayerID       string         `json:"player_id"`
	Output         economy.ItemID `json:"output"`
	Quantity       int            `json:"quantity"`
	IdempotencyKey string         `json:"idempotency_key"`
}

type Response struct {
	Player stateview.PlayerView  `json:"player"`
	Events []economy.DomainEvent `json:"events"`
}

// PreviewRequest asks what a recipe could produce without committing.
type PreviewRequest struct {
	PlayerID string         `json:"player_id"`
	Output   economy.ItemID `json:"output"`
}

type PreviewResponse struct {
	CanCraft     bool `json:"can_craft"`
	MaxCraftable int  `json:"max_craftable"`
}
