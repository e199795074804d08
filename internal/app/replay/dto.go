package replay

import "gravehold/internal/domain/economy"

type Request struct {
	PlayerID string `json:"player_id"`
	Limit    int    `json:"limit"`
}

type Response struct {
	Events []economy.DomainEvent `json:"events"`
}
