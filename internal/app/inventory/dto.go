package inventory

import (
	"gravehold/internal/app/stateview"
	"gravehold/internal/domain/economy"
)

// ContainerRef names one of the two player containers.
type ContainerRef string

const (
	RefCarried ContainerRef = "carried"
	RefStash   ContainerRef = "stash"
)

type AddRequest struct {
	PlayerID string         `json:"player_id"`
	Item     economy.ItemID `json:"item"`
	Count    int            `json:"count"`
}

type AddResponse struct {
	Accepted int                  `json:"accepted"`
	Overflow int                  `json:"overflow"`
	Player   stateview.PlayerView `json:"player"`
}

type RemoveRequest struct {
	PlayerID string         `json:"player_id"`
	Item     economy.ItemID `json:"item"`
	Count    int            `json:"count"`
}

type DiscardRequest struct {
	PlayerID string       `json:"player_id"`
	From     ContainerRef `json:"from"`
	Slot     int          `json:"slot"`
	Amount   int          `json:"amount"`
}

type MoveRequest struct {
	PlayerID string       `json:"player_id"`
	From     ContainerRef `json:"from"`
	Slot     int          `json:"slot"`
	Amount   int          `json:"amount"`
}

type Response struct {
	Player stateview.PlayerView  `json:"player"`
	Events []economy.DomainEvent `json:"events"`
}
