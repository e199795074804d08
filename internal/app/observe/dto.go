package observe

import "gravehold/internal/app/stateview"

type Request struct {
	PlayerID string `json:"player_id"`
}

type Response struct {
	Player stateview.PlayerView `json:"player"`
}
