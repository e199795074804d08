package economy

import "time"

const (
	EventInventoryChanged  = "inventory_changed"
	EventCurrencyChanged   = "currency_changed"
	EventCraftingCompleted = "crafting_completed"
	EventPurchaseCompleted = "purchase_completed"
	EventSaleCompleted     = "sale_completed"
)

// DomainEvent is a notification raised by a successful mutation. The UI
// layer consumes these after each call instead of subscribing to the
// engine's internals directly.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func newEvent(evType string, payload map[string]any) DomainEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return DomainEvent{Type: evType, OccurredAt: time.Now(), Payload: payload}
}
