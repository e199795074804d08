package economy

// Ledger is the player's scalar currency balance. The balance never goes
// negative: an Adjust that would overdraw is refused without applying.
type Ledger struct {
	amount  int
	pending []DomainEvent
}

func NewLedger(amount int) Ledger {
	if amount < 0 {
		amount = 0
	}
	return Ledger{amount: amount}
}

func (l *Ledger) Amount() int { return l.amount }

// Adjust applies delta to the balance. It fails with ErrInsufficientFunds
// when the result would be negative.
func (l *Ledger) Adjust(delta int) error {
	next := l.amount + delta
	if next < 0 {
		return ErrInsufficientFunds
	}
	l.amount = next
	l.pending = append(l.pending, newEvent(EventCurrencyChanged, map[string]any{
		"delta":  delta,
		"amount": next,
	}))
	return nil
}

// DrainEvents returns and clears accumulated currency notifications.
func (l *Ledger) DrainEvents() []DomainEvent {
	out := l.pending
	l.pending = nil
	return out
}
