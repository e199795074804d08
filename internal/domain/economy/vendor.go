package economy

// Offer is a single sellable listing held by a vendor. Stock counts down on
// Buy unless the offer is flagged infinite.
type Offer struct {
	Item          ItemID `json:"item"`
	Price         int    `json:"price"`
	Stock         int    `json:"stock"`
	InfiniteStock bool   `json:"infinite_stock"`
}

// TradeService executes buy and sell operations between a vendor offer and
// a player's container plus ledger. Stateless; all checks run before any
// mutation, so a returned error means nothing changed on either side.
type TradeService struct{}

// Buy purchases quantity units from the offer. Purchases that would not
// fully fit in the container are refused with ErrInventoryFull rather than
// partially delivered.
func (TradeService) Buy(offer *Offer, c *Container, l *Ledger, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	if !offer.InfiniteStock && offer.Stock < quantity {
		return ErrInsufficientStock
	}
	cost := offer.Price * quantity
	if l.Amount() < cost {
		return ErrInsufficientFunds
	}
	if !c.CanAccept(offer.Item, quantity) {
		return ErrInventoryFull
	}

	if err := l.Adjust(-cost); err != nil {
		return err
	}
	res, err := c.AddItem(offer.Item, quantity)
	if err != nil || res.Overflow != 0 {
		// Unreachable after the CanAccept probe; kept as a consistency check.
		return ErrInventoryFull
	}
	if !offer.InfiniteStock {
		offer.Stock -= quantity
	}
	c.pending = append(c.pending, newEvent(EventPurchaseCompleted, map[string]any{
		"item":     string(offer.Item),
		"quantity": quantity,
		"cost":     cost,
	}))
	return nil
}

// Sell removes quantity units of item from the container and credits
// price×quantity to the ledger.
func (TradeService) Sell(c *Container, l *Ledger, item ItemID, quantity, price int) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	if c.GetAmount(item) < quantity {
		return ErrInsufficientMaterials
	}
	if err := c.RemoveItem(item, quantity); err != nil {
		return err
	}
	if err := l.Adjust(price * quantity); err != nil {
		return err
	}
	c.pending = append(c.pending, newEvent(EventSaleCompleted, map[string]any{
		"item":     string(item),
		"quantity": quantity,
		"proceeds": price * quantity,
	}))
	return nil
}

// MaxAffordable bounds a purchase amount selector: how many units the
// ledger can pay for, clamped to available stock.
func (TradeService) MaxAffordable(offer Offer, l Ledger) int {
	if offer.Price <= 0 {
		if offer.InfiniteStock {
			return MaxCraftableCeiling
		}
		return offer.Stock
	}
	n := l.Amount() / offer.Price
	if !offer.InfiniteStock && n > offer.Stock {
		n = offer.Stock
	}
	return n
}
