package trade

import (
	"context"
	"errors"
	"testing"

	"gravehold/internal/adapter/repo/memory"
	"gravehold/internal/domain/economy"
)

type fakeCatalog map[economy.ItemID]economy.ItemDef

func (f fakeCatalog) Resolve(id economy.ItemID) (economy.ItemDef, bool) {
	def, ok := f[id]
	return def, ok
}

func testCatalog() fakeCatalog {
	return fakeCatalog{
		"potion": {ID: "potion", Name: "Potion", Tag: "consumable.potion", MaxStack: 10, SellValue: 25},
		"sword":  {ID: "sword", Name: "Sword", Tag: "weapon.sword", MaxStack: 1, SellValue: 120},
	}
}

func newTestUseCase(t *testing.T, cat fakeCatalog, funds int) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedPlayer(economy.PlayerState{
		PlayerID: "p-1",
		Carried:  economy.NewContainer(10, cat),
		Stash:    economy.NewContainer(20, cat),
		Purse:    economy.NewLedger(funds),
		Version:  1,
	})
	store.SeedOffer("v-1", economy.Offer{Item: "potion", Price: 30, Stock: 6})
	uc := UseCase{
		TxManager:  memory.NewTxManager(store),
		StateRepo:  memory.NewPlayerStateRepo(store),
		VendorRepo: memory.NewVendorRepo(store),
		ExecRepo:   memory.NewExecutionRepo(store),
		EventRepo:  memory.NewEventRepo(store),
		Catalog:    cat,
	}
	return uc, store
}

func TestBuy_MovesStockFundsAndItemsTogether(t *testing.T) {
	uc, store := newTestUseCase(t, testCatalog(), 100)

	resp, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 2, IdempotencyKey: "k-1",
	})
	if err != nil {
		t.Fatalf("buy error: %v", err)
	}
	if resp.Player.Currency != 40 {
		t.Fatalf("expected 40 left, got %d", resp.Player.Currency)
	}
	if resp.Player.Carried.Slots[0].Count != 2 {
		t.Fatalf("expected 2 potions carried, got %+v", resp.Player.Carried)
	}
	offer, err := memory.NewVendorRepo(store).GetOffer(context.Background(), "v-1", "potion")
	if err != nil {
		t.Fatalf("get offer: %v", err)
	}
	if offer.Stock != 4 {
		t.Fatalf("expected vendor stock 4, got %d", offer.Stock)
	}
}

func TestBuy_InsufficientFundsChangesNothing(t *testing.T) {
	uc, store := newTestUseCase(t, testCatalog(), 20)

	_, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 1, IdempotencyKey: "k-1",
	})
	if !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	state, err := memory.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Purse.Amount() != 20 || state.Carried.UsedSlots() != 0 || state.Version != 1 {
		t.Fatalf("failed buy mutated state: %+v", state)
	}
	offer, _ := memory.NewVendorRepo(store).GetOffer(context.Background(), "v-1", "potion")
	if offer.Stock != 6 {
		t.Fatalf("failed buy mutated vendor stock: %d", offer.Stock)
	}
}

func TestBuy_InsufficientStock(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog(), 1000)

	_, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 7, IdempotencyKey: "k-1",
	})
	if !errors.Is(err, economy.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestBuy_ReplaysByIdempotencyKey(t *testing.T) {
	uc, store := newTestUseCase(t, testCatalog(), 100)

	first, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 1, IdempotencyKey: "retry-1",
	})
	if err != nil {
		t.Fatalf("first buy: %v", err)
	}
	second, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 1, IdempotencyKey: "retry-1",
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if second.Player.Currency != first.Player.Currency {
		t.Fatalf("replay charged twice: %d vs %d", second.Player.Currency, first.Player.Currency)
	}
	offer, _ := memory.NewVendorRepo(store).GetOffer(context.Background(), "v-1", "potion")
	if offer.Stock != 5 {
		t.Fatalf("replay decremented stock again: %d", offer.Stock)
	}
}

func TestSell_PaysCatalogValue(t *testing.T) {
	cat := testCatalog()
	uc, store := newTestUseCase(t, cat, 0)
	state, _ := memory.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), "p-1")
	state.Carried.AddItem("potion", 4)
	state.Carried.DrainEvents()
	store.SeedPlayer(state)

	resp, err := uc.Sell(context.Background(), SellRequest{
		PlayerID: "p-1", Item: "potion", Quantity: 3, IdempotencyKey: "k-1",
	})
	if err != nil {
		t.Fatalf("sell error: %v", err)
	}
	if resp.Player.Currency != 75 {
		t.Fatalf("expected 75 funds, got %d", resp.Player.Currency)
	}
	if resp.Player.Carried.Slots[0].Count != 1 {
		t.Fatalf("expected 1 potion left, got %+v", resp.Player.Carried)
	}
}

func TestSell_MoreThanOwned(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog(), 0)

	_, err := uc.Sell(context.Background(), SellRequest{
		PlayerID: "p-1", Item: "potion", Quantity: 1, IdempotencyKey: "k-1",
	})
	if !errors.Is(err, economy.ErrInsufficientMaterials) {
		t.Fatalf("expected ErrInsufficientMaterials, got %v", err)
	}
}

func TestOffers_BoundsPurchasesByFunds(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog(), 100)

	resp, err := uc.Offers(context.Background(), OffersRequest{PlayerID: "p-1", VendorID: "v-1"})
	if err != nil {
		t.Fatalf("offers error: %v", err)
	}
	if len(resp.Offers) != 1 {
		t.Fatalf("expected one offer, got %+v", resp.Offers)
	}
	offer := resp.Offers[0]
	if offer.Item != "potion" || offer.Name != "Potion" || offer.MaxAffordable != 3 {
		t.Fatalf("unexpected offer view: %+v", offer)
	}
}

func TestBuy_RequiresIdempotencyKey(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog(), 100)

	_, err := uc.Buy(context.Background(), BuyRequest{
		PlayerID: "p-1", VendorID: "v-1", Item: "potion", Quantity: 1,
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
