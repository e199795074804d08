package inventory

import (
	"context"
	"errors"
	"testing"

	"gravehold/internal/adapter/repo/memory"
	"gravehold/internal/app/ports"
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
		"herb":   {ID: "herb", Name: "Herb", Tag: "material.herb", MaxStack: 20, SellValue: 2},
	}
}

func newTestUseCase(t *testing.T, cat fakeCatalog) (UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedPlayer(economy.PlayerState{
		PlayerID: "p-1",
		Carried:  economy.NewContainer(10, cat),
		Stash:    economy.NewContainer(20, cat),
		Purse:    economy.NewLedger(100),
		Version:  1,
	})
	uc := UseCase{
		TxManager: memory.NewTxManager(store),
		StateRepo: memory.NewPlayerStateRepo(store),
		EventRepo: memory.NewEventRepo(store),
		Catalog:   cat,
	}
	return uc, store
}

func TestAdd_PlacesItemsAndReportsOverflow(t *testing.T) {
	cat := testCatalog()
	uc, _ := newTestUseCase(t, cat)

	resp, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 105})
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if resp.Accepted != 100 || resp.Overflow != 5 {
		t.Fatalf("expected accepted=100 overflow=5, got %+v", resp)
	}
	if resp.Player.Carried.Used != 10 {
		t.Fatalf("expected 10 occupied slots, got %d", resp.Player.Carried.Used)
	}
	if resp.Player.Version != 2 {
		t.Fatalf("expected version bump to 2, got %d", resp.Player.Version)
	}
}

func TestAdd_RejectsInvalidRequest(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog())

	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "", Item: "potion", Count: 1}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 0}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for zero count, got %v", err)
	}
}

func TestAdd_UnknownPlayer(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog())

	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "ghost", Item: "potion", Count: 1}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove_FailsWithoutMutationWhenShort(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog())
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 5}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	_, err := uc.Remove(context.Background(), RemoveRequest{PlayerID: "p-1", Item: "potion", Count: 9})
	if !errors.Is(err, economy.ErrInsufficientMaterials) {
		t.Fatalf("expected ErrInsufficientMaterials, got %v", err)
	}

	resp, err := uc.Remove(context.Background(), RemoveRequest{PlayerID: "p-1", Item: "potion", Count: 5})
	if err != nil {
		t.Fatalf("remove error: %v", err)
	}
	if resp.Player.Carried.Used != 0 {
		t.Fatalf("expected carried emptied, got %d slots", resp.Player.Carried.Used)
	}
}

func TestMove_StoreAndRetrieve(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog())
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 10}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	resp, err := uc.Move(context.Background(), MoveRequest{PlayerID: "p-1", From: RefCarried, Slot: 0, Amount: 6})
	if err != nil {
		t.Fatalf("store error: %v", err)
	}
	if resp.Player.Stash.Used != 1 || resp.Player.Stash.Slots[0].Count != 6 {
		t.Fatalf("expected 6 in stash, got %+v", resp.Player.Stash)
	}
	if resp.Player.Carried.Slots[0].Count != 4 {
		t.Fatalf("expected 4 left carried, got %+v", resp.Player.Carried)
	}

	resp, err = uc.Move(context.Background(), MoveRequest{PlayerID: "p-1", From: RefStash, Slot: 0, Amount: 6})
	if err != nil {
		t.Fatalf("retrieve error: %v", err)
	}
	if resp.Player.Stash.Used != 0 {
		t.Fatalf("expected stash emptied, got %+v", resp.Player.Stash)
	}
	if resp.Player.Carried.Slots[0].Count != 10 {
		t.Fatalf("expected 10 carried, got %+v", resp.Player.Carried)
	}
}

func TestMove_RefusedWhenDestinationFull(t *testing.T) {
	cat := testCatalog()
	store := memory.NewStore()
	store.SeedPlayer(economy.PlayerState{
		PlayerID: "p-1",
		Carried:  economy.NewContainer(10, cat),
		Stash:    economy.NewContainer(0, cat),
		Purse:    economy.NewLedger(0),
		Version:  1,
	})
	uc := UseCase{
		TxManager: memory.NewTxManager(store),
		StateRepo: memory.NewPlayerStateRepo(store),
		EventRepo: memory.NewEventRepo(store),
		Catalog:   cat,
	}
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 3}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	_, err := uc.Move(context.Background(), MoveRequest{PlayerID: "p-1", From: RefCarried, Slot: 0, Amount: 3})
	if !errors.Is(err, economy.ErrInventoryFull) {
		t.Fatalf("expected ErrInventoryFull, got %v", err)
	}

	// Refused move must not have bumped the version or touched the slots.
	state, err := memory.NewPlayerStateRepo(store).GetByPlayerID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if state.Carried.GetAmount("potion") != 3 {
		t.Fatalf("expected carried unchanged, got %d", state.Carried.GetAmount("potion"))
	}
}

func TestDiscard_AtSlot(t *testing.T) {
	uc, _ := newTestUseCase(t, testCatalog())
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 7}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	resp, err := uc.Discard(context.Background(), DiscardRequest{PlayerID: "p-1", From: RefCarried, Slot: 0, Amount: 7})
	if err != nil {
		t.Fatalf("discard error: %v", err)
	}
	if resp.Player.Carried.Used != 0 {
		t.Fatalf("expected slot cleared, got %+v", resp.Player.Carried)
	}

	if _, err := uc.Discard(context.Background(), DiscardRequest{PlayerID: "p-1", From: "backpack", Slot: 0, Amount: 1}); !errors.Is(err, ErrUnknownContainer) {
		t.Fatalf("expected ErrUnknownContainer, got %v", err)
	}
}

func TestMutations_AppendEventsToFeed(t *testing.T) {
	uc, store := newTestUseCase(t, testCatalog())
	if _, err := uc.Add(context.Background(), AddRequest{PlayerID: "p-1", Item: "potion", Count: 3}); err != nil {
		t.Fatalf("add error: %v", err)
	}

	events, err := memory.NewEventRepo(store).ListByPlayerID(context.Background(), "p-1", 10)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(events) == 0 || events[0].Type != economy.EventInventoryChanged {
		t.Fatalf("expected inventory_changed in feed, got %+v", events)
	}
}
