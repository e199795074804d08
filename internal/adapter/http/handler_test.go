package httpadapter

import (
	"encoding/json"
	"errors"
	"testing"

	"gravehold/internal/app/ports"
	"gravehold/internal/app/trade"
	"gravehold/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestRequirePlayer_FromHeader(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(playerIDHeader, "  player-1  ")

	playerID, err := requirePlayer(ctx)
	if err != nil {
		t.Fatalf("requirePlayer error: %v", err)
	}
	if playerID != "player-1" {
		t.Fatalf("unexpected player id: %q", playerID)
	}
}

func TestRequirePlayer_MissingHeader(t *testing.T) {
	ctx := &app.RequestContext{}

	_, err := requirePlayer(ctx)
	if !errors.Is(err, ErrMissingPlayerIDHeader) {
		t.Fatalf("expected ErrMissingPlayerIDHeader, got %v", err)
	}
}

func TestWriteError_MapsDomainFailures(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"insufficient materials", economy.ErrInsufficientMaterials, consts.StatusConflict, "INSUFFICIENT_MATERIALS"},
		{"insufficient funds", economy.ErrInsufficientFunds, consts.StatusConflict, "INSUFFICIENT_FUNDS"},
		{"insufficient stock", economy.ErrInsufficientStock, consts.StatusConflict, "INSUFFICIENT_STOCK"},
		{"inventory full", economy.ErrInventoryFull, consts.StatusConflict, "INVENTORY_FULL"},
		{"recipe locked", economy.ErrRecipeLocked, consts.StatusConflict, "RECIPE_LOCKED"},
		{"invalid slot", economy.ErrInvalidSlot, consts.StatusBadRequest, "invalid_slot"},
		{"unknown item", economy.ErrUnknownItem, consts.StatusBadRequest, "unknown_item"},
		{"invalid trade request", trade.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{"not found", ports.ErrNotFound, consts.StatusNotFound, "not_found"},
		{"version conflict", ports.ErrConflict, consts.StatusConflict, "conflict"},
		{"unexpected", errors.New("boom"), consts.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &app.RequestContext{}
			writeError(ctx, tc.err)

			if got := ctx.Response.StatusCode(); got != tc.wantStatus {
				t.Fatalf("status mismatch: got=%d want=%d", got, tc.wantStatus)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Error.Code != tc.wantCode {
				t.Fatalf("code mismatch: got=%q want=%q", body.Error.Code, tc.wantCode)
			}
		})
	}
}
