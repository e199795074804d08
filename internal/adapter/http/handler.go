package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gravehold/internal/app/crafting"
	"gravehold/internal/app/inventory"
	"gravehold/internal/app/observe"
	"gravehold/internal/app/ports"
	"gravehold/internal/app/replay"
	"gravehold/internal/app/trade"
	"gravehold/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	ObserveUC   observe.UseCase
	InventoryUC inventory.UseCase
	CraftUC     crafting.UseCase
	TradeUC     trade.UseCase
	ReplayUC    replay.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	player := s.Group("/api/player")
	player.POST("/observe", h.observe)
	player.GET("/events", h.events)

	inv := player.Group("/inventory")
	inv.POST("/add", h.inventoryAdd)
	inv.POST("/remove", h.inventoryRemove)
	inv.POST("/discard", h.inventoryDiscard)
	inv.POST("/move", h.inventoryMove)

	player.POST("/craft", h.craft)
	player.POST("/craft/preview", h.craftPreview)

	vendor := player.Group("/vendor")
	vendor.POST("/buy", h.vendorBuy)
	vendor.POST("/sell", h.vendorSell)

	s.GET("/api/vendor/offers", h.vendorOffers)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type addBody struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

func (h Handler) inventoryAdd(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body addBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Add(c, inventory.AddRequest{
		PlayerID: playerID,
		Item:     economy.ItemID(body.Item),
		Count:    body.Count,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryRemove(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body addBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Remove(c, inventory.RemoveRequest{
		PlayerID: playerID,
		Item:     economy.ItemID(body.Item),
		Count:    body.Count,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type slotBody struct {
	From   string `json:"from"`
	Slot   int    `json:"slot"`
	Amount int    `json:"amount"`
}

func (h Handler) inventoryDiscard(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body slotBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Discard(c, inventory.DiscardRequest{
		PlayerID: playerID,
		From:     inventory.ContainerRef(body.From),
		Slot:     body.Slot,
		Amount:   body.Amount,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryMove(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body slotBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Move(c, inventory.MoveRequest{
		PlayerID: playerID,
		From:     inventory.ContainerRef(body.From),
		Slot:     body.Slot,
		Amount:   body.Amount,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type craftBody struct {
	Output         string `json:"output"`
	Quantity       int    `json:"quantity"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h Handler) craft(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body craftBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CraftUC.Execute(c, crafting.Request{
		PlayerID:       playerID,
		Output:         economy.ItemID(body.Output),
		Quantity:       body.Quantity,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) craftPreview(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body craftBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CraftUC.Preview(c, crafting.PreviewRequest{
		PlayerID: playerID,
		Output:   economy.ItemID(body.Output),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type buyBody struct {
	VendorID       string `json:"vendor_id"`
	Item           string `json:"item"`
	Quantity       int    `json:"quantity"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h Handler) vendorBuy(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body buyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TradeUC.Buy(c, trade.BuyRequest{
		PlayerID:       playerID,
		VendorID:       body.VendorID,
		Item:           economy.ItemID(body.Item),
		Quantity:       body.Quantity,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) vendorSell(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body buyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TradeUC.Sell(c, trade.SellRequest{
		PlayerID:       playerID,
		Item:           economy.ItemID(body.Item),
		Quantity:       body.Quantity,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) vendorOffers(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TradeUC.Offers(c, trade.OffersRequest{
		PlayerID: playerID,
		VendorID: string(ctx.Query("vendor_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayer(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{PlayerID: playerID, Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")

func requirePlayer(ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	return playerID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error())
	case errors.Is(err, economy.ErrInsufficientMaterials):
		writeErrorBody(ctx, consts.StatusConflict, "INSUFFICIENT_MATERIALS", err.Error())
	case errors.Is(err, economy.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "INSUFFICIENT_FUNDS", err.Error())
	case errors.Is(err, economy.ErrInsufficientStock):
		writeErrorBody(ctx, consts.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, economy.ErrInventoryFull):
		writeErrorBody(ctx, consts.StatusConflict, "INVENTORY_FULL", err.Error())
	case errors.Is(err, economy.ErrRecipeLocked):
		writeErrorBody(ctx, consts.StatusConflict, "RECIPE_LOCKED", err.Error())
	case errors.Is(err, economy.ErrInvalidSlot):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_slot", err.Error())
	case errors.Is(err, economy.ErrInvalidAmount):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, economy.ErrUnknownItem):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_item", err.Error())
	case errors.Is(err, crafting.ErrNoRecipe):
		writeErrorBody(ctx, consts.StatusBadRequest, "no_recipe", err.Error())
	case errors.Is(err, inventory.ErrUnknownContainer):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_container", err.Error())
	case errors.Is(err, inventory.ErrInvalidRequest),
		errors.Is(err, crafting.ErrInvalidRequest),
		errors.Is(err, trade.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
