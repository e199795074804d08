package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gravehold/internal/adapter/repo/gorm/model"
	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"

	"gorm.io/gorm"
)

type PlayerStateRepo struct {
	db      *gorm.DB
	catalog economy.Catalog
}

func NewPlayerStateRepo(db *gorm.DB, catalog economy.Catalog) PlayerStateRepo {
	return PlayerStateRepo{db: db, catalog: catalog}
}

func (r PlayerStateRepo) GetByPlayerID(ctx context.Context, playerID string) (economy.PlayerState, error) {
	var m model.PlayerState
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.PlayerState{}, ports.ErrNotFound
		}
		return economy.PlayerState{}, err
	}

	carried, err := r.restoreContainer(int(m.CarriedCap), m.CarriedSlots)
	if err != nil {
		return economy.PlayerState{}, fmt.Errorf("restore carried for %s: %w", playerID, err)
	}
	stash, err := r.restoreContainer(int(m.StashCap), m.StashSlots)
	if err != nil {
		return economy.PlayerState{}, fmt.Errorf("restore stash for %s: %w", playerID, err)
	}

	return economy.PlayerState{
		PlayerID:  m.PlayerID,
		Carried:   carried,
		Stash:     stash,
		Purse:     economy.NewLedger(int(m.Currency)),
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r PlayerStateRepo) SaveWithVersion(ctx context.Context, state economy.PlayerState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)

	carriedJSON, err := json.Marshal(state.Carried.Records())
	if err != nil {
		return err
	}
	stashJSON, err := json.Marshal(state.Stash.Records())
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		m := model.PlayerState{
			PlayerID:     state.PlayerID,
			Currency:     int64(state.Purse.Amount()),
			CarriedCap:   int32(state.Carried.Capacity()),
			StashCap:     int32(state.Stash.Capacity()),
			CarriedSlots: carriedJSON,
			StashSlots:   stashJSON,
			Version:      state.Version,
			UpdatedAt:    state.UpdatedAt,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	updates := map[string]any{
		"currency":      int64(state.Purse.Amount()),
		"carried_slots": carriedJSON,
		"stash_slots":   stashJSON,
		"version":       state.Version,
		"updated_at":    state.UpdatedAt,
	}

	res := db.Model(&model.PlayerState{}).
		Where("player_id = ? AND version = ?", state.PlayerID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r PlayerStateRepo) restoreContainer(capacity int, raw []byte) (*economy.Container, error) {
	var records []economy.SlotRecord
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
	}
	return economy.RestoreContainer(capacity, r.catalog, records)
}
