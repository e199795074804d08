package gormrepo

import (
	"context"
	"errors"

	"gravehold/internal/adapter/repo/gorm/model"
	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) VendorRepo {
	return VendorRepo{db: db}
}

func (r VendorRepo) GetOffer(ctx context.Context, vendorID string, item economy.ItemID) (economy.Offer, error) {
	var m model.VendorOffer
	err := getDBFromCtx(ctx, r.db).
		Where("vendor_id = ? AND item = ?", vendorID, string(item)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return economy.Offer{}, ports.ErrNotFound
		}
		return economy.Offer{}, err
	}
	return offerFromModel(m), nil
}

func (r VendorRepo) SaveOffer(ctx context.Context, vendorID string, offer economy.Offer) error {
	m := model.VendorOffer{
		VendorID:      vendorID,
		Item:          string(offer.Item),
		Price:         int64(offer.Price),
		Stock:         int64(offer.Stock),
		InfiniteStock: offer.InfiniteStock,
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}, {Name: "item"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "stock", "infinite_stock"}),
		}).
		Create(&m).Error
}

func (r VendorRepo) ListByVendorID(ctx context.Context, vendorID string) ([]economy.Offer, error) {
	rows := []model.VendorOffer{}
	err := getDBFromCtx(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "item"}}},
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]economy.Offer, 0, len(rows))
	for _, row := range rows {
		out = append(out, offerFromModel(row))
	}
	return out, nil
}

func offerFromModel(m model.VendorOffer) economy.Offer {
	return economy.Offer{
		Item:          economy.ItemID(m.Item),
		Price:         int(m.Price),
		Stock:         int(m.Stock),
		InfiniteStock: m.InfiniteStock,
	}
}
