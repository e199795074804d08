package memory

import (
	"context"
	"sort"

	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"
)

type VendorRepo struct {
	store *Store
}

func NewVendorRepo(store *Store) VendorRepo {
	return VendorRepo{store: store}
}

func (r VendorRepo) GetOffer(ctx context.Context, vendorID string, item economy.ItemID) (economy.Offer, error) {
	var out economy.Offer
	var err error
	r.store.read(ctx, func() {
		offer, ok := r.store.offers[vendorID][item]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		out = offer
	})
	return out, err
}

func (r VendorRepo) SaveOffer(ctx context.Context, vendorID string, offer economy.Offer) error {
	r.store.write(ctx, func() {
		if r.store.offers[vendorID] == nil {
			r.store.offers[vendorID] = make(map[economy.ItemID]economy.Offer)
		}
		r.store.offers[vendorID][offer.Item] = offer
	})
	return nil
}

func (r VendorRepo) ListByVendorID(ctx context.Context, vendorID string) ([]economy.Offer, error) {
	var out []economy.Offer
	var err error
	r.store.read(ctx, func() {
		byItem, ok := r.store.offers[vendorID]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		out = make([]economy.Offer, 0, len(byItem))
		for _, offer := range byItem {
			out = append(out, offer)
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })
	return out, nil
}
