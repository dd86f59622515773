package profile

import "github.com/slicehub/deal-hub/internal/coupon"

// AddFavorite pins a store to the favorites collection and persists.
// Adding a store that is already a favorite is a no-op, so the collection
// never holds two entries for the same store id.
func (c *Container) AddFavorite(store coupon.StoreInfo) {
	for _, fav := range c.state.FavoriteStores {
		if fav.StoreID == store.StoreID {
			return
		}
	}

	now := c.now()
	fav := FavoriteStore{
		StoreID:       store.StoreID,
		Store:         store,
		AddedAt:       now,
		LastCheckedAt: now,
	}

	next := make([]FavoriteStore, 0, len(c.state.FavoriteStores)+1)
	next = append(next, fav)
	next = append(next, c.state.FavoriteStores...)
	if len(next) > maxFavoriteStores {
		next = next[:maxFavoriteStores]
	}

	c.state.FavoriteStores = next
	c.mutated()
	c.persist()
}

// RemoveFavorite unpins the store with the given id and persists.
// Removing an unknown id is a no-op.
func (c *Container) RemoveFavorite(storeID string) {
	next := make([]FavoriteStore, 0, len(c.state.FavoriteStores))
	for _, fav := range c.state.FavoriteStores {
		if fav.StoreID != storeID {
			next = append(next, fav)
		}
	}

	c.state.FavoriteStores = next
	c.mutated()
	c.persist()
}

// Favorites returns the favorite-store collection, newest first.
func (c *Container) Favorites() []FavoriteStore {
	favs := make([]FavoriteStore, len(c.state.FavoriteStores))
	copy(favs, c.state.FavoriteStores)
	return favs
}

// IsFavorite reports whether the store id is in the favorites collection.
func (c *Container) IsFavorite(storeID string) bool {
	for _, fav := range c.state.FavoriteStores {
		if fav.StoreID == storeID {
			return true
		}
	}
	return false
}

// MarkFavoriteChecked records that the store's deals were just fetched,
// updating the last-checked time, the deal count and the average savings
// of the coupons seen. Unknown store ids are ignored.
func (c *Container) MarkFavoriteChecked(storeID string, coupons []coupon.Coupon) {
	for i, fav := range c.state.FavoriteStores {
		if fav.StoreID != storeID {
			continue
		}

		total := 0.0
		for _, cp := range coupons {
			total += cp.EstimatedSavings()
		}

		fav.LastCheckedAt = c.now()
		fav.DealCount = len(coupons)
		if len(coupons) > 0 {
			fav.AverageSavings = total / float64(len(coupons))
		} else {
			fav.AverageSavings = 0
		}

		c.state.FavoriteStores[i] = fav
		c.mutated()
		c.persist()
		return
	}
}
