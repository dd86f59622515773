package profile

import (
	"fmt"

	"github.com/slicehub/deal-hub/internal/coupon"
)

// SaveDeal snapshots a coupon and its store into the saved-deal
// collection and persists. The deal is prepended (newest first); when the
// collection exceeds its cap the oldest entries are evicted.
//
// The generated id combines the coupon key, the store id and the save
// timestamp, so saving the same coupon twice yields distinct entries.
func (c *Container) SaveDeal(cp coupon.Coupon, store coupon.StoreInfo, tags []string, note string) SavedDeal {
	now := c.now()

	deal := SavedDeal{
		ID:               fmt.Sprintf("%s-%s-%d", cp.Key(), store.StoreID, now.UnixMilli()),
		Coupon:           cp,
		Store:            store,
		SavedAt:          now,
		Tags:             tags,
		Note:             note,
		EstimatedSavings: cp.EstimatedSavings(),
	}

	if exp, ok := cp.Expiration(); ok {
		deal.ExpiresAt = &exp
	}

	next := make([]SavedDeal, 0, len(c.state.SavedDeals)+1)
	next = append(next, deal)
	next = append(next, c.state.SavedDeals...)
	if len(next) > maxSavedDeals {
		next = next[:maxSavedDeals]
	}

	c.state.SavedDeals = next
	c.mutated()
	c.persist()

	return deal
}

// RemoveSavedDeal removes the saved deal with the given id and persists.
// Removing an unknown id is a no-op.
func (c *Container) RemoveSavedDeal(id string) {
	next := make([]SavedDeal, 0, len(c.state.SavedDeals))
	for _, d := range c.state.SavedDeals {
		if d.ID != id {
			next = append(next, d)
		}
	}

	c.state.SavedDeals = next
	c.mutated()
	c.persist()
}

// SavedDeals returns the saved-deal collection, newest first.
func (c *Container) SavedDeals() []SavedDeal {
	deals := make([]SavedDeal, len(c.state.SavedDeals))
	copy(deals, c.state.SavedDeals)
	return deals
}

// SavedDeal returns the saved deal with the given id.
func (c *Container) SavedDeal(id string) (SavedDeal, bool) {
	for _, d := range c.state.SavedDeals {
		if d.ID == id {
			return d, true
		}
	}
	return SavedDeal{}, false
}
