package profile

import (
	"sort"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

// SortField selects the sort key for saved-deal queries.
type SortField string

const (
	SortBySavings    SortField = "savings"
	SortByExpiration SortField = "expiration"
	SortByDateAdded  SortField = "date_added"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SavedDealFilter describes a query over the saved-deal collection. All
// filters are optional inclusion filters; zero values mean "no filter".
type SavedDealFilter struct {
	// StoreIDs keeps deals saved from any of these stores.
	StoreIDs []string

	// Categories keeps deals whose classified category is in the set.
	Categories []coupon.Category

	// MinSavings/MaxSavings bound the estimated savings, inclusive.
	MinSavings *float64
	MaxSavings *float64

	// ExpiresWithinDays keeps deals expiring within N days of now. Deals
	// with no expiration always pass.
	ExpiresWithinDays *int

	// SortBy orders the result; empty keeps stable input order.
	SortBy    SortField
	SortOrder SortOrder
}

// FilterSaved applies a filter/sort query to a saved-deal slice at the
// given time. The input slice is not modified.
func FilterSaved(deals []SavedDeal, filter SavedDealFilter, now time.Time) []SavedDeal {
	out := make([]SavedDeal, 0, len(deals))
	for _, d := range deals {
		if matchesFilter(d, filter, now) {
			out = append(out, d)
		}
	}

	sortSaved(out, filter.SortBy, filter.SortOrder)
	return out
}

// FilterSavedDeals queries the container's saved-deal collection with the
// container's clock.
func (c *Container) FilterSavedDeals(filter SavedDealFilter) []SavedDeal {
	return FilterSaved(c.state.SavedDeals, filter, c.now())
}

func matchesFilter(d SavedDeal, filter SavedDealFilter, now time.Time) bool {
	if len(filter.StoreIDs) > 0 && !containsString(filter.StoreIDs, d.Store.StoreID) {
		return false
	}

	if len(filter.Categories) > 0 {
		cat := d.Category()
		found := false
		for _, want := range filter.Categories {
			if cat == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.MinSavings != nil && d.EstimatedSavings < *filter.MinSavings {
		return false
	}
	if filter.MaxSavings != nil && d.EstimatedSavings > *filter.MaxSavings {
		return false
	}

	if filter.ExpiresWithinDays != nil && d.ExpiresAt != nil {
		cutoff := now.Add(time.Duration(*filter.ExpiresWithinDays) * 24 * time.Hour)
		if d.ExpiresAt.After(cutoff) {
			return false
		}
	}

	return true
}

func sortSaved(deals []SavedDeal, field SortField, order SortOrder) {
	if field == "" {
		return
	}

	less := func(a, b SavedDeal) bool { return false }
	switch field {
	case SortBySavings:
		less = func(a, b SavedDeal) bool { return a.EstimatedSavings < b.EstimatedSavings }
	case SortByExpiration:
		// Deals with no expiration sort as if expiring at +infinity.
		less = func(a, b SavedDeal) bool {
			switch {
			case a.ExpiresAt == nil:
				return false
			case b.ExpiresAt == nil:
				return true
			default:
				return a.ExpiresAt.Before(*b.ExpiresAt)
			}
		}
	case SortByDateAdded:
		less = func(a, b SavedDeal) bool { return a.SavedAt.Before(b.SavedAt) }
	default:
		return
	}

	sort.SliceStable(deals, func(i, j int) bool {
		if order == SortDesc {
			return less(deals[j], deals[i])
		}
		return less(deals[i], deals[j])
	})
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
