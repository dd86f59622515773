package profile

import "github.com/slicehub/deal-hub/internal/coupon"

// TrackView appends a view event for a coupon to the capped history log
// and persists. The entry snapshots the estimated savings, the inferred
// category and the overall score under the current preferences at view
// time; later preference changes do not rewrite history.
func (c *Container) TrackView(cp coupon.Coupon, store coupon.StoreInfo) {
	now := c.now()

	entry := HistoryEntry{
		CouponID:         cp.Key(),
		StoreID:          store.StoreID,
		ViewedAt:         now,
		EstimatedSavings: cp.EstimatedSavings(),
		Category:         coupon.Categorize(cp),
		Score:            Score(cp, c.state.UserPreferences, now).Overall,
	}

	next := make([]HistoryEntry, 0, len(c.state.DealHistory)+1)
	next = append(next, entry)
	next = append(next, c.state.DealHistory...)
	if len(next) > maxHistoryEntries {
		next = next[:maxHistoryEntries]
	}

	c.state.DealHistory = next
	c.mutated()
	c.persist()
}

// TrackEmailed records that n deals were emailed. The count feeds
// PersonalStats for the session; the envelope has no field for it, so it
// is not persisted across sessions.
func (c *Container) TrackEmailed(n int) {
	if n <= 0 {
		return
	}
	c.emailedTotal += n
	c.mutated()
}

// History returns up to limit most recent view entries, newest first.
// A non-positive limit returns the whole log.
func (c *Container) History(limit int) []HistoryEntry {
	entries := c.state.DealHistory
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

// Stats returns the derived aggregate view of the user's activity. The
// result is cached until the next mutation.
func (c *Container) Stats() PersonalStats {
	if c.statsCache != nil {
		return *c.statsCache
	}

	stats := computeStats(c.state, c.emailedTotal)
	c.statsCache = &stats
	return stats
}

// computeStats derives PersonalStats from the envelope. Divisions use a
// max(viewed, 1) floor so an empty history yields zeroes, not an error.
func computeStats(state State, emailedTotal int) PersonalStats {
	stats := PersonalStats{
		TotalViewed:      len(state.DealHistory),
		TotalSaved:       len(state.SavedDeals),
		TotalEmailed:     emailedTotal,
		FavoriteCategory: coupon.CategoryDefault,
	}

	for _, entry := range state.DealHistory {
		stats.TotalSavings += entry.EstimatedSavings
	}

	if cat, ok := modalCategory(state.DealHistory); ok {
		stats.FavoriteCategory = cat
	}
	stats.MostVisitedStore, _ = modalStore(state.DealHistory)

	viewedFloor := float64(max(stats.TotalViewed, 1))
	stats.AverageOrderValue = stats.TotalSavings / viewedFloor
	stats.EngagementRate = float64(stats.TotalSaved) / viewedFloor

	return stats
}

// modalCategory returns the most-viewed category. Ties go to the category
// encountered first in the log after sorting by count descending, i.e.
// the first-seen of the tied categories.
func modalCategory(history []HistoryEntry) (coupon.Category, bool) {
	counts := make(map[coupon.Category]int)
	firstSeen := make(map[coupon.Category]int)

	for i, entry := range history {
		if _, ok := counts[entry.Category]; !ok {
			firstSeen[entry.Category] = i
		}
		counts[entry.Category]++
	}

	var best coupon.Category
	found := false
	for cat, n := range counts {
		if !found ||
			n > counts[best] ||
			(n == counts[best] && firstSeen[cat] < firstSeen[best]) {
			best = cat
			found = true
		}
	}

	return best, found
}

// modalStore returns the most-visited store id, with the same
// first-encountered tie break as modalCategory.
func modalStore(history []HistoryEntry) (string, bool) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, entry := range history {
		if _, ok := counts[entry.StoreID]; !ok {
			firstSeen[entry.StoreID] = i
		}
		counts[entry.StoreID]++
	}

	var best string
	found := false
	for id, n := range counts {
		if !found ||
			n > counts[best] ||
			(n == counts[best] && firstSeen[id] < firstSeen[best]) {
			best = id
			found = true
		}
	}

	return best, found
}
