package profile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/slicehub/deal-hub/internal/coupon"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func savedIDs(deals []SavedDeal) []string {
	ids := make([]string, len(deals))
	for i, d := range deals {
		ids[i] = d.Coupon.ID
	}
	return ids
}

func TestFilterSaved_NoFiltersKeepsInputOrder(t *testing.T) {
	c, _ := newTestContainer(t)

	c.SaveDeal(coupon.Coupon{ID: "A", Name: "Offer A"}, testStore("1"), nil, "")
	c.SaveDeal(coupon.Coupon{ID: "B", Name: "Offer B"}, testStore("1"), nil, "")

	got := savedIDs(c.FilterSavedDeals(SavedDealFilter{}))
	want := []string{"B", "A"} // collection order: newest first
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unfiltered query order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_RemoveThenSortByDateAddedDesc(t *testing.T) {
	c, _ := newTestContainer(t)

	c.SaveDeal(coupon.Coupon{ID: "A", Name: "Offer A"}, testStore("1"), nil, "")
	b := c.SaveDeal(coupon.Coupon{ID: "B", Name: "Offer B"}, testStore("1"), nil, "")
	c.SaveDeal(coupon.Coupon{ID: "C", Name: "Offer C"}, testStore("1"), nil, "")

	c.RemoveSavedDeal(b.ID)

	got := savedIDs(c.FilterSavedDeals(SavedDealFilter{
		SortBy:    SortByDateAdded,
		SortOrder: SortDesc,
	}))
	want := []string{"C", "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("date_added desc after removing B (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_StoreAndCategory(t *testing.T) {
	c, _ := newTestContainer(t)

	c.SaveDeal(coupon.Coupon{ID: "A", Name: "Large Pizza"}, testStore("1"), nil, "")
	c.SaveDeal(coupon.Coupon{ID: "B", Name: "16-Piece Wings"}, testStore("2"), nil, "")
	c.SaveDeal(coupon.Coupon{ID: "C", Name: "Specialty Pizza"}, testStore("2"), nil, "")

	got := savedIDs(c.FilterSavedDeals(SavedDealFilter{StoreIDs: []string{"2"}}))
	if diff := cmp.Diff([]string{"C", "B"}, got); diff != "" {
		t.Errorf("store filter (-want +got):\n%s", diff)
	}

	got = savedIDs(c.FilterSavedDeals(SavedDealFilter{
		StoreIDs:   []string{"2"},
		Categories: []coupon.Category{coupon.CategoryPizza},
	}))
	if diff := cmp.Diff([]string{"C"}, got); diff != "" {
		t.Errorf("store+category filter (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_SavingsBoundsInclusive(t *testing.T) {
	deals := []SavedDeal{
		{Coupon: coupon.Coupon{ID: "A"}, EstimatedSavings: 5},
		{Coupon: coupon.Coupon{ID: "B"}, EstimatedSavings: 10},
		{Coupon: coupon.Coupon{ID: "C"}, EstimatedSavings: 15},
		{Coupon: coupon.Coupon{ID: "D"}, EstimatedSavings: 20},
	}

	got := savedIDs(FilterSaved(deals, SavedDealFilter{
		MinSavings: floatPtr(10),
		MaxSavings: floatPtr(15),
	}, dinnerTime))

	if diff := cmp.Diff([]string{"B", "C"}, got); diff != "" {
		t.Errorf("inclusive savings bounds (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_ExpiresWithinDays(t *testing.T) {
	now := dinnerTime
	in2d := now.Add(2 * 24 * time.Hour)
	in10d := now.Add(10 * 24 * time.Hour)

	deals := []SavedDeal{
		{Coupon: coupon.Coupon{ID: "soon"}, ExpiresAt: &in2d},
		{Coupon: coupon.Coupon{ID: "later"}, ExpiresAt: &in10d},
		{Coupon: coupon.Coupon{ID: "never"}}, // no expiration always passes
	}

	got := savedIDs(FilterSaved(deals, SavedDealFilter{ExpiresWithinDays: intPtr(3)}, now))
	if diff := cmp.Diff([]string{"soon", "never"}, got); diff != "" {
		t.Errorf("expires-within filter (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_SortBySavings(t *testing.T) {
	deals := []SavedDeal{
		{Coupon: coupon.Coupon{ID: "mid"}, EstimatedSavings: 10},
		{Coupon: coupon.Coupon{ID: "low"}, EstimatedSavings: 5},
		{Coupon: coupon.Coupon{ID: "high"}, EstimatedSavings: 20},
	}

	got := savedIDs(FilterSaved(deals, SavedDealFilter{SortBy: SortBySavings, SortOrder: SortAsc}, dinnerTime))
	if diff := cmp.Diff([]string{"low", "mid", "high"}, got); diff != "" {
		t.Errorf("savings asc (-want +got):\n%s", diff)
	}

	got = savedIDs(FilterSaved(deals, SavedDealFilter{SortBy: SortBySavings, SortOrder: SortDesc}, dinnerTime))
	if diff := cmp.Diff([]string{"high", "mid", "low"}, got); diff != "" {
		t.Errorf("savings desc (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_SortByExpirationNilSortsLast(t *testing.T) {
	now := dinnerTime
	in1d := now.Add(24 * time.Hour)
	in5d := now.Add(5 * 24 * time.Hour)

	deals := []SavedDeal{
		{Coupon: coupon.Coupon{ID: "never"}},
		{Coupon: coupon.Coupon{ID: "later"}, ExpiresAt: &in5d},
		{Coupon: coupon.Coupon{ID: "soon"}, ExpiresAt: &in1d},
	}

	// Ascending: no expiration behaves like +infinity.
	got := savedIDs(FilterSaved(deals, SavedDealFilter{SortBy: SortByExpiration, SortOrder: SortAsc}, now))
	if diff := cmp.Diff([]string{"soon", "later", "never"}, got); diff != "" {
		t.Errorf("expiration asc (-want +got):\n%s", diff)
	}

	got = savedIDs(FilterSaved(deals, SavedDealFilter{SortBy: SortByExpiration, SortOrder: SortDesc}, now))
	if diff := cmp.Diff([]string{"never", "later", "soon"}, got); diff != "" {
		t.Errorf("expiration desc (-want +got):\n%s", diff)
	}
}

func TestFilterSaved_DoesNotMutateInput(t *testing.T) {
	deals := []SavedDeal{
		{Coupon: coupon.Coupon{ID: "B"}, EstimatedSavings: 10},
		{Coupon: coupon.Coupon{ID: "A"}, EstimatedSavings: 5},
	}

	FilterSaved(deals, SavedDealFilter{SortBy: SortBySavings, SortOrder: SortAsc}, dinnerTime)

	if deals[0].Coupon.ID != "B" {
		t.Error("FilterSaved reordered the input slice")
	}
}
