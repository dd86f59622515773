package profile

import (
	"fmt"
	"testing"

	"github.com/slicehub/deal-hub/internal/coupon"
)

func TestAddFavorite_Idempotent(t *testing.T) {
	c, _ := newTestContainer(t)

	c.AddFavorite(testStore("4332"))
	c.AddFavorite(testStore("4332"))

	if got := len(c.Favorites()); got != 1 {
		t.Errorf("favorites length after duplicate add = %d, want 1", got)
	}
}

func TestAddFavorite_NewestFirstAndCapped(t *testing.T) {
	c, _ := newTestContainer(t)

	for i := 1; i <= 23; i++ {
		c.AddFavorite(testStore(fmt.Sprintf("%d", i)))
	}

	favs := c.Favorites()
	if len(favs) != 20 {
		t.Fatalf("favorites length = %d, want 20", len(favs))
	}
	if favs[0].StoreID != "23" {
		t.Errorf("newest favorite = %q, want \"23\"", favs[0].StoreID)
	}
	if favs[19].StoreID != "4" {
		t.Errorf("oldest surviving favorite = %q, want \"4\"", favs[19].StoreID)
	}
}

func TestAddFavorite_InitialCounters(t *testing.T) {
	c, _ := newTestContainer(t)

	c.AddFavorite(testStore("4332"))

	fav := c.Favorites()[0]
	if fav.DealCount != 0 || fav.AverageSavings != 0 {
		t.Errorf("new favorite counters = (%d, %v), want (0, 0)", fav.DealCount, fav.AverageSavings)
	}
	if fav.AddedAt.IsZero() || fav.LastCheckedAt.IsZero() {
		t.Error("new favorite should carry added/last-checked timestamps")
	}
}

func TestRemoveFavorite(t *testing.T) {
	c, _ := newTestContainer(t)

	c.AddFavorite(testStore("1"))
	c.AddFavorite(testStore("2"))
	c.RemoveFavorite("1")

	favs := c.Favorites()
	if len(favs) != 1 || favs[0].StoreID != "2" {
		t.Errorf("favorites after remove = %v, want just store 2", favs)
	}

	// Removing an unknown id is a no-op.
	c.RemoveFavorite("99")
	if got := len(c.Favorites()); got != 1 {
		t.Errorf("remove of unknown store changed length to %d", got)
	}
}

func TestIsFavorite(t *testing.T) {
	c, _ := newTestContainer(t)

	c.AddFavorite(testStore("4332"))
	if !c.IsFavorite("4332") {
		t.Error("IsFavorite(\"4332\") = false after add")
	}
	if c.IsFavorite("9999") {
		t.Error("IsFavorite(\"9999\") = true for unknown store")
	}
}

func TestMarkFavoriteChecked(t *testing.T) {
	c, _ := newTestContainer(t)

	c.AddFavorite(testStore("4332"))
	before := c.Favorites()[0].LastCheckedAt

	coupons := []coupon.Coupon{
		{Name: "Offer A", Price: "10.00"},
		{Name: "Offer B", Price: "20.00"},
		{Name: "Offer C"}, // no price -> 0 savings
	}
	c.MarkFavoriteChecked("4332", coupons)

	fav := c.Favorites()[0]
	if fav.DealCount != 3 {
		t.Errorf("deal count = %d, want 3", fav.DealCount)
	}
	if !almostEqual(fav.AverageSavings, 10.0) {
		t.Errorf("average savings = %v, want 10.0", fav.AverageSavings)
	}
	if !fav.LastCheckedAt.After(before) {
		t.Error("last-checked time should advance")
	}
}
