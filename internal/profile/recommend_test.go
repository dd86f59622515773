package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

func reasonCodes(r DealRecommendation) []string {
	codes := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		codes[i] = reason.Code
	}
	return codes
}

func hasReason(r DealRecommendation, code string) bool {
	for _, reason := range r.Reasons {
		if reason.Code == code {
			return true
		}
	}
	return false
}

func TestRecommend_ScoreCutoffIsStrict(t *testing.T) {
	prefs := DefaultState().UserPreferences

	// Off-peak, default category, no price:
	// overall = 0.4*0 + 0.3*0.5 + 0.3*0.5 = 0.3 exactly -> excluded.
	atCutoff := coupon.Coupon{Name: "Mystery Offer"}

	// Adding $0.50 of savings lifts overall to 0.31 -> included.
	aboveCutoff := coupon.Coupon{Name: "Mystery Offer Plus", Price: "0.50"}

	recs := Recommend([]coupon.Coupon{atCutoff, aboveCutoff}, testStore("1"), prefs, nil, offPeakTime)

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1 (0.3 exactly is excluded)", len(recs))
	}
	if recs[0].Coupon.Name != "Mystery Offer Plus" {
		t.Errorf("kept %q, want the 0.31 deal", recs[0].Coupon.Name)
	}
	if !almostEqual(recs[0].Score.Overall, 0.31) {
		t.Errorf("Overall = %v, want 0.31", recs[0].Score.Overall)
	}
}

func TestRecommend_SortedDescendingAndCapped(t *testing.T) {
	prefs := DefaultState().UserPreferences
	prefs.BudgetRange = BudgetRange{Min: 0, Max: 100}

	var candidates []coupon.Coupon
	for i := 1; i <= 15; i++ {
		candidates = append(candidates, coupon.Coupon{
			ID:    fmt.Sprintf("%d", i),
			Name:  fmt.Sprintf("Offer %d", i),
			Price: fmt.Sprintf("%d.00", i),
		})
	}

	recs := Recommend(candidates, testStore("1"), prefs, nil, dinnerTime)

	if len(recs) != 10 {
		t.Fatalf("got %d recommendations, want the top 10", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score.Overall > recs[i-1].Score.Overall {
			t.Errorf("recommendations not sorted descending at %d: %v > %v",
				i, recs[i].Score.Overall, recs[i-1].Score.Overall)
		}
	}
	// The $15 deal has the highest value score and must rank first.
	if recs[0].Coupon.ID != "15" {
		t.Errorf("top recommendation = %q, want the $15 deal", recs[0].Coupon.ID)
	}
}

func TestRecommend_FavoriteStoreReason(t *testing.T) {
	prefs := DefaultState().UserPreferences
	store := testStore("4332")
	favorites := []FavoriteStore{{StoreID: "4332", Store: store}}

	recs := Recommend([]coupon.Coupon{{Name: "Large Pizza", Price: "12.99"}}, store, prefs, favorites, dinnerTime)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if !hasReason(recs[0], "favorite_store") {
		t.Errorf("missing favorite_store reason, got %v", reasonCodes(recs[0]))
	}

	// Same deal at a non-favorite store carries no favorite_store reason.
	recs = Recommend([]coupon.Coupon{{Name: "Large Pizza", Price: "12.99"}}, testStore("9999"), prefs, favorites, dinnerTime)
	if hasReason(recs[0], "favorite_store") {
		t.Error("unexpected favorite_store reason for non-favorite store")
	}
}

func TestRecommend_ExpiringSoonWindow(t *testing.T) {
	now := dinnerTime
	prefs := DefaultState().UserPreferences

	threeHours := coupon.Coupon{
		Name:           "Large Pizza Tonight",
		Price:          "9.99",
		ExpirationDate: now.Add(3 * time.Hour).Format("2006-01-02 15:04:05"),
	}
	twoDays := coupon.Coupon{
		Name:           "Large Pizza Later",
		Price:          "9.99",
		ExpirationDate: now.Add(48 * time.Hour).Format("2006-01-02 15:04:05"),
	}
	expired := coupon.Coupon{
		Name:           "Large Pizza Yesterday",
		Price:          "9.99",
		ExpirationDate: now.Add(-1 * time.Hour).Format("2006-01-02 15:04:05"),
	}

	recs := Recommend([]coupon.Coupon{threeHours, twoDays, expired}, testStore("1"), prefs, nil, now)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	byName := map[string]DealRecommendation{}
	for _, r := range recs {
		byName[r.Coupon.Name] = r
	}

	if !hasReason(byName["Large Pizza Tonight"], "expiring_soon") {
		t.Error("deal expiring in 3h should carry expiring_soon")
	}
	if hasReason(byName["Large Pizza Later"], "expiring_soon") {
		t.Error("deal expiring in 48h should not carry expiring_soon")
	}
	if hasReason(byName["Large Pizza Yesterday"], "expiring_soon") {
		t.Error("already-expired deal should not carry expiring_soon")
	}
}

func TestRecommend_ReasonsAreIndependent(t *testing.T) {
	prefs := DefaultState().UserPreferences
	prefs.PreferredCategories = []coupon.Category{coupon.CategoryPizza}
	prefs.BudgetRange = BudgetRange{Min: 5, Max: 15}

	store := testStore("4332")
	favorites := []FavoriteStore{{StoreID: "4332", Store: store}}

	c := coupon.Coupon{
		Name:           "Large 2-Topping Pizza",
		Price:          "10.99",
		ExpirationDate: dinnerTime.Add(2 * time.Hour).Format("2006-01-02 15:04:05"),
	}

	recs := Recommend([]coupon.Coupon{c}, store, prefs, favorites, dinnerTime)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}

	want := []string{"favorite_store", "preferred_category", "within_budget", "meal_time", "expiring_soon"}
	got := reasonCodes(recs[0])
	if len(got) != len(want) {
		t.Fatalf("reason codes = %v, want all of %v", got, want)
	}
	for i, code := range want {
		if got[i] != code {
			t.Errorf("reason[%d] = %q, want %q", i, got[i], code)
		}
	}
}

func TestRecommend_BudgetBoundsInclusive(t *testing.T) {
	prefs := DefaultState().UserPreferences
	prefs.BudgetRange = BudgetRange{Min: 10, Max: 15}

	atMin := coupon.Coupon{Name: "Min Offer", Price: "10.00"}
	atMax := coupon.Coupon{Name: "Max Offer", Price: "15.00"}
	below := coupon.Coupon{Name: "Below Offer", Price: "9.99"}

	recs := Recommend([]coupon.Coupon{atMin, atMax, below}, testStore("1"), prefs, nil, dinnerTime)

	byName := map[string]DealRecommendation{}
	for _, r := range recs {
		byName[r.Coupon.Name] = r
	}

	if !hasReason(byName["Min Offer"], "within_budget") {
		t.Error("savings equal to budget min should be within budget")
	}
	if !hasReason(byName["Max Offer"], "within_budget") {
		t.Error("savings equal to budget max should be within budget")
	}
	if hasReason(byName["Below Offer"], "within_budget") {
		t.Error("savings below budget min should not be within budget")
	}
}

func TestRecommend_NoReasonsIsValid(t *testing.T) {
	prefs := DefaultState().UserPreferences
	prefs.BudgetRange = BudgetRange{Min: 30, Max: 50}

	// Off-peak, non-favorite store, outside budget, no expiration: a deal
	// can rank on score alone with an empty reason list.
	c := coupon.Coupon{Name: "Big Mystery Offer", Price: "19.99"}

	recs := Recommend([]coupon.Coupon{c}, testStore("1"), prefs, nil, offPeakTime)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if len(recs[0].Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", reasonCodes(recs[0]))
	}
}
