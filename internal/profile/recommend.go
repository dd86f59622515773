package profile

import (
	"fmt"
	"sort"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

const (
	// minRecommendationScore is the strict lower bound for surfacing a
	// recommendation: a deal scoring exactly this is excluded.
	minRecommendationScore = 0.3

	// maxRecommendations caps the ranked list.
	maxRecommendations = 10

	// expiringSoonWindow is how far ahead an expiration still counts as
	// "expiring soon": strictly after now, at most this far away.
	expiringSoonWindow = 24 * time.Hour
)

// Reason weights, fixed per reason code.
const (
	favoriteStoreWeight     = 0.3
	preferredCategoryWeight = 0.25
	withinBudgetWeight      = 0.2
	mealTimeWeight          = 0.15
	expiringSoonWeight      = 0.1
)

// Recommend ranks candidate coupons for a store against the user's
// preferences and favorites.
//
// Each candidate gets a DealScore plus an independent reason list: the
// conditions are tested separately, so a recommendation may carry any
// subset of reasons, including none. Candidates scoring 0.3 or below are
// dropped, the rest are sorted by overall score descending and truncated
// to the top 10.
func Recommend(candidates []coupon.Coupon, store coupon.StoreInfo, prefs UserPreferences, favorites []FavoriteStore, now time.Time) []DealRecommendation {
	recs := make([]DealRecommendation, 0, len(candidates))

	for _, c := range candidates {
		score := Score(c, prefs, now)
		if score.Overall <= minRecommendationScore {
			continue
		}

		recs = append(recs, DealRecommendation{
			Coupon:           c,
			Store:            store,
			Score:            score,
			Reasons:          reasonsFor(c, store, prefs, favorites, now),
			Category:         coupon.Categorize(c),
			EstimatedSavings: c.EstimatedSavings(),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score.Overall > recs[j].Score.Overall
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return recs
}

// reasonsFor tests each recommendation condition independently and
// collects a reason per match.
func reasonsFor(c coupon.Coupon, store coupon.StoreInfo, prefs UserPreferences, favorites []FavoriteStore, now time.Time) []Reason {
	reasons := []Reason{}

	for _, fav := range favorites {
		if fav.StoreID == store.StoreID {
			reasons = append(reasons, Reason{
				Code:        "favorite_store",
				Weight:      favoriteStoreWeight,
				Description: "From one of your favorite stores",
			})
			break
		}
	}

	if cat := coupon.Categorize(c); prefs.PrefersCategory(cat) {
		reasons = append(reasons, Reason{
			Code:        "preferred_category",
			Weight:      preferredCategoryWeight,
			Description: fmt.Sprintf("Matches your taste for %s deals", cat),
		})
	}

	if savings := c.EstimatedSavings(); savings >= prefs.BudgetRange.Min && savings <= prefs.BudgetRange.Max {
		reasons = append(reasons, Reason{
			Code:        "within_budget",
			Weight:      withinBudgetWeight,
			Description: "Fits your budget range",
		})
	}

	if isMealTime(now) {
		reasons = append(reasons, Reason{
			Code:        "meal_time",
			Weight:      mealTimeWeight,
			Description: "Great timing for your next meal",
		})
	}

	if exp, ok := c.Expiration(); ok {
		if remaining := exp.Sub(now); remaining > 0 && remaining <= expiringSoonWindow {
			reasons = append(reasons, Reason{
				Code:        "expiring_soon",
				Weight:      expiringSoonWeight,
				Description: "Expires within 24 hours",
			})
		}
	}

	return reasons
}

// Recommendations ranks candidates for a store using the container's
// current preferences, favorites and clock.
func (c *Container) Recommendations(candidates []coupon.Coupon, store coupon.StoreInfo) []DealRecommendation {
	return Recommend(candidates, store, c.state.UserPreferences, c.state.FavoriteStores, c.now())
}
