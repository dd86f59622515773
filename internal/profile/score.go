package profile

import (
	"math"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

const (
	// valueWeight is the weight for the deal's dollar value (0.4 = 40%).
	valueWeight = 0.4

	// personalWeight is the weight for category preference match (0.3 = 30%).
	personalWeight = 0.3

	// timeWeight is the weight for time-of-day relevance (0.3 = 30%).
	timeWeight = 0.3

	// savingsCeiling is the savings amount that maps to a full value
	// score. A $20 deal (or better) scores 1.0 on value.
	savingsCeiling = 20.0

	// preferredCategoryRelevance applies when the coupon's category is in
	// the user's preferred set; baseRelevance applies otherwise.
	preferredCategoryRelevance = 0.8
	baseRelevance              = 0.5

	// dinnerRelevance applies during dinner hours (17:00-21:59),
	// lunchRelevance during lunch hours (11:00-14:59), offPeakRelevance
	// the rest of the day.
	dinnerRelevance  = 0.9
	lunchRelevance   = 0.8
	offPeakRelevance = 0.5

	// placeholderPopularity stands in until real usage data feeds the
	// popularity component.
	placeholderPopularity = 0.5
)

// Score computes the relevance of a coupon for the given preferences at
// the given local time. The formula is the fixed, hand-tuned heuristic
//
//	overall = 0.4*value + 0.3*personalRelevance + 0.3*timeRelevance
//
// with value = min(savings/20, 1). All components and the overall score
// are in [0,1].
func Score(c coupon.Coupon, prefs UserPreferences, now time.Time) DealScore {
	value := math.Min(c.EstimatedSavings()/savingsCeiling, 1)

	personal := baseRelevance
	if prefs.PrefersCategory(coupon.Categorize(c)) {
		personal = preferredCategoryRelevance
	}

	timeRel := timeRelevance(now)

	return DealScore{
		Overall:           valueWeight*value + personalWeight*personal + timeWeight*timeRel,
		Value:             value,
		Popularity:        placeholderPopularity,
		PersonalRelevance: personal,
		TimeRelevance:     timeRel,
	}
}

// timeRelevance maps the local hour to a relevance component: dinner
// hours score highest, lunch hours next, everything else is off-peak.
func timeRelevance(now time.Time) float64 {
	hour := now.Hour()
	switch {
	case hour >= 17 && hour <= 21:
		return dinnerRelevance
	case hour >= 11 && hour <= 14:
		return lunchRelevance
	default:
		return offPeakRelevance
	}
}

// isMealTime reports whether the local hour falls in the lunch or dinner
// window used by timeRelevance.
func isMealTime(now time.Time) bool {
	hour := now.Hour()
	return (hour >= 17 && hour <= 21) || (hour >= 11 && hour <= 14)
}
