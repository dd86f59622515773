/*
Package profile implements the personalization and deal-tracking engine:
a state container that records which deals the user has viewed, scores
deals against inferred preferences, generates ranked recommendations, and
manages the saved-deal and favorite-store collections, persisted as one
JSON envelope through the storage port.

Envelope schema (stored under one fixed key):

	{
	  "userPreferences": {...},
	  "dealHistory":     [...],   // newest first, length <= 1000
	  "savedDeals":      [...],   // newest first, length <= 100
	  "favoriteStores":  [...],   // newest first, length <= 20, unique storeId
	  "insights":        [...],   // reserved
	  "alerts":          [],      // reserved
	  "version":         "1.0.0",
	  "lastSyncedAt":    "..."
	}
*/
package profile

import (
	"encoding/json"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
)

// OrderFrequency describes how often the user orders.
type OrderFrequency string

const (
	OrderRarely   OrderFrequency = "rarely"
	OrderMonthly  OrderFrequency = "monthly"
	OrderWeekly   OrderFrequency = "weekly"
	OrderFrequent OrderFrequency = "frequent"
)

// TimeOfDay is a preferred ordering window.
type TimeOfDay string

const (
	TimeLunch     TimeOfDay = "lunch"
	TimeDinner    TimeOfDay = "dinner"
	TimeLateNight TimeOfDay = "late-night"
)

// BudgetRange bounds the savings the user cares about, inclusive.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NotificationPrefs holds the user's notification toggles.
type NotificationPrefs struct {
	DealAlerts      bool `json:"dealAlerts"`
	ExpiryReminders bool `json:"expiryReminders"`
}

// UserPreferences is the user's inferred or stated deal preferences.
type UserPreferences struct {
	PreferredCategories []coupon.Category `json:"preferredCategories"`
	BudgetRange         BudgetRange       `json:"budgetRange"`
	OrderFrequency      OrderFrequency    `json:"orderFrequency"`
	PreferredTimes      []TimeOfDay       `json:"preferredTimes"`
	Notifications       NotificationPrefs `json:"notifications"`
}

// PrefersCategory reports whether cat is in the preferred set.
func (p UserPreferences) PrefersCategory(cat coupon.Category) bool {
	for _, c := range p.PreferredCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// PreferencesUpdate is a partial preferences replacement: nil fields keep
// their current value.
type PreferencesUpdate struct {
	PreferredCategories *[]coupon.Category `json:"preferredCategories,omitempty"`
	BudgetRange         *BudgetRange       `json:"budgetRange,omitempty"`
	OrderFrequency      *OrderFrequency    `json:"orderFrequency,omitempty"`
	PreferredTimes      *[]TimeOfDay       `json:"preferredTimes,omitempty"`
	Notifications       *NotificationPrefs `json:"notifications,omitempty"`
}

// HistoryEntry records one deal view.
type HistoryEntry struct {
	CouponID         string          `json:"couponId"`
	StoreID          string          `json:"storeId"`
	ViewedAt         time.Time       `json:"viewedAt"`
	EstimatedSavings float64         `json:"estimatedSavings"`
	Category         coupon.Category `json:"category"`
	Score            float64         `json:"score"`
}

// SavedDeal is a deal the user explicitly kept, with the coupon and store
// snapshotted at save time.
type SavedDeal struct {
	ID               string           `json:"id"`
	Coupon           coupon.Coupon    `json:"coupon"`
	Store            coupon.StoreInfo `json:"store"`
	SavedAt          time.Time        `json:"savedAt"`
	ExpiresAt        *time.Time       `json:"expiresAt,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Note             string           `json:"note,omitempty"`
	EstimatedSavings float64          `json:"estimatedSavings"`
}

// Category returns the saved deal's category via the shared classifier.
func (d SavedDeal) Category() coupon.Category {
	return coupon.Categorize(d.Coupon)
}

// FavoriteStore is a store the user pinned for quick deal checks.
type FavoriteStore struct {
	StoreID        string           `json:"storeId"`
	Store          coupon.StoreInfo `json:"store"`
	AddedAt        time.Time        `json:"addedAt"`
	LastCheckedAt  time.Time        `json:"lastCheckedAt"`
	DealCount      int              `json:"dealCount"`
	AverageSavings float64          `json:"averageSavings"`
}

// DealScore is the multi-factor relevance score for a coupon. All
// components are in [0,1].
type DealScore struct {
	Overall           float64 `json:"overall"`
	Value             float64 `json:"value"`
	Popularity        float64 `json:"popularity"`
	PersonalRelevance float64 `json:"personalRelevance"`
	TimeRelevance     float64 `json:"timeRelevance"`
}

// Reason is a named, weighted justification attached to a recommendation.
type Reason struct {
	Code        string  `json:"code"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// DealRecommendation is a ranked coupon with its score and the reasons it
// was recommended.
type DealRecommendation struct {
	Coupon           coupon.Coupon    `json:"coupon"`
	Store            coupon.StoreInfo `json:"store"`
	Score            DealScore        `json:"score"`
	Reasons          []Reason         `json:"reasons"`
	Category         coupon.Category  `json:"category"`
	EstimatedSavings float64          `json:"estimatedSavings"`
}

// PersonalStats is the derived aggregate view of the user's activity.
// It is recomputed from state, never stored.
type PersonalStats struct {
	TotalViewed       int             `json:"totalViewed"`
	TotalSaved        int             `json:"totalSaved"`
	TotalEmailed      int             `json:"totalEmailed"`
	TotalSavings      float64         `json:"totalSavings"`
	FavoriteCategory  coupon.Category `json:"favoriteCategory"`
	MostVisitedStore  string          `json:"mostVisitedStore"`
	AverageOrderValue float64         `json:"averageOrderValue"`
	EngagementRate    float64         `json:"engagementRate"`
}

// Insight is reserved in the envelope for future aggregate insights.
// Nothing produces insights yet.
type Insight struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// State is the persisted envelope.
type State struct {
	UserPreferences UserPreferences   `json:"userPreferences"`
	DealHistory     []HistoryEntry    `json:"dealHistory"`
	SavedDeals      []SavedDeal       `json:"savedDeals"`
	FavoriteStores  []FavoriteStore   `json:"favoriteStores"`
	Insights        []Insight         `json:"insights"`
	Alerts          []json.RawMessage `json:"alerts"`
	Version         string            `json:"version"`
	LastSyncedAt    time.Time         `json:"lastSyncedAt"`
}
