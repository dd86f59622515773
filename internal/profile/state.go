package profile

import (
	"encoding/json"
	"log"
	"time"

	"github.com/slicehub/deal-hub/internal/coupon"
	"github.com/slicehub/deal-hub/internal/storage"
)

const (
	// StateKey is the fixed storage key the envelope is persisted under.
	StateKey = "pizza-deals-user-data"

	// StateVersion gates envelope compatibility. A persisted envelope with
	// any other version is discarded on load and replaced with defaults.
	StateVersion = "1.0.0"

	// maxHistoryEntries caps the view history (oldest evicted first).
	maxHistoryEntries = 1000

	// maxSavedDeals caps the saved-deal collection (oldest evicted first).
	maxSavedDeals = 100

	// maxFavoriteStores caps the favorite-store collection.
	maxFavoriteStores = 20
)

// DefaultState returns the initial envelope used before anything is
// persisted and whenever the persisted envelope cannot be used.
func DefaultState() State {
	return State{
		UserPreferences: UserPreferences{
			PreferredCategories: []coupon.Category{},
			BudgetRange:         BudgetRange{Min: 0, Max: 50},
			OrderFrequency:      OrderMonthly,
			PreferredTimes:      []TimeOfDay{},
			Notifications:       NotificationPrefs{DealAlerts: true, ExpiryReminders: true},
		},
		DealHistory:    []HistoryEntry{},
		SavedDeals:     []SavedDeal{},
		FavoriteStores: []FavoriteStore{},
		Insights:       []Insight{},
		Alerts:         []json.RawMessage{},
		Version:        StateVersion,
	}
}

// Container owns the in-memory state envelope and its persistence through
// the storage port.
//
// Every mutation computes the next state, replaces the in-memory snapshot
// and then persists the whole envelope; a persistence failure is logged
// and otherwise ignored, so the in-memory state stays authoritative for
// the session. Container is not safe for concurrent use: the design
// assumes a single logical writer, and callers that share one must
// serialize access themselves.
type Container struct {
	store storage.Store
	state State

	// now is the clock used for timestamps and time-relevance scoring.
	// Tests substitute a fixed clock.
	now func() time.Time

	// emailedTotal counts deals emailed this session. The envelope has no
	// field for it, so it is not persisted; see PersonalStats.
	emailedTotal int

	// statsCache holds the last computed PersonalStats, invalidated by
	// every mutation.
	statsCache *PersonalStats
}

// NewContainer loads the persisted envelope through store and returns a
// container over it. Load failures of any kind (missing, corrupt, or
// version-mismatched data) fall back to the default state; they are never
// surfaced to the caller.
func NewContainer(store storage.Store) *Container {
	c := &Container{
		store: store,
		now:   time.Now,
	}
	c.state = c.load()
	return c
}

// load reads and validates the persisted envelope, returning defaults on
// any failure.
func (c *Container) load() State {
	data, err := c.store.Get(StateKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("Warning: failed to load profile state: %v", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: persisted profile state is corrupt, using defaults: %v", err)
		return DefaultState()
	}

	if state.Version != StateVersion {
		log.Printf("Warning: persisted profile state has version %q, want %q; using defaults", state.Version, StateVersion)
		return DefaultState()
	}

	normalize(&state)
	return state
}

// normalize replaces nil collections from older or hand-edited envelopes
// with empty ones so callers never see nil slices.
func normalize(state *State) {
	if state.UserPreferences.PreferredCategories == nil {
		state.UserPreferences.PreferredCategories = []coupon.Category{}
	}
	if state.UserPreferences.PreferredTimes == nil {
		state.UserPreferences.PreferredTimes = []TimeOfDay{}
	}
	if state.DealHistory == nil {
		state.DealHistory = []HistoryEntry{}
	}
	if state.SavedDeals == nil {
		state.SavedDeals = []SavedDeal{}
	}
	if state.FavoriteStores == nil {
		state.FavoriteStores = []FavoriteStore{}
	}
	if state.Insights == nil {
		state.Insights = []Insight{}
	}
	if state.Alerts == nil {
		state.Alerts = []json.RawMessage{}
	}
}

// persist writes the whole envelope under the fixed key. Write failures
// are logged and otherwise ignored: durable storage may lag behind the
// in-memory state, which remains authoritative for the session.
func (c *Container) persist() {
	c.state.Version = StateVersion
	c.state.LastSyncedAt = c.now()

	data, err := json.Marshal(c.state)
	if err != nil {
		log.Printf("Warning: failed to serialize profile state: %v", err)
		return
	}

	if err := c.store.Set(StateKey, data); err != nil {
		log.Printf("Warning: failed to persist profile state: %v", err)
	}
}

// mutated invalidates derived caches after a state change.
func (c *Container) mutated() {
	c.statsCache = nil
}

// Reset discards the in-memory state and deletes the persisted envelope.
func (c *Container) Reset() error {
	c.state = DefaultState()
	c.mutated()
	return c.store.Delete(StateKey)
}

// Preferences returns the current user preferences.
func (c *Container) Preferences() UserPreferences {
	return c.state.UserPreferences
}

// SetPreferences replaces the preferences wholesale and persists.
func (c *Container) SetPreferences(prefs UserPreferences) {
	if prefs.PreferredCategories == nil {
		prefs.PreferredCategories = []coupon.Category{}
	}
	if prefs.PreferredTimes == nil {
		prefs.PreferredTimes = []TimeOfDay{}
	}
	c.state.UserPreferences = prefs
	c.mutated()
	c.persist()
}

// UpdatePreferences applies a partial update: nil fields keep their
// current value.
func (c *Container) UpdatePreferences(update PreferencesUpdate) {
	prefs := c.state.UserPreferences

	if update.PreferredCategories != nil {
		prefs.PreferredCategories = *update.PreferredCategories
	}
	if update.BudgetRange != nil {
		prefs.BudgetRange = *update.BudgetRange
	}
	if update.OrderFrequency != nil {
		prefs.OrderFrequency = *update.OrderFrequency
	}
	if update.PreferredTimes != nil {
		prefs.PreferredTimes = *update.PreferredTimes
	}
	if update.Notifications != nil {
		prefs.Notifications = *update.Notifications
	}

	c.SetPreferences(prefs)
}

// State returns a shallow copy of the current envelope, primarily for
// display and export.
func (c *Container) State() State {
	return c.state
}
