/*
Package coupon defines the external records this application consumes from
the pizza chain's ordering API (coupons and store profiles) and the helpers
that normalize their loosely-typed fields.

Coupons arrive with prices and expiration dates as free text; the parsers
here default rather than fail (a missing price is 0 savings, an unreadable
expiration is simply absent) so downstream scoring never has to handle a
malformed record specially.
*/
package coupon

import (
	"strconv"
	"strings"
	"time"
)

// Coupon is a promotional offer as returned by the ordering API's menu
// endpoint. Every field except Name may be empty.
type Coupon struct {
	// ID is the coupon identifier from the menu document (usually the code).
	ID string `json:"id,omitempty"`

	// Code is the ordering code entered at checkout.
	Code string `json:"code,omitempty"`

	// VirtualCode is the online-only variant of the code, when present.
	VirtualCode string `json:"virtualCode,omitempty"`

	// Name is the display name of the offer.
	Name string `json:"name"`

	// Description is the longer marketing text.
	Description string `json:"description,omitempty"`

	// Price is the offer price as text, e.g. "10.99". May be empty.
	Price string `json:"price,omitempty"`

	// ExpirationDate is the expiration as text, e.g. "2026-09-15". May be empty.
	ExpirationDate string `json:"expirationDate,omitempty"`

	// Bundle is true when the offer combines multiple products.
	Bundle bool `json:"bundle,omitempty"`

	// ServiceMethod restricts the offer to "Delivery" or "Carryout".
	// Empty means valid for both.
	ServiceMethod string `json:"serviceMethod,omitempty"`

	// Local is true for store-local offers not available chain-wide.
	Local bool `json:"local,omitempty"`
}

// Key returns the stable identifier for the coupon: the ID when present,
// otherwise the name.
func (c Coupon) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Name
}

// EstimatedSavings returns the parsed numeric price, or 0 when the price
// is absent or unparseable.
func (c Coupon) EstimatedSavings() float64 {
	return ParsePrice(c.Price)
}

// Expiration returns the parsed expiration date. The bool is false when
// the coupon has no expiration or it cannot be read.
func (c Coupon) Expiration() (time.Time, bool) {
	return ParseExpiration(c.ExpirationDate)
}

// StoreInfo is a store profile as returned by the ordering API.
type StoreInfo struct {
	// StoreID is the string form of the store's numeric id, e.g. "4332".
	StoreID string `json:"storeId"`

	// Address is the single-line street address.
	Address string `json:"address,omitempty"`

	// Phone is the store's phone number.
	Phone string `json:"phone,omitempty"`

	// HoursDescription is the human-readable opening hours.
	HoursDescription string `json:"hoursDescription,omitempty"`

	// IsOpen reports whether the store was open when fetched.
	IsOpen bool `json:"isOpen,omitempty"`

	// AllowDelivery reports whether the store takes delivery orders.
	AllowDelivery bool `json:"allowDelivery,omitempty"`

	// AllowCarryout reports whether the store takes carryout orders.
	AllowCarryout bool `json:"allowCarryout,omitempty"`
}

// ParsePrice extracts a numeric value from price text like "10.99",
// "$7.99" or "2 for $5.99 each". Returns 0 when nothing numeric is found.
func ParsePrice(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	// Fast path: the whole string is a number.
	if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
		return v
	}

	// Otherwise scan for the first number in the text, skipping any
	// currency symbol.
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0
	}

	end := start
	seenDot := false
	for end < len(text) {
		ch := text[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(text[start:end], "."), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// expirationLayouts are the date formats the ordering API has been seen
// to use for coupon expirations, in the order they are tried.
var expirationLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"01/02/2006",
}

// ParseExpiration parses expiration text into a local time. Date-only
// formats expire at end of day. The bool is false when the text is empty
// or matches no known layout.
func ParseExpiration(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range expirationLayouts {
		t, err := time.ParseInLocation(layout, text, time.Local)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" || layout == "01/02/2006" {
			// A bare date is valid through the end of that day.
			t = t.Add(24*time.Hour - time.Second)
		}
		return t, true
	}

	return time.Time{}, false
}
