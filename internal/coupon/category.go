package coupon

import "strings"

// Category classifies a coupon into one of a fixed set of deal types.
type Category string

const (
	CategoryPizza       Category = "pizza"
	CategoryBundle      Category = "bundle"
	CategoryWings       Category = "wings"
	CategoryLateNight   Category = "late-night"
	CategoryDelivery    Category = "delivery"
	CategoryCarryout    Category = "carryout"
	CategoryLimitedTime Category = "limited-time"
	CategoryDefault     Category = "default"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPizza,
	CategoryBundle,
	CategoryWings,
	CategoryLateNight,
	CategoryDelivery,
	CategoryCarryout,
	CategoryLimitedTime,
	CategoryDefault,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

var (
	lateNightKeywords = []string{
		"late night", "after 10", "after 10pm", "midnight", "night owl",
	}
	bundleKeywords = []string{
		"bundle", "combo", "meal deal", "feast", "pack",
	}
	pizzaKeywords = []string{
		"pizza", "topping", "crust", "large", "medium", "specialty",
	}
	wingsKeywords = []string{
		"wing", "breadstick", "bread", "pasta", "sandwich", "salad",
		"dessert", "side",
	}
	limitedTimeKeywords = []string{
		"today only", "flash sale", "limited time", "ends soon", "this week",
	}
)

// Categorize assigns a coupon exactly one category. Keyword groups are
// tested in a fixed order against the lower-cased name plus description
// and the first match wins, so a "Late Night Pizza Bundle" is late-night,
// not pizza or bundle.
//
// This is the single classification rule for the whole application:
// scoring, recommendation reasons and display grouping must all call it
// rather than keep their own keyword lists.
func Categorize(c Coupon) Category {
	text := strings.ToLower(c.Name + " " + c.Description)

	if containsAny(text, lateNightKeywords) {
		return CategoryLateNight
	}
	if c.Bundle || containsAny(text, bundleKeywords) {
		return CategoryBundle
	}
	if containsAny(text, pizzaKeywords) {
		return CategoryPizza
	}
	if containsAny(text, wingsKeywords) {
		return CategoryWings
	}
	if c.ServiceMethod == "Delivery" {
		return CategoryDelivery
	}
	if c.ServiceMethod == "Carryout" {
		return CategoryCarryout
	}
	if containsAny(text, limitedTimeKeywords) {
		return CategoryLimitedTime
	}

	return CategoryDefault
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
