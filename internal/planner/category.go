package planner

import "strings"

// Role is the semantic slot a raw category tag can fill.
type Role int

const (
	RoleUnclassified Role = iota
	RoleStay
	RoleMeal
	RoleAttraction
)

var stayKeywords = []string{
	"hotel", "guest_house", "hostel", "apartment", "motel", "resort", "stay",
}

var mealKeywords = []string{
	"bakery", "fast_food", "restaurant", "cafe", "food_court", "food",
	"bar", "pub", "club",
}

var attractionKeywords = []string{
	"beach", "attraction", "library", "art", "aquarium", "theatre",
	"events_venue", "museum", "park", "golf_course", "theme_park",
	"nature_reserve", "garden", "escape_game", "amusement_arcade",
	"place_of_worship", "monastery", "handicraft", "artwork", "pottery",
	"antiques", "grassland", "dog_park", "horse_riding",
}

func matchesAny(tag string, keywords []string) bool {
	lower := strings.ToLower(tag)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func IsStay(tag string) bool { return matchesAny(tag, stayKeywords) }

func IsMeal(tag string) bool { return matchesAny(tag, mealKeywords) }

// IsAttraction honors the apartment carve-out: a tag containing "apartment"
// never classifies as an attraction, even when it matches an attraction
// keyword (e.g. "art_apartment" contains "art").
func IsAttraction(tag string) bool {
	return matchesAny(tag, attractionKeywords) && !IsExcludedAsAttraction(tag)
}

func IsExcludedAsAttraction(tag string) bool {
	return strings.Contains(strings.ToLower(tag), "apartment")
}

// Classify resolves a single role for display purposes. Slot selection does
// not use this: it runs the Is* checks independently, because a tag may match
// more than one role.
func Classify(tag string) Role {
	switch {
	case IsStay(tag):
		return RoleStay
	case IsMeal(tag):
		return RoleMeal
	case IsAttraction(tag):
		return RoleAttraction
	default:
		return RoleUnclassified
	}
}

// DisplayCategory renders a raw tag for humans: "fast_food" -> "Fast Food".
func DisplayCategory(tag string) string {
	words := strings.Split(strings.ReplaceAll(tag, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
