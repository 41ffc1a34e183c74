package db_models

// Tour categories. The AI prompt constrains the model to this exact
// vocabulary, so new values must be added here and in the plan schema
// together.
const (
	CategoryAccommodation = "ACCOMMODATION"
	CategoryRestaurant    = "RESTAURANT"
	CategoryTouristSpot   = "TOURIST_SPOT"
	CategoryLeisure       = "LEISURE"
	CategoryHealing       = "HEALING"
)

var AllCategories = []string{
	CategoryAccommodation,
	CategoryRestaurant,
	CategoryTouristSpot,
	CategoryLeisure,
	CategoryHealing,
}

func IsValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}
