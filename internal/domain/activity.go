package domain

// Category classifies an activity for budgeting and display.
type Category string

// Activity categories.
const (
	CategoryAttraction    Category = "attraction"
	CategoryFood          Category = "food"
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
	CategoryCustom        Category = "custom"
)

// Categories lists all activity categories in display order.
// Budget aggregation initializes every category from this list.
func Categories() []Category {
	return []Category{
		CategoryAttraction,
		CategoryFood,
		CategoryAccommodation,
		CategoryTransport,
		CategoryCustom,
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAttraction, CategoryFood, CategoryAccommodation, CategoryTransport, CategoryCustom:
		return true
	}
	return false
}

// Activity is a single planned or completed stop within a day.
// Time is "HH:mm" 24-hour, zero-padded, so lexicographic comparison
// of two times is chronological comparison.
type Activity struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Time          string   `json:"time"`
	Address       string   `json:"address"`
	Notes         string   `json:"notes,omitempty"`
	EstimatedCost float64  `json:"estimated_cost"`
	ActualCost    float64  `json:"actual_cost"` // 0 means not yet incurred
	Duration      string   `json:"duration,omitempty"`
	Completed     bool     `json:"completed"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}
