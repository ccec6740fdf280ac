package domain

// CategoryStats is the planned-versus-actual spend for one category.
type CategoryStats struct {
	Category Category `json:"category"`
	Planned  float64  `json:"planned"`
	Actual   float64  `json:"actual"`
}

// BudgetStats is the derived budget view of a trip. It is recomputed on
// every read and never persisted.
type BudgetStats struct {
	PerCategory  []CategoryStats `json:"per_category"`
	TotalPlanned float64         `json:"total_planned"`
	TotalSpent   float64         `json:"total_spent"`
	Remaining    float64         `json:"remaining"`
	Overspend    bool            `json:"overspend"`
	OverAmount   float64         `json:"over_amount,omitempty"`
}
