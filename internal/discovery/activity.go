package discovery

import (
	"github.com/triploapp/triplo-server/internal/domain"
	"github.com/triploapp/triplo-server/internal/id"
)

// ToActivity converts a place result into an itinerary activity.
// Times and costs are left for the traveler to fill in.
func ToActivity(p PlaceResult) domain.Activity {
	category := domain.Category(p.Category)
	if !category.IsValid() {
		category = domain.CategoryCustom
	}

	return domain.Activity{
		ID:       id.MustGenerate("act"),
		Name:     p.Name,
		Category: category,
		Time:     "10:00",
		Address:  p.Address,
		Notes:    p.Description,
	}
}
