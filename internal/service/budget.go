package service

import (
	"context"

	"github.com/triploapp/triplo-server/internal/domain"
)

// ComputeBudget derives the budget view of a trip. Activities contribute
// their estimated cost to their category's planned side; the actual side
// gets the actual cost, falling back to the estimate while nothing has been
// paid yet so totals stay realistic during planning. Accommodations are
// booked lump sums, so their cost counts as both planned and actual under
// the accommodation category.
func ComputeBudget(trip *domain.Trip) domain.BudgetStats {
	byCategory := make(map[domain.Category]*domain.CategoryStats, len(domain.Categories()))
	perCategory := make([]domain.CategoryStats, len(domain.Categories()))
	for i, c := range domain.Categories() {
		perCategory[i] = domain.CategoryStats{Category: c}
		byCategory[c] = &perCategory[i]
	}

	for _, day := range trip.Itinerary {
		for _, act := range day.Activities {
			stats, ok := byCategory[act.Category]
			if !ok {
				stats = byCategory[domain.CategoryCustom]
			}
			stats.Planned += act.EstimatedCost
			if act.ActualCost > 0 {
				stats.Actual += act.ActualCost
			} else {
				stats.Actual += act.EstimatedCost
			}
		}
	}

	for _, acc := range trip.Accommodations {
		stats := byCategory[domain.CategoryAccommodation]
		stats.Planned += acc.Cost
		stats.Actual += acc.Cost
	}

	out := domain.BudgetStats{PerCategory: perCategory}
	for _, stats := range perCategory {
		out.TotalPlanned += stats.Planned
		out.TotalSpent += stats.Actual
	}

	if out.TotalSpent > trip.TotalBudget {
		out.Overspend = true
		out.OverAmount = out.TotalSpent - trip.TotalBudget
	} else {
		out.Remaining = trip.TotalBudget - out.TotalSpent
	}

	return out
}

// Budget returns the derived budget stats for one trip.
func (s *TripService) Budget(ctx context.Context, tripID string) (*domain.BudgetStats, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	stats := ComputeBudget(trip)
	return &stats, nil
}
