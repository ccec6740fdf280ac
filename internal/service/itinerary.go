package service

import (
	"context"
	"sort"
	"strings"

	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
	"github.com/triploapp/triplo-server/internal/id"
)

// defaultActivityTime is used when a new activity has no time. Mid-morning
// keeps it visible near the top of the day without claiming breakfast.
const defaultActivityTime = "10:00"

// Pure itinerary edits. Each returns a new slice; inputs are never mutated.
// Times are fixed-width "HH:mm", so lexicographic order is chronological.

// AddActivity appends an activity and re-sorts the list by time.
func AddActivity(list []domain.Activity, a domain.Activity) []domain.Activity {
	out := make([]domain.Activity, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, a)
	sortByTime(out)
	return out
}

// UpdateActivity replaces the activity with a matching ID and re-sorts.
// Returns an unchanged copy if no activity matches.
func UpdateActivity(list []domain.Activity, a domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == a.ID {
			out[i] = a
			sortByTime(out)
			break
		}
	}
	return out
}

// ToggleComplete flips the completed flag of the activity with the given ID.
// Returns an unchanged copy if no activity matches.
func ToggleComplete(list []domain.Activity, activityID string) []domain.Activity {
	out := make([]domain.Activity, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == activityID {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// DeleteActivity removes the activity with the given ID.
// Returns an unchanged copy if no activity matches.
func DeleteActivity(list []domain.Activity, activityID string) []domain.Activity {
	out := make([]domain.Activity, 0, len(list))
	for _, a := range list {
		if a.ID != activityID {
			out = append(out, a)
		}
	}
	return out
}

// sortByTime stable-sorts so same-time activities keep insertion order.
func sortByTime(list []domain.Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.Compare(list[i].Time, list[j].Time) < 0
	})
}

// ActivityRequest carries activity fields for create and update operations.
type ActivityRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Category      string   `json:"category" validate:"required,oneof=attraction food accommodation transport custom"`
	Time          string   `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Address       string   `json:"address,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	EstimatedCost float64  `json:"estimated_cost,omitempty" validate:"gte=0"`
	ActualCost    float64  `json:"actual_cost,omitempty" validate:"gte=0"`
	Duration      string   `json:"duration,omitempty"`
	Completed     bool     `json:"completed,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

func (r ActivityRequest) toActivity(activityID string) domain.Activity {
	t := r.Time
	if t == "" {
		t = defaultActivityTime
	}
	return domain.Activity{
		ID:            activityID,
		Name:          r.Name,
		Category:      domain.Category(r.Category),
		Time:          t,
		Address:       r.Address,
		Notes:         r.Notes,
		EstimatedCost: r.EstimatedCost,
		ActualCost:    r.ActualCost,
		Duration:      r.Duration,
		Completed:     r.Completed,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

// dayByIndex resolves a day plan by itinerary position.
func dayByIndex(trip *domain.Trip, day int) (*domain.DayPlan, error) {
	if day < 0 || day >= len(trip.Itinerary) {
		return nil, domainerrors.NotFoundf("trip has no day %d", day)
	}
	return &trip.Itinerary[day], nil
}

// AddDayActivity adds an activity to the day at the given itinerary index.
func (s *TripService) AddDayActivity(ctx context.Context, tripID string, day int, req ActivityRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	activity := req.toActivity(id.MustGenerate("act"))

	trip, err := s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		plan, err := dayByIndex(trip, day)
		if err != nil {
			return err
		}
		plan.Activities = AddActivity(plan.Activities, activity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("activity added",
		"trip_id", tripID,
		"day", day,
		"activity_id", activity.ID,
		"name", activity.Name,
	)
	return trip, nil
}

// UpdateDayActivity replaces an activity on the given day.
func (s *TripService) UpdateDayActivity(ctx context.Context, tripID string, day int, activityID string, req ActivityRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		plan, err := dayByIndex(trip, day)
		if err != nil {
			return err
		}
		if !hasActivity(plan.Activities, activityID) {
			return domainerrors.NotFound("activity not found")
		}
		plan.Activities = UpdateActivity(plan.Activities, req.toActivity(activityID))
		return nil
	})
}

// ToggleDayActivity flips an activity's completed flag.
func (s *TripService) ToggleDayActivity(ctx context.Context, tripID string, day int, activityID string) (*domain.Trip, error) {
	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		plan, err := dayByIndex(trip, day)
		if err != nil {
			return err
		}
		plan.Activities = ToggleComplete(plan.Activities, activityID)
		return nil
	})
}

// RemoveDayActivity deletes an activity from the given day. Removing an
// activity that does not exist leaves the trip unchanged.
func (s *TripService) RemoveDayActivity(ctx context.Context, tripID string, day int, activityID string) (*domain.Trip, error) {
	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		plan, err := dayByIndex(trip, day)
		if err != nil {
			return err
		}
		plan.Activities = DeleteActivity(plan.Activities, activityID)
		return nil
	})
}

// AddActivityToFirstDay appends a ready-made activity to the trip's first
// itinerary day. Used by discovery when a found place is saved to a trip.
// A trip with no days is left unchanged.
func (s *TripService) AddActivityToFirstDay(ctx context.Context, tripID string, activity domain.Activity) (*domain.Trip, error) {
	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		if len(trip.Itinerary) == 0 {
			return nil
		}
		trip.Itinerary[0].Activities = AddActivity(trip.Itinerary[0].Activities, activity)
		return nil
	})
}

func hasActivity(list []domain.Activity, activityID string) bool {
	for i := range list {
		if list[i].ID == activityID {
			return true
		}
	}
	return false
}
