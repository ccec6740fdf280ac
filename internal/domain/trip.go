// Package domain defines the travel-planning entities and their invariants.
// The Trip is the single root of mutable state: every other entity is
// reachable only through a trip and has no independent lifecycle.
package domain

import "time"

// DateFormat is the date-only layout used for trip and itinerary dates.
const DateFormat = time.DateOnly

// Trip is the top-level planning record for one travel event.
//
// Invariant: len(Itinerary) == days between StartDate and EndDate inclusive,
// with each day's date one calendar day after the previous and the first
// equal to StartDate. The itinerary is derived once at creation and never
// re-expanded on update.
type Trip struct {
	ID             string          `json:"id"`
	Destination    string          `json:"destination"`
	StartDate      string          `json:"start_date"` // date-only, YYYY-MM-DD
	EndDate        string          `json:"end_date"`   // date-only, YYYY-MM-DD
	Travelers      int             `json:"travelers"`
	TotalBudget    float64         `json:"total_budget"`
	Itinerary      []DayPlan       `json:"itinerary"`
	Accommodations []Accommodation `json:"accommodations"`
	Tripmates      []Tripmate      `json:"tripmates"`
	ShareCode      string          `json:"share_code"`
	CoverImage     string          `json:"cover_image,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DayPlan is one calendar day's schedule within a trip.
// Activities stay sorted by time ascending after every mutation.
type DayPlan struct {
	Date       string     `json:"date"` // date-only, YYYY-MM-DD
	Activities []Activity `json:"activities"`
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the trip changes.
func (t *Trip) Touch() {
	t.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
func (t *Trip) InitTimestamps() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Days returns the number of itinerary days.
func (t *Trip) Days() int {
	return len(t.Itinerary)
}

// Owner returns the owner tripmate, or nil if the trip has none.
func (t *Trip) Owner() *Tripmate {
	for i := range t.Tripmates {
		if t.Tripmates[i].IsOwner() {
			return &t.Tripmates[i]
		}
	}
	return nil
}

// FindTripmate returns the tripmate with the given ID, or nil.
func (t *Trip) FindTripmate(id string) *Tripmate {
	for i := range t.Tripmates {
		if t.Tripmates[i].ID == id {
			return &t.Tripmates[i]
		}
	}
	return nil
}

// FindAccommodation returns the accommodation with the given ID, or nil.
func (t *Trip) FindAccommodation(id string) *Accommodation {
	for i := range t.Accommodations {
		if t.Accommodations[i].ID == id {
			return &t.Accommodations[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the trip. Mutation paths clone first so the
// stored collection only ever sees fully-formed replacement values.
func (t *Trip) Clone() Trip {
	out := *t

	out.Itinerary = make([]DayPlan, len(t.Itinerary))
	for i, day := range t.Itinerary {
		cp := day
		cp.Activities = make([]Activity, len(day.Activities))
		copy(cp.Activities, day.Activities)
		out.Itinerary[i] = cp
	}

	out.Accommodations = make([]Accommodation, len(t.Accommodations))
	copy(out.Accommodations, t.Accommodations)

	out.Tripmates = make([]Tripmate, len(t.Tripmates))
	copy(out.Tripmates, t.Tripmates)

	return out
}

// ExpandItinerary builds one empty DayPlan per calendar day in
// [start, end] inclusive. Both bounds are date-only strings.
// start == end yields a single day; end before start yields nothing.
func ExpandItinerary(start, end string) ([]DayPlan, error) {
	startDay, err := time.Parse(DateFormat, start)
	if err != nil {
		return nil, err
	}
	endDay, err := time.Parse(DateFormat, end)
	if err != nil {
		return nil, err
	}

	var days []DayPlan
	for cursor := startDay; !cursor.After(endDay); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, DayPlan{
			Date:       cursor.Format(DateFormat),
			Activities: []Activity{},
		})
	}
	return days, nil
}
