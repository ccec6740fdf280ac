// Package search provides full-text search over trips and their itinerary
// activities using Bleve. Trips and activities share one index with type
// discrimination so a single query can surface both.
package search

import (
	"github.com/triploapp/triplo-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypeTrip     DocType = "trip"
	DocTypeActivity DocType = "activity"
)

// SearchDocument is the unified document structure for the Bleve index.
//
// Activity documents denormalize the parent trip's destination so a search
// for "Paris" also surfaces activities planned there without a join.
type SearchDocument struct {
	// Identity
	ID   string  `json:"id"`
	Type DocType `json:"type"`

	// Primary searchable text
	// Trip: destination, Activity: activity name
	Name string `json:"name"`

	// Activity-specific fields (empty for trips)
	Notes       string `json:"notes,omitempty"`
	Address     string `json:"address,omitempty"`
	Category    string `json:"category,omitempty"`
	Destination string `json:"destination,omitempty"` // Denormalized for search
	TripID      string `json:"trip_id,omitempty"`
	Date        string `json:"date,omitempty"` // Day the activity is scheduled on

	// Timestamps for sorting
	CreatedAt int64 `json:"created_at"` // Unix millis
	UpdatedAt int64 `json:"updated_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *SearchDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"type":       string(d.Type),
		"name":       d.Name,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
	}

	if d.Notes != "" {
		m["notes"] = d.Notes
	}
	if d.Address != "" {
		m["address"] = d.Address
	}
	if d.Category != "" {
		m["category"] = d.Category
	}
	if d.Destination != "" {
		m["destination"] = d.Destination
	}
	if d.TripID != "" {
		m["trip_id"] = d.TripID
	}
	if d.Date != "" {
		m["date"] = d.Date
	}

	return m
}

// activityDocID namespaces activity documents under their trip so the same
// activity ID in two trips can never collide.
func activityDocID(tripID, activityID string) string {
	return tripID + "/" + activityID
}

// TripToSearchDocuments converts a trip into the full set of documents that
// represent it in the index: one for the trip itself and one per activity.
func TripToSearchDocuments(trip *domain.Trip) []*SearchDocument {
	docs := []*SearchDocument{
		{
			ID:        trip.ID,
			Type:      DocTypeTrip,
			Name:      trip.Destination,
			CreatedAt: trip.CreatedAt.UnixMilli(),
			UpdatedAt: trip.UpdatedAt.UnixMilli(),
		},
	}

	for _, day := range trip.Itinerary {
		for _, act := range day.Activities {
			docs = append(docs, &SearchDocument{
				ID:          activityDocID(trip.ID, act.ID),
				Type:        DocTypeActivity,
				Name:        act.Name,
				Notes:       act.Notes,
				Address:     act.Address,
				Category:    string(act.Category),
				Destination: trip.Destination,
				TripID:      trip.ID,
				Date:        day.Date,
				CreatedAt:   trip.CreatedAt.UnixMilli(),
				UpdatedAt:   trip.UpdatedAt.UnixMilli(),
			})
		}
	}

	return docs
}

// TripDocIDs returns every document ID a trip occupies in the index.
// Used to clear stale documents before reindexing an updated trip.
func TripDocIDs(trip *domain.Trip) []string {
	ids := []string{trip.ID}
	for _, day := range trip.Itinerary {
		for _, act := range day.Activities {
			ids = append(ids, activityDocID(trip.ID, act.ID))
		}
	}
	return ids
}
