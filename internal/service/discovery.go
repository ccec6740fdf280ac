package service

import (
	"context"
	"log/slog"

	"github.com/triploapp/triplo-server/internal/discovery"
	"github.com/triploapp/triplo-server/internal/domain"
)

// PlaceSearcher is the slice of the discovery client this service uses.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query, destination string) ([]discovery.PlaceResult, error)
	Enabled() bool
}

// DiscoveryService orchestrates AI-grounded place search and saving results
// into itineraries. Search failures degrade to empty result lists; the
// client is browsing suggestions, not depending on them.
type DiscoveryService struct {
	client PlaceSearcher
	trips  *TripService
	logger *slog.Logger
}

// NewDiscoveryService creates a discovery service.
func NewDiscoveryService(client PlaceSearcher, trips *TripService, logger *slog.Logger) *DiscoveryService {
	return &DiscoveryService{
		client: client,
		trips:  trips,
		logger: logger,
	}
}

// Search finds place recommendations for a query in a destination.
// It never fails: misconfiguration and upstream errors are logged and an
// empty list is returned.
func (s *DiscoveryService) Search(ctx context.Context, query, destination string) []discovery.PlaceResult {
	if !s.client.Enabled() {
		s.logger.Warn("discovery search skipped, no API key configured")
		return []discovery.PlaceResult{}
	}

	results, err := s.client.SearchPlaces(ctx, query, destination)
	if err != nil {
		s.logger.Error("discovery search failed",
			"query", query,
			"destination", destination,
			"error", err,
		)
		return []discovery.PlaceResult{}
	}
	return results
}

// AddToTrip converts a found place into an activity on the trip's first
// itinerary day.
func (s *DiscoveryService) AddToTrip(ctx context.Context, tripID string, place discovery.PlaceResult) (*domain.Trip, error) {
	activity := discovery.ToActivity(place)

	trip, err := s.trips.AddActivityToFirstDay(ctx, tripID, activity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("discovery place added to trip",
		"trip_id", tripID,
		"activity_id", activity.ID,
		"name", activity.Name,
	)
	return trip, nil
}
