package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/discovery"
)

func (s *Server) registerDiscoveryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "discoverySearch",
		Method:      http.MethodPost,
		Path:        "/api/v1/discovery/search",
		Summary:     "Discover places",
		Description: "Asks the grounded model for up to five place recommendations. Failures degrade to an empty list.",
		Tags:        []string{"Discovery"},
	}, s.handleDiscoverySearch)

	huma.Register(s.api, huma.Operation{
		OperationID:   "addDiscoveryToTrip",
		Method:        http.MethodPost,
		Path:          "/api/v1/trips/{id}/discovery",
		Summary:       "Add discovered place to trip",
		Description:   "Converts a discovery result into an activity on the trip's first itinerary day",
		Tags:          []string{"Discovery"},
		DefaultStatus: http.StatusCreated,
	}, s.handleAddDiscoveryToTrip)
}

// === DTOs ===

// DiscoverySearchRequest asks for recommendations in a destination.
type DiscoverySearchRequest struct {
	Query       string `json:"query" validate:"required,max=200" doc:"What to look for, e.g. best croissants"`
	Destination string `json:"destination" validate:"required,max=200" doc:"Where to look, e.g. Paris, France"`
}

// DiscoverySearchInput wraps the search request body.
type DiscoverySearchInput struct {
	Body DiscoverySearchRequest
}

// DiscoverySearchResponse contains the recommended places.
type DiscoverySearchResponse struct {
	Results []discovery.PlaceResult `json:"results" doc:"Recommended places, empty on any upstream failure"`
}

// DiscoverySearchOutput wraps the search response for Huma.
type DiscoverySearchOutput struct {
	Body DiscoverySearchResponse
}

// AddDiscoveryInput carries one discovery result to save on a trip.
type AddDiscoveryInput struct {
	ID   string `path:"id" doc:"Trip ID"`
	Body discovery.PlaceResult
}

// === Handlers ===

func (s *Server) handleDiscoverySearch(ctx context.Context, input *DiscoverySearchInput) (*DiscoverySearchOutput, error) {
	results := s.services.Discovery.Search(ctx, input.Body.Query, input.Body.Destination)
	return &DiscoverySearchOutput{Body: DiscoverySearchResponse{Results: results}}, nil
}

func (s *Server) handleAddDiscoveryToTrip(ctx context.Context, input *AddDiscoveryInput) (*TripOutput, error) {
	trip, err := s.services.Discovery.AddToTrip(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}
