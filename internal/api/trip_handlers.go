package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/domain"
	"github.com/triploapp/triplo-server/internal/service"
)

func (s *Server) registerTripRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTrips",
		Method:      http.MethodGet,
		Path:        "/api/v1/trips",
		Summary:     "List trips",
		Tags:        []string{"Trips"},
	}, s.handleListTrips)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTrip",
		Method:        http.MethodPost,
		Path:          "/api/v1/trips",
		Summary:       "Create trip",
		Description:   "Creates a trip with one empty itinerary day per calendar day in the inclusive date range",
		Tags:          []string{"Trips"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateTrip)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTrip",
		Method:      http.MethodGet,
		Path:        "/api/v1/trips/{id}",
		Summary:     "Get trip",
		Tags:        []string{"Trips"},
	}, s.handleGetTrip)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTrip",
		Method:      http.MethodPatch,
		Path:        "/api/v1/trips/{id}",
		Summary:     "Update trip",
		Description: "Replaces the trip's top-level fields. The itinerary is not re-derived from changed dates.",
		Tags:        []string{"Trips"},
	}, s.handleUpdateTrip)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteTrip",
		Method:        http.MethodDelete,
		Path:          "/api/v1/trips/{id}",
		Summary:       "Delete trip",
		Tags:          []string{"Trips"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteTrip)
}

// === DTOs ===

// TripOutput wraps a single trip for Huma.
type TripOutput struct {
	Body domain.Trip
}

// TripListResponse contains the full trip collection.
type TripListResponse struct {
	Trips []domain.Trip `json:"trips" doc:"All trips, in creation order"`
}

// TripListOutput wraps the trip list for Huma.
type TripListOutput struct {
	Body TripListResponse
}

// TripIDInput identifies a trip by path parameter.
type TripIDInput struct {
	ID string `path:"id" doc:"Trip ID"`
}

// CreateTripInput wraps the create request body.
type CreateTripInput struct {
	Body service.CreateTripRequest
}

// UpdateTripInput wraps the update request body.
type UpdateTripInput struct {
	ID   string `path:"id" doc:"Trip ID"`
	Body service.UpdateTripRequest
}

// === Handlers ===

func (s *Server) handleListTrips(ctx context.Context, _ *struct{}) (*TripListOutput, error) {
	trips, err := s.services.Trip.List(ctx)
	if err != nil {
		s.logger.Error("failed to list trips", "error", err)
		return nil, err
	}
	return &TripListOutput{Body: TripListResponse{Trips: trips}}, nil
}

func (s *Server) handleCreateTrip(ctx context.Context, input *CreateTripInput) (*TripOutput, error) {
	trip, err := s.services.Trip.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleGetTrip(ctx context.Context, input *TripIDInput) (*TripOutput, error) {
	trip, err := s.services.Trip.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleUpdateTrip(ctx context.Context, input *UpdateTripInput) (*TripOutput, error) {
	trip, err := s.services.Trip.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleDeleteTrip(ctx context.Context, input *TripIDInput) (*struct{}, error) {
	if err := s.services.Trip.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
