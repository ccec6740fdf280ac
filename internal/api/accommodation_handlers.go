package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/service"
)

func (s *Server) registerAccommodationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "addAccommodation",
		Method:        http.MethodPost,
		Path:          "/api/v1/trips/{id}/accommodations",
		Summary:       "Add accommodation",
		Tags:          []string{"Accommodations"},
		DefaultStatus: http.StatusCreated,
	}, s.handleAddAccommodation)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateAccommodation",
		Method:      http.MethodPatch,
		Path:        "/api/v1/trips/{id}/accommodations/{accommodationID}",
		Summary:     "Update accommodation",
		Tags:        []string{"Accommodations"},
	}, s.handleUpdateAccommodation)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAccommodation",
		Method:      http.MethodDelete,
		Path:        "/api/v1/trips/{id}/accommodations/{accommodationID}",
		Summary:     "Delete accommodation",
		Tags:        []string{"Accommodations"},
	}, s.handleDeleteAccommodation)
}

// === DTOs ===

// AddAccommodationInput carries a new stay for a trip.
type AddAccommodationInput struct {
	ID   string `path:"id" doc:"Trip ID"`
	Body service.AccommodationRequest
}

// UpdateAccommodationInput addresses one stay and carries the replacement body.
type UpdateAccommodationInput struct {
	ID              string `path:"id" doc:"Trip ID"`
	AccommodationID string `path:"accommodationID" doc:"Accommodation ID"`
	Body            service.AccommodationRequest
}

// AccommodationIDInput addresses one stay on a trip.
type AccommodationIDInput struct {
	ID              string `path:"id" doc:"Trip ID"`
	AccommodationID string `path:"accommodationID" doc:"Accommodation ID"`
}

// === Handlers ===

func (s *Server) handleAddAccommodation(ctx context.Context, input *AddAccommodationInput) (*TripOutput, error) {
	trip, err := s.services.Trip.AddAccommodation(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleUpdateAccommodation(ctx context.Context, input *UpdateAccommodationInput) (*TripOutput, error) {
	trip, err := s.services.Trip.UpdateAccommodation(ctx, input.ID, input.AccommodationID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleDeleteAccommodation(ctx context.Context, input *AccommodationIDInput) (*TripOutput, error) {
	trip, err := s.services.Trip.DeleteAccommodation(ctx, input.ID, input.AccommodationID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}
