package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/service"
)

func (s *Server) registerItineraryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "addActivity",
		Method:        http.MethodPost,
		Path:          "/api/v1/trips/{id}/days/{day}/activities",
		Summary:       "Add activity",
		Description:   "Adds an activity to the day at the given itinerary index. Activities stay sorted by time.",
		Tags:          []string{"Itinerary"},
		DefaultStatus: http.StatusCreated,
	}, s.handleAddActivity)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateActivity",
		Method:      http.MethodPatch,
		Path:        "/api/v1/trips/{id}/days/{day}/activities/{activityID}",
		Summary:     "Update activity",
		Tags:        []string{"Itinerary"},
	}, s.handleUpdateActivity)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteActivity",
		Method:      http.MethodDelete,
		Path:        "/api/v1/trips/{id}/days/{day}/activities/{activityID}",
		Summary:     "Delete activity",
		Tags:        []string{"Itinerary"},
	}, s.handleDeleteActivity)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleActivity",
		Method:      http.MethodPost,
		Path:        "/api/v1/trips/{id}/days/{day}/activities/{activityID}/toggle",
		Summary:     "Toggle activity completion",
		Tags:        []string{"Itinerary"},
	}, s.handleToggleActivity)
}

// === DTOs ===

// AddActivityInput addresses a day by itinerary index and carries the
// activity body.
type AddActivityInput struct {
	ID   string `path:"id" doc:"Trip ID"`
	Day  int    `path:"day" minimum:"0" doc:"Zero-based itinerary day index"`
	Body service.ActivityRequest
}

// ActivityInput addresses one activity on one day.
type ActivityInput struct {
	ID         string `path:"id" doc:"Trip ID"`
	Day        int    `path:"day" minimum:"0" doc:"Zero-based itinerary day index"`
	ActivityID string `path:"activityID" doc:"Activity ID"`
}

// UpdateActivityInput addresses one activity and carries the replacement body.
type UpdateActivityInput struct {
	ID         string `path:"id" doc:"Trip ID"`
	Day        int    `path:"day" minimum:"0" doc:"Zero-based itinerary day index"`
	ActivityID string `path:"activityID" doc:"Activity ID"`
	Body       service.ActivityRequest
}

// === Handlers ===

func (s *Server) handleAddActivity(ctx context.Context, input *AddActivityInput) (*TripOutput, error) {
	trip, err := s.services.Trip.AddDayActivity(ctx, input.ID, input.Day, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleUpdateActivity(ctx context.Context, input *UpdateActivityInput) (*TripOutput, error) {
	trip, err := s.services.Trip.UpdateDayActivity(ctx, input.ID, input.Day, input.ActivityID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, input *ActivityInput) (*TripOutput, error) {
	trip, err := s.services.Trip.RemoveDayActivity(ctx, input.ID, input.Day, input.ActivityID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleToggleActivity(ctx context.Context, input *ActivityInput) (*TripOutput, error) {
	trip, err := s.services.Trip.ToggleDayActivity(ctx, input.ID, input.Day, input.ActivityID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}
