package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/service"
)

func (s *Server) registerTripmateRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "inviteTripmate",
		Method:        http.MethodPost,
		Path:          "/api/v1/trips/{id}/tripmates",
		Summary:       "Invite tripmate",
		Description:   "Adds a collaborator with the editor role and a generated avatar",
		Tags:          []string{"Tripmates"},
		DefaultStatus: http.StatusCreated,
	}, s.handleInviteTripmate)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeTripmate",
		Method:      http.MethodDelete,
		Path:        "/api/v1/trips/{id}/tripmates/{tripmateID}",
		Summary:     "Remove tripmate",
		Description: "Removes a collaborator. The trip organizer cannot be removed.",
		Tags:        []string{"Tripmates"},
	}, s.handleRemoveTripmate)

	huma.Register(s.api, huma.Operation{
		OperationID: "getShareLink",
		Method:      http.MethodGet,
		Path:        "/api/v1/trips/{id}/share",
		Summary:     "Get share link",
		Tags:        []string{"Tripmates"},
	}, s.handleGetShareLink)
}

// === DTOs ===

// InviteTripmateInput carries the invitation body.
type InviteTripmateInput struct {
	ID   string `path:"id" doc:"Trip ID"`
	Body service.InviteTripmateRequest
}

// TripmateIDInput addresses one tripmate on a trip.
type TripmateIDInput struct {
	ID         string `path:"id" doc:"Trip ID"`
	TripmateID string `path:"tripmateID" doc:"Tripmate ID"`
}

// ShareLinkResponse contains the invite URL for a trip.
type ShareLinkResponse struct {
	URL  string `json:"url" doc:"Share URL with the trip ID and share code embedded"`
	Code string `json:"code" doc:"Share code"`
}

// ShareLinkOutput wraps the share link for Huma.
type ShareLinkOutput struct {
	Body ShareLinkResponse
}

// === Handlers ===

func (s *Server) handleInviteTripmate(ctx context.Context, input *InviteTripmateInput) (*TripOutput, error) {
	trip, err := s.services.Trip.InviteTripmate(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleRemoveTripmate(ctx context.Context, input *TripmateIDInput) (*TripOutput, error) {
	trip, err := s.services.Trip.RemoveTripmate(ctx, input.ID, input.TripmateID)
	if err != nil {
		return nil, err
	}
	return &TripOutput{Body: *trip}, nil
}

func (s *Server) handleGetShareLink(ctx context.Context, input *TripIDInput) (*ShareLinkOutput, error) {
	trip, err := s.services.Trip.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	link, err := s.services.Trip.ShareLink(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ShareLinkOutput{Body: ShareLinkResponse{
		URL:  link,
		Code: trip.ShareCode,
	}}, nil
}
