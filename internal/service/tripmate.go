package service

import (
	"context"

	"github.com/triploapp/triplo-server/internal/avatar"
	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
	"github.com/triploapp/triplo-server/internal/id"
)

// InviteTripmateRequest contains the data needed to add a tripmate.
type InviteTripmateRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// InviteTripmate adds a collaborator to a trip. Invitees join as editors;
// ownership never transfers.
func (s *TripService) InviteTripmate(ctx context.Context, tripID string, req InviteTripmateRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	mate := domain.Tripmate{
		ID:     id.MustGenerate("mate"),
		Name:   req.Name,
		Email:  req.Email,
		Avatar: avatar.URL(req.Name),
		Role:   domain.RoleEditor,
	}

	trip, err := s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		trip.Tripmates = append(trip.Tripmates, mate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tripmate invited",
		"trip_id", tripID,
		"tripmate_id", mate.ID,
		"email", mate.Email,
	)
	return trip, nil
}

// RemoveTripmate removes a collaborator. The owner cannot be removed; every
// trip keeps its organizer.
func (s *TripService) RemoveTripmate(ctx context.Context, tripID, tripmateID string) (*domain.Trip, error) {
	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		mate := trip.FindTripmate(tripmateID)
		if mate == nil {
			return domainerrors.NotFound("tripmate not found")
		}
		if mate.IsOwner() {
			return domainerrors.Conflict("the trip organizer cannot be removed")
		}

		mates := make([]domain.Tripmate, 0, len(trip.Tripmates)-1)
		for _, m := range trip.Tripmates {
			if m.ID != tripmateID {
				mates = append(mates, m)
			}
		}
		trip.Tripmates = mates
		return nil
	})
}

// ShareLink returns the invite URL for a trip. Anyone opening it with the
// embedded code sees the shared trip in the client.
func (s *TripService) ShareLink(ctx context.Context, tripID string) (string, error) {
	trip, err := s.Get(ctx, tripID)
	if err != nil {
		return "", err
	}
	return s.publicURL + "?trip=" + trip.ID + "&code=" + trip.ShareCode, nil
}
