package service

import (
	"context"

	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
	"github.com/triploapp/triplo-server/internal/id"
)

// AccommodationRequest carries accommodation fields for create and update
// operations.
type AccommodationRequest struct {
	HotelName   string  `json:"hotel_name" validate:"required,max=200"`
	Address     string  `json:"address,omitempty"`
	CheckIn     string  `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut    string  `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BookingRef  string  `json:"booking_ref,omitempty"`
	Cost        float64 `json:"cost,omitempty" validate:"gte=0"`
	ContactInfo string  `json:"contact_info,omitempty"`
}

func (r AccommodationRequest) toAccommodation(accommodationID string) domain.Accommodation {
	return domain.Accommodation{
		ID:          accommodationID,
		HotelName:   r.HotelName,
		Address:     r.Address,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		BookingRef:  r.BookingRef,
		Cost:        r.Cost,
		ContactInfo: r.ContactInfo,
	}
}

// AddAccommodation records a booked stay on a trip.
func (s *TripService) AddAccommodation(ctx context.Context, tripID string, req AccommodationRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	acc := req.toAccommodation(id.MustGenerate("acc"))

	trip, err := s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		trip.Accommodations = append(trip.Accommodations, acc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("accommodation added",
		"trip_id", tripID,
		"accommodation_id", acc.ID,
		"hotel", acc.HotelName,
	)
	return trip, nil
}

// UpdateAccommodation replaces a stay's details.
func (s *TripService) UpdateAccommodation(ctx context.Context, tripID, accommodationID string, req AccommodationRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		if trip.FindAccommodation(accommodationID) == nil {
			return domainerrors.NotFound("accommodation not found")
		}
		for i := range trip.Accommodations {
			if trip.Accommodations[i].ID == accommodationID {
				trip.Accommodations[i] = req.toAccommodation(accommodationID)
			}
		}
		return nil
	})
}

// DeleteAccommodation removes a stay. Removing one that does not exist
// leaves the trip unchanged.
func (s *TripService) DeleteAccommodation(ctx context.Context, tripID, accommodationID string) (*domain.Trip, error) {
	return s.updateTrip(ctx, tripID, func(trip *domain.Trip) error {
		accs := make([]domain.Accommodation, 0, len(trip.Accommodations))
		for _, a := range trip.Accommodations {
			if a.ID != accommodationID {
				accs = append(accs, a)
			}
		}
		trip.Accommodations = accs
		return nil
	})
}
