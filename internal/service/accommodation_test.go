package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/triploapp/triplo-server/internal/errors"
)

func validAccommodationRequest() AccommodationRequest {
	return AccommodationRequest{
		HotelName:  "Hotel Le Marais",
		Address:    "12 Rue des Archives, Paris",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		BookingRef: "BK-1234",
		Cost:       420,
	}
}

func TestAddAccommodation(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.AddAccommodation(ctx, trip.ID, validAccommodationRequest())
	require.NoError(t, err)

	require.Len(t, updated.Accommodations, 1)
	acc := updated.Accommodations[0]
	assert.Equal(t, "Hotel Le Marais", acc.HotelName)
	assert.Equal(t, float64(420), acc.Cost)
	assert.NotEmpty(t, acc.ID)

	// Round-trips through the store.
	got, err := svc.Get(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Accommodations, got.Accommodations)
}

func TestAddAccommodation_Validation(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validAccommodationRequest()
	req.HotelName = ""
	_, err = svc.AddAccommodation(ctx, trip.ID, req)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	req = validAccommodationRequest()
	req.CheckIn = "June 1st"
	_, err = svc.AddAccommodation(ctx, trip.ID, req)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestUpdateAccommodation(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withAcc, err := svc.AddAccommodation(ctx, trip.ID, validAccommodationRequest())
	require.NoError(t, err)
	accID := withAcc.Accommodations[0].ID

	req := validAccommodationRequest()
	req.HotelName = "Hotel Le Marais Deluxe"
	req.Cost = 500

	updated, err := svc.UpdateAccommodation(ctx, trip.ID, accID, req)
	require.NoError(t, err)

	acc := updated.Accommodations[0]
	assert.Equal(t, accID, acc.ID)
	assert.Equal(t, "Hotel Le Marais Deluxe", acc.HotelName)
	assert.Equal(t, float64(500), acc.Cost)

	_, err = svc.UpdateAccommodation(ctx, trip.ID, "acc-missing", req)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestDeleteAccommodation(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withAcc, err := svc.AddAccommodation(ctx, trip.ID, validAccommodationRequest())
	require.NoError(t, err)
	accID := withAcc.Accommodations[0].ID

	updated, err := svc.DeleteAccommodation(ctx, trip.ID, accID)
	require.NoError(t, err)
	assert.Empty(t, updated.Accommodations)

	// Deleting an unknown accommodation leaves the trip unchanged.
	same, err := svc.DeleteAccommodation(ctx, trip.ID, "acc-missing")
	require.NoError(t, err)
	assert.Empty(t, same.Accommodations)
}
