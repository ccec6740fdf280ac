package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
)

func TestInviteTripmate(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.InviteTripmate(ctx, trip.ID, InviteTripmateRequest{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	require.Len(t, updated.Tripmates, 2)
	mate := updated.Tripmates[1]
	assert.Equal(t, "Ana", mate.Name)
	assert.Equal(t, "ana@example.com", mate.Email)
	assert.Equal(t, domain.RoleEditor, mate.Role)
	assert.Contains(t, mate.Avatar, "seed=Ana")
}

func TestInviteTripmate_Validation(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.InviteTripmate(ctx, trip.ID, InviteTripmateRequest{Name: "", Email: "ana@example.com"})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	_, err = svc.InviteTripmate(ctx, trip.ID, InviteTripmateRequest{Name: "Ana", Email: "not-an-email"})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestRemoveTripmate(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withMate, err := svc.InviteTripmate(ctx, trip.ID, InviteTripmateRequest{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	require.NoError(t, err)
	mateID := withMate.Tripmates[1].ID

	updated, err := svc.RemoveTripmate(ctx, trip.ID, mateID)
	require.NoError(t, err)
	assert.Len(t, updated.Tripmates, 1)

	_, err = svc.RemoveTripmate(ctx, trip.ID, "mate-missing")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestRemoveTripmate_OwnerRefused(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	ownerID := trip.Tripmates[0].ID

	_, err = svc.RemoveTripmate(ctx, trip.ID, ownerID)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrConflict))

	// Owner is still there.
	got, err := svc.Get(ctx, trip.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tripmates, 1)
}

func TestShareLink(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	link, err := svc.ShareLink(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080?trip="+trip.ID+"&code="+trip.ShareCode, link)

	_, err = svc.ShareLink(ctx, "trip-missing")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}
