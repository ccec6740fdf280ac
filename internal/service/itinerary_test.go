package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
)

func TestAddActivity_SortsByTime(t *testing.T) {
	louvre := domain.Activity{ID: "act-1", Name: "Louvre Museum", Time: "09:00"}
	cafe := domain.Activity{ID: "act-2", Name: "Cafe Breakfast", Time: "08:00"}

	list := AddActivity(nil, louvre)
	list = AddActivity(list, cafe)

	require.Len(t, list, 2)
	assert.Equal(t, "Cafe Breakfast", list[0].Name)
	assert.Equal(t, "Louvre Museum", list[1].Name)
}

func TestAddActivity_StableOnEqualTimes(t *testing.T) {
	first := domain.Activity{ID: "act-1", Name: "First", Time: "10:00"}
	second := domain.Activity{ID: "act-2", Name: "Second", Time: "10:00"}

	list := AddActivity(AddActivity(nil, first), second)

	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Second", list[1].Name)
}

func TestAddActivity_DoesNotMutateInput(t *testing.T) {
	original := []domain.Activity{{ID: "act-1", Name: "Louvre", Time: "09:00"}}

	_ = AddActivity(original, domain.Activity{ID: "act-2", Name: "Cafe", Time: "08:00"})

	assert.Equal(t, "Louvre", original[0].Name)
	assert.Len(t, original, 1)
}

func TestUpdateActivity_ReplacesAndResorts(t *testing.T) {
	list := []domain.Activity{
		{ID: "act-1", Name: "Cafe", Time: "08:00"},
		{ID: "act-2", Name: "Louvre", Time: "09:00"},
	}

	updated := UpdateActivity(list, domain.Activity{ID: "act-1", Name: "Late Cafe", Time: "12:00"})

	require.Len(t, updated, 2)
	assert.Equal(t, "Louvre", updated[0].Name)
	assert.Equal(t, "Late Cafe", updated[1].Name)

	// Unknown ID leaves the list unchanged.
	same := UpdateActivity(list, domain.Activity{ID: "act-9", Name: "Ghost"})
	assert.Equal(t, list, same)
}

func TestToggleComplete(t *testing.T) {
	list := []domain.Activity{{ID: "act-1", Name: "Louvre"}}

	toggled := ToggleComplete(list, "act-1")
	assert.True(t, toggled[0].Completed)

	// Toggling twice restores the original state.
	back := ToggleComplete(toggled, "act-1")
	assert.Equal(t, list, back)

	// Unknown ID is a no-op.
	same := ToggleComplete(list, "act-9")
	assert.Equal(t, list, same)
	assert.False(t, list[0].Completed)
}

func TestDeleteActivity(t *testing.T) {
	list := []domain.Activity{
		{ID: "act-1", Name: "Cafe"},
		{ID: "act-2", Name: "Louvre"},
	}

	out := DeleteActivity(list, "act-1")
	require.Len(t, out, 1)
	assert.Equal(t, "Louvre", out[0].Name)

	// Deleting a non-existent activity returns an equal list.
	same := DeleteActivity(list, "act-9")
	assert.Equal(t, list, same)
}

func validActivityRequest() ActivityRequest {
	return ActivityRequest{
		Name:          "Louvre Museum",
		Category:      "attraction",
		Time:          "09:00",
		EstimatedCost: 22,
	}
}

func TestAddDayActivity(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.AddDayActivity(ctx, trip.ID, 0, validActivityRequest())
	require.NoError(t, err)

	require.Len(t, updated.Itinerary[0].Activities, 1)
	act := updated.Itinerary[0].Activities[0]
	assert.Equal(t, "Louvre Museum", act.Name)
	assert.Equal(t, domain.CategoryAttraction, act.Category)
	assert.NotEmpty(t, act.ID)
}

func TestAddDayActivity_DefaultTime(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validActivityRequest()
	req.Time = ""

	updated, err := svc.AddDayActivity(ctx, trip.ID, 0, req)
	require.NoError(t, err)
	assert.Equal(t, "10:00", updated.Itinerary[0].Activities[0].Time)
}

func TestAddDayActivity_BadDay(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.AddDayActivity(ctx, trip.ID, 7, validActivityRequest())
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))

	_, err = svc.AddDayActivity(ctx, trip.ID, -1, validActivityRequest())
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestAddDayActivity_InvalidCategory(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validActivityRequest()
	req.Category = "nightlife"

	_, err = svc.AddDayActivity(ctx, trip.ID, 0, req)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestUpdateDayActivity(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withAct, err := svc.AddDayActivity(ctx, trip.ID, 0, validActivityRequest())
	require.NoError(t, err)
	actID := withAct.Itinerary[0].Activities[0].ID

	req := validActivityRequest()
	req.Name = "Louvre Museum (guided)"
	req.ActualCost = 35

	updated, err := svc.UpdateDayActivity(ctx, trip.ID, 0, actID, req)
	require.NoError(t, err)

	act := updated.Itinerary[0].Activities[0]
	assert.Equal(t, actID, act.ID)
	assert.Equal(t, "Louvre Museum (guided)", act.Name)
	assert.Equal(t, float64(35), act.ActualCost)

	_, err = svc.UpdateDayActivity(ctx, trip.ID, 0, "act-missing", req)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestToggleDayActivity(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withAct, err := svc.AddDayActivity(ctx, trip.ID, 0, validActivityRequest())
	require.NoError(t, err)
	actID := withAct.Itinerary[0].Activities[0].ID

	toggled, err := svc.ToggleDayActivity(ctx, trip.ID, 0, actID)
	require.NoError(t, err)
	assert.True(t, toggled.Itinerary[0].Activities[0].Completed)

	back, err := svc.ToggleDayActivity(ctx, trip.ID, 0, actID)
	require.NoError(t, err)
	assert.False(t, back.Itinerary[0].Activities[0].Completed)
}

func TestRemoveDayActivity(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	withAct, err := svc.AddDayActivity(ctx, trip.ID, 0, validActivityRequest())
	require.NoError(t, err)
	actID := withAct.Itinerary[0].Activities[0].ID

	removed, err := svc.RemoveDayActivity(ctx, trip.ID, 0, actID)
	require.NoError(t, err)
	assert.Empty(t, removed.Itinerary[0].Activities)

	// Removing an unknown activity leaves the trip unchanged.
	same, err := svc.RemoveDayActivity(ctx, trip.ID, 0, "act-missing")
	require.NoError(t, err)
	assert.Empty(t, same.Itinerary[0].Activities)
}

func TestAddActivityToFirstDay(t *testing.T) {
	svc, _ := newTestTripService(t)
	ctx := context.Background()

	trip, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	act := domain.Activity{ID: "act-1", Name: "Le Petit Café", Category: domain.CategoryFood, Time: "10:00"}

	updated, err := svc.AddActivityToFirstDay(ctx, trip.ID, act)
	require.NoError(t, err)

	require.Len(t, updated.Itinerary[0].Activities, 1)
	assert.Equal(t, "Le Petit Café", updated.Itinerary[0].Activities[0].Name)
	assert.Empty(t, updated.Itinerary[1].Activities)
}
