package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/triploapp/triplo-server/internal/errors"
)

type createTripPayload struct {
	Destination string  `json:"destination" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Travelers   int     `json:"travelers" validate:"gte=1"`
	TotalBudget float64 `json:"total_budget" validate:"gte=0"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(createTripPayload{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
		Travelers:   2,
		TotalBudget: 1000,
	})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	v := New()

	err := v.Validate(createTripPayload{Travelers: 1})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	fields, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["destination"])
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "end_date")
}

func TestValidate_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(createTripPayload{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
		Travelers:   0,
	})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	fields := domainErr.Details.(map[string]string)
	assert.Contains(t, fields, "travelers")
}

func TestValidate_BadDateFormat(t *testing.T) {
	v := New()

	err := v.Validate(createTripPayload{
		Destination: "Paris",
		StartDate:   "June 1st",
		EndDate:     "2024-06-03",
		Travelers:   1,
	})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	fields := domainErr.Details.(map[string]string)
	assert.Equal(t, "must be a date in YYYY-MM-DD format", fields["start_date"])
}

func TestValidate_EmailTag(t *testing.T) {
	v := New()

	type invite struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	err := v.Validate(invite{Name: "Ana", Email: "not-an-email"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	fields := domainErr.Details.(map[string]string)
	assert.Equal(t, "must be a valid email address", fields["email"])
}
