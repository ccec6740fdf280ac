package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triploapp/triplo-server/internal/domain"
)

// setupTestIndex creates a temporary search index for testing.
func setupTestIndex(t *testing.T) *SearchIndex {
	t.Helper()

	index, err := NewSearchIndex(Options{
		DataPath: t.TempDir(),
		Logger:   nil,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = index.Close()
	})

	return index
}

func testTrip() *domain.Trip {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Trip{
		ID:          "trip-paris",
		Destination: "Paris, France",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-02",
		Itinerary: []domain.DayPlan{
			{Date: "2024-06-01", Activities: []domain.Activity{
				{ID: "act-1", Name: "Louvre Museum", Category: domain.CategoryAttraction, Notes: "Book tickets ahead"},
				{ID: "act-2", Name: "Le Petit Café", Category: domain.CategoryFood, Address: "12 Rue Cler"},
			}},
			{Date: "2024-06-02", Activities: []domain.Activity{
				{ID: "act-3", Name: "Eiffel Tower", Category: domain.CategoryAttraction},
			}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewSearchIndex(t *testing.T) {
	index := setupTestIndex(t)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndexTrip(t *testing.T) {
	index := setupTestIndex(t)

	require.NoError(t, index.IndexTrip(testTrip()))

	// One trip document plus three activity documents.
	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}

func TestDeleteTrip(t *testing.T) {
	index := setupTestIndex(t)

	trip := testTrip()
	require.NoError(t, index.IndexTrip(trip))
	require.NoError(t, index.DeleteTrip(trip))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestSearch_FindsTripByDestination(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	params := DefaultSearchParams()
	params.Query = "Paris"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)

	// The trip itself and its activities (via denormalized destination) match;
	// the trip should rank first since its name field carries the boost.
	assert.Equal(t, DocTypeTrip, result.Hits[0].Type)
	assert.Equal(t, "trip-paris", result.Hits[0].ID)
}

func TestSearch_FindsActivityByName(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	params := DefaultSearchParams()
	params.Query = "Louvre"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)

	hit := result.Hits[0]
	assert.Equal(t, DocTypeActivity, hit.Type)
	assert.Equal(t, "Louvre Museum", hit.Name)
	assert.Equal(t, "trip-paris", hit.TripID)
	assert.Equal(t, "2024-06-01", hit.Date)
}

func TestSearch_CategoryFilter(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	params := DefaultSearchParams()
	params.Types = []string{"activity"}
	params.Categories = []string{"food"}

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "Le Petit Café", result.Hits[0].Name)
}

func TestSearch_TripScope(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	other := testTrip()
	other.ID = "trip-rome"
	other.Destination = "Rome, Italy"
	other.Itinerary = []domain.DayPlan{
		{Date: "2024-07-01", Activities: []domain.Activity{
			{ID: "act-9", Name: "Colosseum Tour", Category: domain.CategoryAttraction},
		}},
	}
	require.NoError(t, index.IndexTrip(other))

	params := DefaultSearchParams()
	params.Types = []string{"activity"}
	params.TripID = "trip-rome"

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "Colosseum Tour", result.Hits[0].Name)
}

func TestSearch_Facets(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	params := DefaultSearchParams()
	params.Types = []string{"activity"}

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)

	categories := map[string]int{}
	for _, f := range result.Facets.Categories {
		categories[f.Value] = f.Count
	}
	assert.Equal(t, 2, categories["attraction"])
	assert.Equal(t, 1, categories["food"])
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	index := setupTestIndex(t)
	require.NoError(t, index.IndexTrip(testTrip()))

	params := DefaultSearchParams()

	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), result.Total)
}

func TestRebuildAll(t *testing.T) {
	index := setupTestIndex(t)

	stale := testTrip()
	stale.ID = "trip-old"
	require.NoError(t, index.IndexTrip(stale))

	require.NoError(t, index.RebuildAll([]domain.Trip{*testTrip()}))

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)

	params := DefaultSearchParams()
	params.Types = []string{"trip"}
	result, err := index.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "trip-paris", result.Hits[0].ID)
}

func TestTripDocIDs(t *testing.T) {
	trip := testTrip()
	ids := TripDocIDs(trip)
	assert.Equal(t, []string{
		"trip-paris",
		"trip-paris/act-1",
		"trip-paris/act-2",
		"trip-paris/act-3",
	}, ids)
}
