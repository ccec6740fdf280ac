package discovery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triploapp/triplo-server/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeResponse wraps the model's JSON text and grounding chunks in the
// generateContent envelope.
const fakeResponse = `{
  "candidates": [{
    "content": {
      "parts": [{
        "text": "[{\"name\":\"Le Petit Café\",\"description\":\"Cozy spot for breakfast.\",\"address\":\"12 Rue Cler, Paris\",\"category\":\"food\"},{\"name\":\"Musée d'Orsay\",\"description\":\"Impressionist masterpieces.\",\"address\":\"1 Rue de la Légion d'Honneur, Paris\",\"category\":\"attraction\"}]"
      }]
    },
    "groundingMetadata": {
      "groundingChunks": [
        {"web": {"uri": "https://example.com/cafe", "title": "Le Petit Café"}}
      ]
    }
  }]
}`

func TestSearchPlaces(t *testing.T) {
	var gotPath, gotKey, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fakeResponse))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview", srv.URL, testLogger())

	results, err := c.SearchPlaces(context.Background(), "best croissants", "Paris, France")
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotBody, "google_search")
	assert.Contains(t, gotBody, "application/json")
	assert.Contains(t, gotBody, "best croissants")
	assert.Contains(t, gotBody, "Paris, France")

	require.Len(t, results, 2)
	assert.Equal(t, "Le Petit Café", results[0].Name)
	assert.Equal(t, "food", results[0].Category)
	assert.Equal(t, "https://example.com/cafe", results[0].URL)
	// Only one grounding chunk, so the second result has no source URL.
	assert.Equal(t, "Musée d'Orsay", results[1].Name)
	assert.Empty(t, results[1].URL)
}

func TestSearchPlaces_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview", srv.URL, testLogger())

	results, err := c.SearchPlaces(context.Background(), "anything", "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchPlaces_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview", srv.URL, testLogger())

	_, err := c.SearchPlaces(context.Background(), "anything", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestSearchPlaces_MalformedResultText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "not json"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview", srv.URL, testLogger())

	_, err := c.SearchPlaces(context.Background(), "anything", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse results")
}

func TestSearchPlaces_CapsResults(t *testing.T) {
	// Model occasionally over-delivers, keep only the first five.
	var items []string
	for range 8 {
		items = append(items, `{\"name\":\"Place\",\"description\":\"d\",\"address\":\"a\",\"category\":\"attraction\"}`)
	}
	text := `[` + strings.Join(items, ",") + `]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "` + text + `"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview", srv.URL, testLogger())

	results, err := c.SearchPlaces(context.Background(), "anything", "Anywhere")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewClient("key", "m", "", testLogger()).Enabled())
	assert.False(t, NewClient("", "m", "", testLogger()).Enabled())
}

func TestToActivity(t *testing.T) {
	p := PlaceResult{
		Name:        "Le Petit Café",
		Description: "Cozy spot for breakfast.",
		Address:     "12 Rue Cler, Paris",
		Category:    "food",
		URL:         "https://example.com/cafe",
	}

	act := ToActivity(p)
	assert.True(t, strings.HasPrefix(act.ID, "act-"))
	assert.Equal(t, "Le Petit Café", act.Name)
	assert.Equal(t, domain.CategoryFood, act.Category)
	assert.Equal(t, "10:00", act.Time)
	assert.Equal(t, "12 Rue Cler, Paris", act.Address)
	assert.Equal(t, "Cozy spot for breakfast.", act.Notes)
	assert.Zero(t, act.EstimatedCost)
	assert.Zero(t, act.ActualCost)
	assert.False(t, act.Completed)
}

func TestToActivity_UnknownCategory(t *testing.T) {
	act := ToActivity(PlaceResult{Name: "Mystery", Category: "nightlife"})
	assert.Equal(t, domain.CategoryCustom, act.Category)
}
