package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/triploapp/triplo-server/internal/errors"
	"github.com/triploapp/triplo-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search trips and activities",
		Description: "Full-text search across trip destinations and itinerary activities",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for searching trips and activities.
type SearchInput struct {
	Query      string `query:"q" validate:"required,min=1,max=200" doc:"Search query"`
	Types      string `query:"types" validate:"omitempty,max=100" doc:"Comma-separated types to search (trip,activity). Omit for all."`
	Categories string `query:"categories" validate:"omitempty,max=100" doc:"Comma-separated activity categories to filter by"`
	TripID     string `query:"trip_id" validate:"omitempty,max=100" doc:"Scope results to one trip"`
	Limit      int    `query:"limit" validate:"omitempty,gte=1,lte=100" doc:"Max results (default 20)"`
	Offset     int    `query:"offset" validate:"omitempty,gte=0" doc:"Pagination offset (default 0)"`
}

// SearchHitResult contains a single search result (trip or activity).
type SearchHitResult struct {
	ID          string            `json:"id" doc:"Document ID"`
	Type        string            `json:"type" doc:"Type: trip or activity"`
	Score       float64           `json:"score" doc:"Search relevance score"`
	Name        string            `json:"name" doc:"Display name (destination for trips)"`
	Destination string            `json:"destination,omitempty" doc:"Parent trip destination (for activities)"`
	Address     string            `json:"address,omitempty" doc:"Activity address"`
	Category    string            `json:"category,omitempty" doc:"Activity category"`
	TripID      string            `json:"trip_id,omitempty" doc:"Parent trip ID (for activities)"`
	Date        string            `json:"date,omitempty" doc:"Scheduled day (for activities)"`
	Highlights  map[string]string `json:"highlights,omitempty" doc:"Highlighted matches"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Query  string            `json:"query" doc:"Original search query"`
	Total  int64             `json:"total" doc:"Total matches"`
	TookMs int64             `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResult `json:"hits" doc:"Search results"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, domainerrors.Validation("search query is required")
	}

	params := search.DefaultSearchParams()
	params.Query = input.Query
	params.TripID = input.TripID
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	params.Offset = input.Offset

	for t := range strings.SplitSeq(input.Types, ",") {
		switch strings.TrimSpace(t) {
		case "trip":
			params.Types = append(params.Types, string(search.DocTypeTrip))
		case "activity":
			params.Types = append(params.Types, string(search.DocTypeActivity))
		}
	}

	for c := range strings.SplitSeq(input.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			params.Categories = append(params.Categories, c)
		}
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		s.logger.Error("search failed", "error", err, "query", input.Query)
		return nil, err
	}

	resp := SearchResponse{
		Query:  input.Query,
		Total:  int64(result.Total), //nolint:gosec // Safe: total count won't exceed int64
		TookMs: result.TookMs,
		Hits:   make([]SearchHitResult, 0, len(result.Hits)),
	}

	for i := range result.Hits {
		hit := &result.Hits[i]
		resp.Hits = append(resp.Hits, SearchHitResult{
			ID:          hit.ID,
			Type:        string(hit.Type),
			Score:       hit.Score,
			Name:        hit.Name,
			Destination: hit.Destination,
			Address:     hit.Address,
			Category:    hit.Category,
			TripID:      hit.TripID,
			Date:        hit.Date,
			Highlights:  hit.Highlights,
		})
	}

	return &SearchOutput{Body: resp}, nil
}
