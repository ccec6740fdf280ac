package service

import (
	"context"
	"log/slog"

	"github.com/triploapp/triplo-server/internal/domain"
	"github.com/triploapp/triplo-server/internal/search"
)

// SearchService bridges the search index with the trip collection. It
// implements TripIndexer so trip mutations keep the index current, and it
// swallows index errors: search is a convenience, never a reason to fail a
// write.
type SearchService struct {
	index  *search.SearchIndex
	logger *slog.Logger
}

// NewSearchService creates a search service.
func NewSearchService(index *search.SearchIndex, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		logger: logger,
	}
}

// Search executes a full-text query over trips and activities.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	return s.index.Search(ctx, params)
}

// IndexTrip indexes a trip and its activities. Part of TripIndexer.
func (s *SearchService) IndexTrip(trip *domain.Trip) {
	if err := s.index.IndexTrip(trip); err != nil {
		s.logger.Warn("failed to index trip",
			"trip_id", trip.ID,
			"error", err,
		)
	}
}

// RemoveTrip drops a trip's documents from the index. Part of TripIndexer.
func (s *SearchService) RemoveTrip(trip *domain.Trip) {
	if err := s.index.DeleteTrip(trip); err != nil {
		s.logger.Warn("failed to remove trip from index",
			"trip_id", trip.ID,
			"error", err,
		)
	}
}

// ReindexAll rebuilds the index from the full trip collection. Called at
// startup so the index always mirrors the store.
func (s *SearchService) ReindexAll(trips []domain.Trip) error {
	return s.index.RebuildAll(trips)
}

// DocumentCount returns the number of indexed documents.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}
