// Package service implements the application's use cases on top of the
// store, search index, and discovery client.
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/triploapp/triplo-server/internal/avatar"
	"github.com/triploapp/triplo-server/internal/domain"
	domainerrors "github.com/triploapp/triplo-server/internal/errors"
	"github.com/triploapp/triplo-server/internal/id"
	"github.com/triploapp/triplo-server/internal/store"
	"github.com/triploapp/triplo-server/internal/validation"
)

// validate is shared by all services in this package.
var validate = validation.New()

const (
	// shareCodeLength is the number of characters in a trip share code.
	shareCodeLength = 6
	// shareCodeCharset matches codes travelers read out loud, so no
	// lowercase and no ambiguous punctuation.
	shareCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TripIndexer receives best-effort notifications when trips change so the
// search index can follow the store. Implementations must never block for
// long and must swallow their own errors.
type TripIndexer interface {
	IndexTrip(trip *domain.Trip)
	RemoveTrip(trip *domain.Trip)
}

// TripService owns the trip collection. The whole collection lives in
// memory, guarded by a mutex, and is re-persisted as one blob after every
// mutation.
type TripService struct {
	store     *store.Store
	indexer   TripIndexer // optional
	logger    *slog.Logger
	publicURL string

	mu     sync.Mutex
	loaded bool
	trips  []domain.Trip
}

// NewTripService creates a trip service. The indexer may be nil.
func NewTripService(store *store.Store, indexer TripIndexer, logger *slog.Logger, publicURL string) *TripService {
	return &TripService{
		store:     store,
		indexer:   indexer,
		logger:    logger,
		publicURL: publicURL,
	}
}

// CreateTripRequest contains the data needed to create a trip.
type CreateTripRequest struct {
	Destination string  `json:"destination" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Travelers   int     `json:"travelers" validate:"required,gte=1"`
	TotalBudget float64 `json:"total_budget,omitempty" validate:"gte=0"`
	CoverImage  string  `json:"cover_image,omitempty" validate:"omitempty,url"`
}

// UpdateTripRequest replaces a trip's top-level fields. The itinerary is
// never re-derived from changed dates; days are edited explicitly.
type UpdateTripRequest struct {
	Destination string  `json:"destination" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Travelers   int     `json:"travelers" validate:"required,gte=1"`
	TotalBudget float64 `json:"total_budget,omitempty" validate:"gte=0"`
	CoverImage  string  `json:"cover_image,omitempty" validate:"omitempty,url"`
}

// Load reads the persisted collection into memory. Called once at startup;
// individual operations also load lazily so tests can skip the warm-up.
func (s *TripService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked(ctx)
}

func (s *TripService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	trips, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load trips: %w", err)
	}
	s.trips = trips
	s.loaded = true
	return nil
}

// persistLocked saves the replacement collection and commits it in memory
// only on success, so a failed write leaves the service unchanged.
func (s *TripService) persistLocked(ctx context.Context, next []domain.Trip) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save trips: %w", err)
	}
	s.trips = next
	return nil
}

func (s *TripService) findLocked(tripID string) int {
	for i := range s.trips {
		if s.trips[i].ID == tripID {
			return i
		}
	}
	return -1
}

// snapshotLocked returns a copy of the collection slice with the trip at
// index i replaced by trip. The other elements are shared, which is safe
// because trips are never mutated in place.
func (s *TripService) snapshotLocked(i int, trip domain.Trip) []domain.Trip {
	next := make([]domain.Trip, len(s.trips))
	copy(next, s.trips)
	next[i] = trip
	return next
}

func (s *TripService) notifyIndexed(trip domain.Trip) {
	if s.indexer != nil {
		s.indexer.IndexTrip(&trip)
	}
}

func (s *TripService) notifyRemoved(trip domain.Trip) {
	if s.indexer != nil {
		s.indexer.RemoveTrip(&trip)
	}
}

// List returns all trips, newest first by creation time.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.Trip, 0, len(s.trips))
	for i := range s.trips {
		out = append(out, s.trips[i].Clone())
	}
	return out, nil
}

// Get returns one trip by ID.
func (s *TripService) Get(ctx context.Context, tripID string) (*domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	i := s.findLocked(tripID)
	if i < 0 {
		return nil, domainerrors.NotFound("trip not found")
	}
	trip := s.trips[i].Clone()
	return &trip, nil
}

// Create validates the request, expands the itinerary to one day plan per
// calendar day in the inclusive range, and persists the new trip with its
// default owner tripmate and share code.
func (s *TripService) Create(ctx context.Context, req CreateTripRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	if err := checkDateOrder(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	itinerary, err := domain.ExpandItinerary(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("expand itinerary: %w", err)
	}

	shareCode, err := generateShareCode()
	if err != nil {
		return nil, fmt.Errorf("generate share code: %w", err)
	}

	trip := domain.Trip{
		ID:             id.MustGenerate("trip"),
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Travelers:      req.Travelers,
		TotalBudget:    req.TotalBudget,
		Itinerary:      itinerary,
		Accommodations: []domain.Accommodation{},
		Tripmates:      []domain.Tripmate{defaultOwner()},
		ShareCode:      shareCode,
		CoverImage:     req.CoverImage,
	}
	trip.InitTimestamps()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	next := make([]domain.Trip, len(s.trips), len(s.trips)+1)
	copy(next, s.trips)
	next = append(next, trip)

	if err := s.persistLocked(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("trip created",
		"trip_id", trip.ID,
		"destination", trip.Destination,
		"days", trip.Days(),
	)

	s.notifyIndexed(trip)
	out := trip.Clone()
	return &out, nil
}

// Update replaces a trip's top-level fields. The itinerary, accommodations,
// tripmates, and share code are untouched.
func (s *TripService) Update(ctx context.Context, tripID string, req UpdateTripRequest) (*domain.Trip, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}
	if err := checkDateOrder(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	i := s.findLocked(tripID)
	if i < 0 {
		return nil, domainerrors.NotFound("trip not found")
	}

	old := s.trips[i]
	trip := old.Clone()
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Travelers = req.Travelers
	trip.TotalBudget = req.TotalBudget
	trip.CoverImage = req.CoverImage
	trip.Touch()

	if err := s.persistLocked(ctx, s.snapshotLocked(i, trip)); err != nil {
		return nil, err
	}

	s.logger.Info("trip updated", "trip_id", trip.ID)

	// Clear the old documents first in case activities were renamed away.
	s.notifyRemoved(old)
	s.notifyIndexed(trip)

	out := trip.Clone()
	return &out, nil
}

// Delete removes a trip. Deleting a trip that does not exist is a no-op,
// which keeps the operation idempotent for clients that retry.
func (s *TripService) Delete(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	i := s.findLocked(tripID)
	if i < 0 {
		return nil
	}

	old := s.trips[i]
	next := make([]domain.Trip, 0, len(s.trips)-1)
	next = append(next, s.trips[:i]...)
	next = append(next, s.trips[i+1:]...)

	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}

	s.logger.Info("trip deleted", "trip_id", tripID)

	s.notifyRemoved(old)
	return nil
}

// updateTrip is the shared mutation path: it locates the trip, lets mutate
// produce the replacement value, persists, and reindexes.
func (s *TripService) updateTrip(ctx context.Context, tripID string, mutate func(trip *domain.Trip) error) (*domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	i := s.findLocked(tripID)
	if i < 0 {
		return nil, domainerrors.NotFound("trip not found")
	}

	old := s.trips[i]
	trip := old.Clone()
	if err := mutate(&trip); err != nil {
		return nil, err
	}
	trip.Touch()

	if err := s.persistLocked(ctx, s.snapshotLocked(i, trip)); err != nil {
		return nil, err
	}

	s.notifyRemoved(old)
	s.notifyIndexed(trip)

	out := trip.Clone()
	return &out, nil
}

// checkDateOrder rejects ranges where the end precedes the start. Both
// inputs have already passed format validation.
func checkDateOrder(start, end string) error {
	startDay, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return domainerrors.Validation("start_date is not a valid date")
	}
	endDay, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return domainerrors.Validation("end_date is not a valid date")
	}
	if endDay.Before(startDay) {
		return domainerrors.ValidationWithDetails("validation failed", map[string]string{
			"end_date": "must be on or after start_date",
		})
	}
	return nil
}

// defaultOwner is the tripmate every new trip starts with.
func defaultOwner() domain.Tripmate {
	return domain.Tripmate{
		ID:     id.MustGenerate("mate"),
		Name:   "You (Organizer)",
		Email:  "organizer@triplo.com",
		Avatar: avatar.URL("Organizer"),
		Role:   domain.RoleOwner,
	}
}

// generateShareCode generates a cryptographically random share code.
func generateShareCode() (string, error) {
	b := make([]byte, shareCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	for i := range b {
		b[i] = shareCodeCharset[int(b[i])%len(shareCodeCharset)]
	}
	return string(b), nil
}
