// Package store persists the trip collection to a local Badger database.
//
// The whole collection is one JSON blob under a single key: every mutation
// anywhere in the system re-serializes all trips (full-replace persistence,
// no partial or transactional writes). The volume — a handful of trips with
// a handful of activities each — makes anything finer-grained pointless.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/triploapp/triplo-server/internal/domain"
)

// tripsKey is the single key holding the serialized trip collection.
var tripsKey = []byte("trips")

// Store wraps a Badger database instance holding the trip collection.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens (or creates) the trip database at the given path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Persistence must complete before the triggering mutation returns
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("trip database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing trip database")
	}
	return s.db.Close()
}

// Load reads the full trip collection.
//
// A missing key yields an empty collection. A malformed blob is logged and
// also yields an empty collection — corrupt local data is treated as "no
// data", never as a fatal error, so the error return covers only real
// database failures.
func (s *Store) Load(_ context.Context) ([]domain.Trip, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tripsKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw[:0], val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return []domain.Trip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		if s.logger != nil {
			s.logger.Warn("stored trip data is malformed, starting with empty collection",
				"error", err,
				"bytes", len(raw),
			)
		}
		return []domain.Trip{}, nil
	}
	if trips == nil {
		trips = []domain.Trip{}
	}

	return trips, nil
}

// Save serializes the full collection and overwrites the stored blob
// unconditionally.
func (s *Store) Save(_ context.Context, trips []domain.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal trips: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tripsKey, data)
	})
	if err != nil {
		return fmt.Errorf("save trips: %w", err)
	}

	return nil
}
