package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

// HistoryService persists the date-keyed archive of finished (and the one
// in-progress) day. The whole mapping is stored as a single document, so
// every upsert is a read-modify-write; that is not atomic across writers
// and relies on the single-writer assumption (one service instance).
type HistoryService struct {
	store storage.Store
	log   *zap.Logger
}

func NewHistoryService(store storage.Store, log *zap.Logger) *HistoryService {
	return &HistoryService{store: store, log: log}
}

// All returns the full archive, empty if nothing was ever written.
func (s *HistoryService) All(ctx context.Context) (models.MealHistory, error) {
	var hist models.MealHistory
	err := storage.GetJSON(ctx, s.store, storage.KeyMealHistory, &hist)
	if errors.Is(err, storage.ErrNotFound) {
		return models.MealHistory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load history: %v", ErrPersistence, err)
	}
	if hist == nil {
		hist = models.MealHistory{}
	}
	return hist, nil
}

// Get returns the entry for date, or a zero-valued default (nil meals,
// zero totals) when the date was never archived.
func (s *HistoryService) Get(ctx context.Context, date string) (models.HistoryEntry, error) {
	hist, err := s.All(ctx)
	if err != nil {
		return models.HistoryEntry{}, err
	}
	if entry, ok := hist[date]; ok {
		return entry, nil
	}
	return models.HistoryEntry{Date: date}, nil
}

// Upsert writes entry at date, overwriting any previous value. Past dates
// are only ever rewritten through this path for the in-progress day; the
// archive is append-only in practice.
func (s *HistoryService) Upsert(ctx context.Context, date string, entry models.HistoryEntry) error {
	hist, err := s.All(ctx)
	if err != nil {
		return err
	}
	entry.Date = date
	hist[date] = entry
	if err := storage.SetJSON(ctx, s.store, storage.KeyMealHistory, hist); err != nil {
		s.log.Error("failed to persist history", zap.String("date", date), zap.Error(err))
		return fmt.Errorf("%w: save history: %v", ErrPersistence, err)
	}
	return nil
}

// Clear drops the whole archive.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.KeyMealHistory); err != nil {
		return fmt.Errorf("%w: clear history: %v", ErrPersistence, err)
	}
	return nil
}
