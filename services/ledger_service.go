package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

// maxMealCalories bounds a single custom entry.
const maxMealCalories = 2000

// DateKey formats t as the local calendar date used for history keys.
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// LedgerService owns "today": the single mutable day of meals. Every
// public operation takes the mutex, so adds, removals and the rollover
// never interleave even though the underlying store calls can suspend.
type LedgerService struct {
	store   storage.Store
	history *HistoryService
	hub     *RealtimeHub // optional
	log     *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	meals  models.DailyMeals
	totals models.DailyTotals
	date   string // calendar date the in-memory day belongs to
}

func NewLedgerService(store storage.Store, history *HistoryService, hub *RealtimeHub, log *zap.Logger) *LedgerService {
	return &LedgerService{
		store:   store,
		history: history,
		hub:     hub,
		log:     log,
		now:     time.Now,
		meals:   models.NewDailyMeals(),
	}
}

// LoadToday restores the persisted snapshot, or starts a fresh day with
// all six slots empty when none exists.
func (s *LedgerService) LoadToday(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meals models.DailyMeals
	err := storage.GetJSON(ctx, s.store, storage.KeyTodaysMeals, &meals)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		meals = models.NewDailyMeals()
	case err != nil:
		return fmt.Errorf("%w: load today's meals: %v", ErrPersistence, err)
	}
	s.meals = meals
	s.totals = ComputeTotals(meals)

	var date string
	err = storage.GetJSON(ctx, s.store, storage.KeyLastActiveDate, &date)
	if err != nil || date == "" {
		date = DateKey(s.now())
		if err := storage.SetJSON(ctx, s.store, storage.KeyLastActiveDate, date); err != nil {
			s.log.Warn("failed to persist active date", zap.Error(err))
		}
	}
	s.date = date
	return nil
}

// AddMeal appends meal to the slot's list. The record is validated before
// any state changes; nothing is partially applied.
func (s *LedgerService) AddMeal(ctx context.Context, slot models.Slot, meal models.MealRecord) error {
	if err := ValidateMeal(meal); err != nil {
		return err
	}
	if !models.ValidSlot(slot) {
		return fmt.Errorf("%w: unknown slot %q", ErrValidation, slot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals[slot] = append(s.meals[slot], meal)
	s.totals = ComputeTotals(s.meals)
	return s.persistLocked(ctx)
}

// RemoveMeal deletes the record at index from the slot. An absent slot or
// out-of-range index is a defined no-op, not an error.
func (s *LedgerService) RemoveMeal(ctx context.Context, slot models.Slot, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.meals[slot]
	if !ok || index < 0 || index >= len(list) {
		return nil
	}
	s.meals[slot] = append(list[:index], list[index+1:]...)
	s.totals = ComputeTotals(s.meals)
	return s.persistLocked(ctx)
}

// Meals returns a copy of the current day.
func (s *LedgerService) Meals() models.DailyMeals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meals.Clone()
}

func (s *LedgerService) Totals() models.DailyTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// CurrentDate is the calendar date the in-memory day belongs to. It lags
// the wall clock between a missed midnight and the catch-up archive.
func (s *LedgerService) CurrentDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// ArchiveAndReset writes the final history entry for the ledger's current
// date, then — only once the archive is persisted — clears the day and
// moves the ledger to today. If the archive write fails the reset does not
// proceed and the day's state is retained.
func (s *LedgerService) ArchiveAndReset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	archived := s.date
	entry := models.HistoryEntry{
		Date:   archived,
		Meals:  s.meals.Clone(),
		Totals: s.totals,
	}
	if err := s.history.Upsert(ctx, archived, entry); err != nil {
		s.log.Error("archive failed, retaining current day", zap.String("date", archived), zap.Error(err))
		return err
	}

	s.meals = models.NewDailyMeals()
	s.totals = models.DailyTotals{}
	s.date = DateKey(s.now())

	var firstErr error
	if err := s.store.Remove(ctx, storage.KeyTodaysMeals); err != nil {
		firstErr = fmt.Errorf("%w: clear today's meals: %v", ErrPersistence, err)
	}
	if err := storage.SetJSON(ctx, s.store, storage.KeyLastActiveDate, s.date); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("%w: persist active date: %v", ErrPersistence, err)
	}
	if firstErr != nil {
		s.log.Error("post-archive reset write failed", zap.Error(firstErr))
	}

	s.broadcast("day.archived", map[string]any{"date": archived, "totals": entry.Totals})
	return firstErr
}

// persistLocked writes the snapshot and upserts today's history entry so
// the archive always reflects the in-progress day. Callers hold the mutex.
// On failure the in-memory state keeps the change and the error is
// surfaced for retry.
func (s *LedgerService) persistLocked(ctx context.Context) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyTodaysMeals, s.meals); err != nil {
		s.log.Error("failed to persist today's meals", zap.Error(err))
		return fmt.Errorf("%w: save today's meals: %v", ErrPersistence, err)
	}

	entry := models.HistoryEntry{Date: s.date, Meals: s.meals.Clone(), Totals: s.totals}
	if err := s.history.Upsert(ctx, s.date, entry); err != nil {
		return err
	}

	s.broadcast("totals.updated", map[string]any{"date": s.date, "totals": s.totals})
	return nil
}

func (s *LedgerService) broadcast(kind string, payload map[string]any) {
	if s.hub == nil {
		return
	}
	payload["kind"] = kind
	s.hub.Broadcast(payload)
}

// ComputeTotals is the single pure fold over a day's meals. Missing slots
// contribute nothing; it is deterministic and side-effect free.
func ComputeTotals(meals models.DailyMeals) models.DailyTotals {
	var t models.DailyTotals
	for _, list := range meals {
		for _, m := range list {
			t.Calories += m.Calories
			t.Protein += m.Protein
			t.Carbs += m.Carbs
			t.Fat += m.Fat
		}
	}
	return t
}

// ValidateMeal rejects structurally invalid records before they touch any
// state: a name is required, macros must be non-negative, and a single
// entry cannot claim more than maxMealCalories.
func ValidateMeal(m models.MealRecord) error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return fmt.Errorf("%w: calories and macros must be non-negative", ErrValidation)
	}
	if m.Calories > maxMealCalories {
		return fmt.Errorf("%w: calories must not exceed %d", ErrValidation, maxMealCalories)
	}
	return nil
}
