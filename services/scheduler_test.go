package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

func TestSchedulerCatchUp(t *testing.T) {
	ctx := context.Background()

	t.Run("archives the suspended day on start", func(t *testing.T) {
		store := storage.NewMemoryStore()
		ledger, history := newTestLedger(t, store)
		require.NoError(t, ledger.AddMeal(ctx, models.Meal1, sampleMeal()))

		// Process resumes two days later.
		ledger.now = fixedClock("2025-09-02")
		sched := NewRolloverScheduler(ledger, zap.NewNop())
		sched.now = fixedClock("2025-09-02")
		require.NoError(t, sched.Start(ctx))
		defer sched.Stop()

		// Exactly one archive, under the last active date.
		hist, err := history.All(ctx)
		require.NoError(t, err)
		require.Len(t, hist, 1)
		assert.Equal(t, 550, hist["2025-08-31"].Totals.Calories)

		// Skipped calendar days get no backfilled entries.
		_, ok := hist["2025-09-01"]
		assert.False(t, ok)

		assert.Equal(t, "2025-09-02", ledger.CurrentDate())
		assert.Equal(t, models.DailyTotals{}, ledger.Totals())
	})

	t.Run("same-day start is a no-op", func(t *testing.T) {
		store := storage.NewMemoryStore()
		ledger, history := newTestLedger(t, store)
		require.NoError(t, ledger.AddMeal(ctx, models.Meal1, sampleMeal()))
		before, err := history.All(ctx)
		require.NoError(t, err)

		sched := NewRolloverScheduler(ledger, zap.NewNop())
		sched.now = fixedClock("2025-08-31")
		require.NoError(t, sched.Start(ctx))
		defer sched.Stop()

		after, err := history.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, 550, ledger.Totals().Calories)
	})

	t.Run("restart does not duplicate the schedule", func(t *testing.T) {
		ledger, _ := newTestLedger(t, storage.NewMemoryStore())
		sched := NewRolloverScheduler(ledger, zap.NewNop())
		sched.now = fixedClock("2025-08-31")

		require.NoError(t, sched.Start(ctx))
		require.NoError(t, sched.Start(ctx))
		sched.Stop()
		assert.False(t, sched.started)
	})

	t.Run("failed catch-up archive keeps the old day", func(t *testing.T) {
		mem := storage.NewMemoryStore()
		ledger, _ := newTestLedger(t, mem)
		require.NoError(t, ledger.AddMeal(ctx, models.Meal1, sampleMeal()))

		ledger.history = NewHistoryService(&flakyStore{Store: mem, failSet: map[string]bool{storage.KeyMealHistory: true}}, zap.NewNop())
		ledger.now = fixedClock("2025-09-01")

		sched := NewRolloverScheduler(ledger, zap.NewNop())
		sched.now = fixedClock("2025-09-01")
		err := sched.Start(ctx)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Equal(t, "2025-08-31", ledger.CurrentDate())
	})
}
