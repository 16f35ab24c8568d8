package services

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
)

// streakLookbackCap bounds the backward walk so a sparse history can never
// turn into an unbounded loop.
const streakLookbackCap = 365

// StatsService derives goal adherence, streaks and rolling averages from
// the archive. It never mutates history.
type StatsService struct {
	history *HistoryService
	profile *ProfileService
	log     *zap.Logger
	now     func() time.Time
}

func NewStatsService(history *HistoryService, profile *ProfileService, log *zap.Logger) *StatsService {
	return &StatsService{history: history, profile: profile, log: log, now: time.Now}
}

// IsInRange classifies a day's totals against the goals. The bands are
// asymmetric on purpose: calories tolerate undercounting (-300) more than
// overcounting (+100), protein the inverse (-40/+20).
func IsInRange(totals models.DailyTotals, goals models.NutritionGoals) bool {
	caloriesInRange := totals.Calories >= goals.Calories-300 &&
		totals.Calories <= goals.Calories+100
	proteinInRange := totals.Protein >= goals.Protein-40 &&
		totals.Protein <= goals.Protein+20
	return caloriesInRange && proteinInRange
}

// Streak counts consecutive in-range days walking back from yesterday.
// Today is excluded because it is still in progress. The first missing or
// out-of-range day breaks the streak; days are never skipped.
func (s *StatsService) Streak(ctx context.Context) (int, error) {
	goals, hasGoals, err := s.goals(ctx)
	if err != nil {
		return 0, err
	}
	if !hasGoals {
		return 0, nil
	}
	hist, err := s.history.All(ctx)
	if err != nil {
		return 0, err
	}

	today := s.now()
	streak := 0
	for i := 1; i <= streakLookbackCap; i++ {
		key := DateKey(today.AddDate(0, 0, -i))
		entry, ok := hist[key]
		if !ok || !IsInRange(entry.Totals, goals) {
			break
		}
		streak++
	}
	return streak, nil
}

// WeeklyAverage is the mean of the metric over the last 7 calendar days
// (today-6 … today). Missing days count as zero — the average is diluted
// rather than computed over present days only; the client relies on that.
func (s *StatsService) WeeklyAverage(ctx context.Context, metric string) (int, error) {
	hist, err := s.history.All(ctx)
	if err != nil {
		return 0, err
	}

	today := s.now()
	sum := 0
	for i := 0; i < 7; i++ {
		key := DateKey(today.AddDate(0, 0, -i))
		sum += hist[key].Totals.Metric(metric)
	}
	return int(math.Round(float64(sum) / 7)), nil
}

// AdherencePercentage is the share of the last 7 days whose archived
// totals hit the goal bands, rounded to a whole percent.
func (s *StatsService) AdherencePercentage(ctx context.Context) (int, error) {
	goals, hasGoals, err := s.goals(ctx)
	if err != nil {
		return 0, err
	}
	if !hasGoals {
		return 0, nil
	}
	hist, err := s.history.All(ctx)
	if err != nil {
		return 0, err
	}

	today := s.now()
	inRange := 0
	for i := 0; i < 7; i++ {
		key := DateKey(today.AddDate(0, 0, -i))
		if entry, ok := hist[key]; ok && IsInRange(entry.Totals, goals) {
			inRange++
		}
	}
	return int(math.Round(float64(inRange) / 7 * 100)), nil
}

// WeeklyOverview bundles the stats card the client renders in one call.
type WeeklyOverview struct {
	AvgCalories  int `json:"avgCalories"`
	AvgProtein   int `json:"avgProtein"`
	AvgCarbs     int `json:"avgCarbs"`
	AvgFat       int `json:"avgFat"`
	AdherencePct int `json:"adherencePct"`
	Streak       int `json:"streak"`
}

func (s *StatsService) WeeklyOverview(ctx context.Context) (*WeeklyOverview, error) {
	out := &WeeklyOverview{}
	var err error
	for metric, dst := range map[string]*int{
		"calories": &out.AvgCalories,
		"protein":  &out.AvgProtein,
		"carbs":    &out.AvgCarbs,
		"fat":      &out.AvgFat,
	} {
		if *dst, err = s.WeeklyAverage(ctx, metric); err != nil {
			return nil, err
		}
	}
	if out.AdherencePct, err = s.AdherencePercentage(ctx); err != nil {
		return nil, err
	}
	if out.Streak, err = s.Streak(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// goals reads the profile targets. No profile saved yet means no day can
// be in range; that is reported via the bool, not as an error.
func (s *StatsService) goals(ctx context.Context) (models.NutritionGoals, bool, error) {
	user, err := s.profile.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return models.NutritionGoals{}, false, nil
	}
	if err != nil {
		return models.NutritionGoals{}, false, err
	}
	return user.NutritionGoals, true, nil
}
