package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	log := zap.NewNop()
	hub := services.NewRealtimeHub()
	history := services.NewHistoryService(store, log)
	profile := services.NewProfileService(store, log)
	ledger := services.NewLedgerService(store, history, hub, log)
	require.NoError(t, ledger.LoadToday(context.Background()))

	return SetupRouter(Deps{
		Log:       log,
		Ledger:    ledger,
		History:   history,
		Stats:     services.NewStatsService(history, profile, log),
		Catalog:   services.NewCatalogService(store, log),
		Profile:   profile,
		Nutrition: services.NewNutritionService("", "", log),
		Hub:       hub,
	})
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("empty day", func(t *testing.T) {
		w := do(r, http.MethodGet, "/plan/today", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Meals  map[string][]any `json:"meals"`
			Totals struct {
				Calories int `json:"calories"`
			} `json:"totals"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Meals, 6)
		assert.Zero(t, body.Totals.Calories)
	})

	t.Run("add then remove", func(t *testing.T) {
		w := do(r, http.MethodPost, "/plan/meals/Meal%201", `{"name":"Chicken Wrap","calories":340,"protein":38,"carbs":18,"fat":9}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(r, http.MethodDelete, "/plan/meals/Meal%201/0", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Totals struct {
				Calories int `json:"calories"`
			} `json:"totals"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Zero(t, body.Totals.Calories)
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		w := do(r, http.MethodPost, "/plan/meals/Meal%201", `{"name":"","calories":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, http.MethodPost, "/plan/meals/Meal%201", `{"name":"Feast","calories":2500}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, http.MethodPost, "/plan/meals/Meal%209", `{"name":"Snack","calories":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric index is 400", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/plan/meals/Meal%201/first", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHistoryEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("malformed date is 400", func(t *testing.T) {
		w := do(r, http.MethodGet, "/history/yesterday", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unarchived date returns zero default", func(t *testing.T) {
		w := do(r, http.MethodGet, "/history/2025-01-01", "")
		require.Equal(t, http.StatusOK, w.Code)

		var entry struct {
			Date string `json:"date"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "2025-01-01", entry.Date)
	})

	t.Run("clear", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/history", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("no profile is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/profile", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("save computes goals", func(t *testing.T) {
		w := do(r, http.MethodPut, "/profile",
			`{"name":"Tester","age":30,"height":180,"weight":80,"gender":"male","activityLevel":"moderate","goal":"maintain"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var user struct {
			NutritionGoals struct {
				Calories int `json:"calories"`
			} `json:"nutritionGoals"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, 2759, user.NutritionGoals.Calories)
	})

	t.Run("invalid gender is 400", func(t *testing.T) {
		w := do(r, http.MethodPut, "/profile",
			`{"name":"Tester","age":30,"height":180,"weight":80,"gender":"other","activityLevel":"moderate","goal":"maintain"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("seeded catalog", func(t *testing.T) {
		w := do(r, http.MethodGet, "/catalog", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Breakfast")
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		w := do(r, http.MethodPost, "/catalog/Desserts/meals", `{"name":"Cake","calories":400}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/stats/weekly", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		AdherencePct int `json:"adherencePct"`
		Streak       int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Zero(t, out.AdherencePct)
	assert.Zero(t, out.Streak)
}
