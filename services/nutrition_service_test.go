package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newNutritionixStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/search/instant", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-id", r.Header.Get("x-app-id"))
		assert.Equal(t, "test-key", r.Header.Get("x-app-key"))
		json.NewEncoder(w).Encode(map[string]any{
			"common": []map[string]any{
				{"food_name": "chicken breast"},
				{"food_name": "chicken thigh"},
			},
			"branded": []map[string]any{
				{"food_name": "brand chicken strips"},
			},
		})
	})

	mux.HandleFunc("/natural/nutrients", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// One candidate has no nutrient data and must be skipped.
		if req.Query == "150g chicken thigh" {
			json.NewEncoder(w).Encode(map[string]any{"foods": []any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"foods": []map[string]any{{
				"food_name":             req.Query,
				"serving_qty":           150.0,
				"serving_unit":          "g",
				"nf_calories":           247.5,
				"nf_protein":            46.5,
				"nf_total_carbohydrate": 0.0,
				"nf_total_fat":          5.4,
			}},
		})
	})

	return httptest.NewServer(mux)
}

func TestNutritionSearch(t *testing.T) {
	srv := newNutritionixStub(t)
	defer srv.Close()
	svc := NewNutritionServiceWithBaseURL("test-id", "test-key", srv.URL, zap.NewNop())

	t.Run("quantity and unit parsed from the query", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "150g chicken")
		require.NoError(t, err)

		// Three names found, one skipped for missing nutrient data.
		require.Len(t, results, 2)
		assert.Equal(t, "150g chicken breast", results[0].FoodName)
		assert.Equal(t, 247.5, results[0].Calories)
		assert.Equal(t, 46.5, results[0].Protein)
	})

	t.Run("defaults to 100g when the query has no quantity", func(t *testing.T) {
		seen := ""
		one := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/search/instant":
				json.NewEncoder(w).Encode(map[string]any{
					"common": []map[string]any{{"food_name": "salmon"}},
				})
			case "/natural/nutrients":
				var req struct {
					Query string `json:"query"`
				}
				json.NewDecoder(r.Body).Decode(&req)
				seen = req.Query
				json.NewEncoder(w).Encode(map[string]any{
					"foods": []map[string]any{{"food_name": "salmon", "serving_qty": 100.0, "serving_unit": "g"}},
				})
			}
		}))
		defer one.Close()

		svc := NewNutritionServiceWithBaseURL("test-id", "test-key", one.URL, zap.NewNop())
		_, err := svc.Search(context.Background(), "salmon")
		require.NoError(t, err)
		assert.Equal(t, "100g salmon", seen)
	})

	t.Run("upstream error surfaces", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, fmt.Sprintf("%d", http.StatusUnauthorized), http.StatusUnauthorized)
		}))
		defer bad.Close()

		svc := NewNutritionServiceWithBaseURL("bad-id", "bad-key", bad.URL, zap.NewNop())
		_, err := svc.Search(context.Background(), "anything")
		assert.Error(t, err)
	})
}
