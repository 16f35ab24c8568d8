package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
)

const defaultNutritionixBaseURL = "https://trackapi.nutritionix.com/v2"

var (
	quantityRe = regexp.MustCompile(`\d+`)
	unitRe     = regexp.MustCompile(`(?i)\b(g|oz|ml)\b`)
)

// NutritionService looks up foods through the Nutritionix API: an instant
// search for candidates, then a nutrients request per candidate. It is
// best-effort with no retries; a failed candidate is simply dropped.
type NutritionService struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewNutritionService(appID, appKey string, log *zap.Logger) *NutritionService {
	return &NutritionService{
		appID:   appID,
		appKey:  appKey,
		baseURL: defaultNutritionixBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NewNutritionServiceWithBaseURL points the client at a different host;
// used by tests.
func NewNutritionServiceWithBaseURL(appID, appKey, baseURL string, log *zap.Logger) *NutritionService {
	s := NewNutritionService(appID, appKey, log)
	s.baseURL = baseURL
	return s
}

type instantSearchResponse struct {
	Common []struct {
		FoodName string `json:"food_name"`
	} `json:"common"`
	Branded []struct {
		FoodName string `json:"food_name"`
	} `json:"branded"`
}

type nutrientsResponse struct {
	Foods []struct {
		FoodName    string  `json:"food_name"`
		ServingQty  float64 `json:"serving_qty"`
		ServingUnit string  `json:"serving_unit"`
		Calories    float64 `json:"nf_calories"`
		Protein     float64 `json:"nf_protein"`
		Carbs       float64 `json:"nf_total_carbohydrate"`
		Fat         float64 `json:"nf_total_fat"`
	} `json:"foods"`
}

// Search returns up to 5 candidates for a free-text query. Quantity and
// unit are parsed from the query itself, defaulting to 100 g.
func (s *NutritionService) Search(ctx context.Context, query string) ([]models.FoodCandidate, error) {
	u := fmt.Sprintf("%s/search/instant?query=%s", s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr instantSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search JSON: %w", err)
	}

	names := make([]string, 0, 5)
	for _, f := range sr.Common {
		names = append(names, f.FoodName)
	}
	for _, f := range sr.Branded {
		names = append(names, f.FoodName)
	}
	if len(names) > 5 {
		names = names[:5]
	}

	quantity := "100"
	if m := quantityRe.FindString(query); m != "" {
		quantity = m
	}
	unit := "g"
	if m := unitRe.FindString(query); m != "" {
		unit = m
	}

	results := make([]models.FoodCandidate, 0, len(names))
	for _, name := range names {
		cand, err := s.nutrients(ctx, fmt.Sprintf("%s%s %s", quantity, unit, name))
		if err != nil {
			s.log.Warn("nutrients lookup failed", zap.String("food", name), zap.Error(err))
			continue
		}
		results = append(results, cand)
	}
	return results, nil
}

func (s *NutritionService) nutrients(ctx context.Context, query string) (models.FoodCandidate, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return models.FoodCandidate{}, fmt.Errorf("failed to marshal nutrients payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/natural/nutrients", bytes.NewReader(payload))
	if err != nil {
		return models.FoodCandidate{}, fmt.Errorf("failed to create nutrients request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return models.FoodCandidate{}, fmt.Errorf("failed to call nutrients API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FoodCandidate{}, fmt.Errorf("failed to read nutrients response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.FoodCandidate{}, fmt.Errorf("nutrients API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return models.FoodCandidate{}, fmt.Errorf("failed to parse nutrients JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return models.FoodCandidate{}, fmt.Errorf("no nutrient data for %q", query)
	}

	f := nr.Foods[0]
	return models.FoodCandidate{
		ServingQty:  f.ServingQty,
		ServingUnit: f.ServingUnit,
		FoodName:    f.FoodName,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.Carbs,
		Fat:         f.Fat,
	}, nil
}

func (s *NutritionService) setHeaders(req *http.Request) {
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)
}
