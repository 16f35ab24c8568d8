package models

// FoodCandidate is one lookup result from the nutrition provider.
type FoodCandidate struct {
	ServingQty  float64 `json:"servingQty"`
	ServingUnit string  `json:"servingUnit"`
	FoodName    string  `json:"foodName"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}
