package models

// NutritionGoals holds the user's daily nutrient-intake targets.
type NutritionGoals struct {
	Calories int `json:"calories"` // e.g. 2200 kcal
	Protein  int `json:"protein"`  // e.g. 150 g
	Carbs    int `json:"carbs"`    // e.g. 250 g
	Fat      int `json:"fat"`      // e.g. 70 g
}

type UserData struct {
	Name              string         `json:"name"`
	Age               int            `json:"age"`
	Height            float64        `json:"height"` // cm
	Weight            float64        `json:"weight"` // kg
	Gender            string         `json:"gender"` // "male" | "female"
	ActivityLevel     string         `json:"activityLevel"`
	Goal              string         `json:"goal"` // "cut" | "maintain" | "bulk"
	NutritionGoals    NutritionGoals `json:"nutritionGoals"`
	CalculationMethod string         `json:"calculationMethod"` // "mifflin" | "nippard"
	AvatarURI         string         `json:"avatarUri,omitempty"`
	BodyFat           string         `json:"bodyFat,omitempty"` // e.g. "14.2"
}

// MeasurementSnapshot is one full set of skinfold and tape measurements.
type MeasurementSnapshot struct {
	Date         string             `json:"date"`
	BodyFat      string             `json:"bodyFat"`
	Measurements map[string]float64 `json:"measurements"`
}

// BodyMeasurements keeps a before/after pair for progress comparison.
type BodyMeasurements struct {
	Before *MeasurementSnapshot `json:"before"`
	After  *MeasurementSnapshot `json:"after"`
}
