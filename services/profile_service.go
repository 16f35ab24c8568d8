package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/utils"
)

// ProfileService owns the user document: biometrics, computed nutrition
// goals and the before/after measurement pair.
type ProfileService struct {
	store storage.Store
	log   *zap.Logger
}

func NewProfileService(store storage.Store, log *zap.Logger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

// ProfileInput carries the editable profile fields. Goals are always
// recomputed on save, never accepted from the client.
type ProfileInput struct {
	Name              string  `json:"name" binding:"required"`
	Age               int     `json:"age" binding:"required,gt=0"`
	Height            float64 `json:"height" binding:"required,gt=0"`
	Weight            float64 `json:"weight" binding:"required,gt=0"`
	Gender            string  `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel     string  `json:"activityLevel" binding:"required,oneof=sedentary light moderate active veryActive"`
	Goal              string  `json:"goal" binding:"required,oneof=cut maintain bulk"`
	CalculationMethod string  `json:"calculationMethod" binding:"omitempty,oneof=mifflin nippard"`
	AvatarURI         string  `json:"avatarUri"`
}

func (s *ProfileService) Get(ctx context.Context) (models.UserData, error) {
	var user models.UserData
	err := storage.GetJSON(ctx, s.store, storage.KeyUserData, &user)
	if errors.Is(err, storage.ErrNotFound) {
		return models.UserData{}, fmt.Errorf("%w: no profile saved", ErrNotFound)
	}
	if err != nil {
		return models.UserData{}, fmt.Errorf("%w: load profile: %v", ErrPersistence, err)
	}
	return user, nil
}

// Save validates the input, recomputes the nutrition goals from it and
// persists the whole document. Nothing is written on a validation error.
func (s *ProfileService) Save(ctx context.Context, in ProfileInput) (models.UserData, error) {
	method := in.CalculationMethod
	if method == "" {
		method = "mifflin"
	}

	goals, err := utils.CalculateNutritionGoals(in.Weight, in.Height, in.Age, in.Gender, in.ActivityLevel, in.Goal, method)
	if err != nil {
		return models.UserData{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Preserve fields the input does not carry (body fat survives edits).
	user, getErr := s.Get(ctx)
	if getErr != nil && !errors.Is(getErr, ErrNotFound) {
		return models.UserData{}, getErr
	}

	user.Name = in.Name
	user.Age = in.Age
	user.Height = in.Height
	user.Weight = in.Weight
	user.Gender = in.Gender
	user.ActivityLevel = in.ActivityLevel
	user.Goal = in.Goal
	user.NutritionGoals = goals
	user.CalculationMethod = method
	if in.AvatarURI != "" {
		user.AvatarURI = in.AvatarURI
	}

	if err := storage.SetJSON(ctx, s.store, storage.KeyUserData, user); err != nil {
		s.log.Error("failed to persist profile", zap.Error(err))
		return models.UserData{}, fmt.Errorf("%w: save profile: %v", ErrPersistence, err)
	}
	return user, nil
}

// SetBodyFat records a computed body-fat percentage on the profile.
func (s *ProfileService) SetBodyFat(ctx context.Context, pct float64) error {
	user, err := s.Get(ctx)
	if err != nil {
		return err
	}
	user.BodyFat = strconv.FormatFloat(pct, 'f', 1, 64)
	if err := storage.SetJSON(ctx, s.store, storage.KeyUserData, user); err != nil {
		return fmt.Errorf("%w: save body fat: %v", ErrPersistence, err)
	}
	return nil
}

// ---------- body measurements ----------

func (s *ProfileService) Measurements(ctx context.Context) (models.BodyMeasurements, error) {
	var m models.BodyMeasurements
	err := storage.GetJSON(ctx, s.store, storage.KeyBodyMeasurements, &m)
	if errors.Is(err, storage.ErrNotFound) {
		return models.BodyMeasurements{}, nil
	}
	if err != nil {
		return models.BodyMeasurements{}, fmt.Errorf("%w: load measurements: %v", ErrPersistence, err)
	}
	return m, nil
}

// SaveMeasurement stores a snapshot in the "before" or "after" slot.
func (s *ProfileService) SaveMeasurement(ctx context.Context, typ string, snap models.MeasurementSnapshot) error {
	if typ != "before" && typ != "after" {
		return fmt.Errorf("%w: measurement type must be before or after", ErrValidation)
	}
	m, err := s.Measurements(ctx)
	if err != nil {
		return err
	}
	if typ == "before" {
		m.Before = &snap
	} else {
		m.After = &snap
	}
	return s.saveMeasurements(ctx, m)
}

// SwapMeasurements exchanges the before and after snapshots.
func (s *ProfileService) SwapMeasurements(ctx context.Context) error {
	m, err := s.Measurements(ctx)
	if err != nil {
		return err
	}
	m.Before, m.After = m.After, m.Before
	return s.saveMeasurements(ctx, m)
}

// ClearMeasurement drops one of the two snapshots; clearing an already
// empty slot is a no-op.
func (s *ProfileService) ClearMeasurement(ctx context.Context, typ string) error {
	if typ != "before" && typ != "after" {
		return fmt.Errorf("%w: measurement type must be before or after", ErrValidation)
	}
	m, err := s.Measurements(ctx)
	if err != nil {
		return err
	}
	if typ == "before" {
		m.Before = nil
	} else {
		m.After = nil
	}
	return s.saveMeasurements(ctx, m)
}

func (s *ProfileService) saveMeasurements(ctx context.Context, m models.BodyMeasurements) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyBodyMeasurements, m); err != nil {
		s.log.Error("failed to persist measurements", zap.Error(err))
		return fmt.Errorf("%w: save measurements: %v", ErrPersistence, err)
	}
	return nil
}
