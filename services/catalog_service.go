package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

// CatalogService manages the category → meal-template mapping. The whole
// catalog is persisted as one snapshot, seeded with the defaults on first
// read.
type CatalogService struct {
	store storage.Store
	log   *zap.Logger
}

func NewCatalogService(store storage.Store, log *zap.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

func (s *CatalogService) Categories(ctx context.Context) (models.MealCategories, error) {
	var cats models.MealCategories
	err := storage.GetJSON(ctx, s.store, storage.KeyMealCategories, &cats)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultCategories(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load catalog: %v", ErrPersistence, err)
	}
	return cats, nil
}

// AddMeal appends a template to an existing category.
func (s *CatalogService) AddMeal(ctx context.Context, category string, meal models.MealRecord) error {
	if err := ValidateMeal(meal); err != nil {
		return err
	}
	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	cat, ok := cats[category]
	if !ok {
		return fmt.Errorf("%w: category %q", ErrNotFound, category)
	}
	cat.Meals = append(cat.Meals, meal)
	cats[category] = cat
	return s.save(ctx, cats)
}

// UpdateMeal replaces the template at index wholesale; records are never
// patched field by field.
func (s *CatalogService) UpdateMeal(ctx context.Context, category string, index int, meal models.MealRecord) error {
	if err := ValidateMeal(meal); err != nil {
		return err
	}
	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	cat, ok := cats[category]
	if !ok || index < 0 || index >= len(cat.Meals) {
		return fmt.Errorf("%w: meal %d in category %q", ErrNotFound, index, category)
	}
	cat.Meals[index] = meal
	cats[category] = cat
	return s.save(ctx, cats)
}

// DeleteMeal removes the template at index. Out-of-range indexes and
// unknown categories are tolerated as no-ops, matching ledger removal.
func (s *CatalogService) DeleteMeal(ctx context.Context, category string, index int) error {
	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	cat, ok := cats[category]
	if !ok || index < 0 || index >= len(cat.Meals) {
		return nil
	}
	cat.Meals = append(cat.Meals[:index], cat.Meals[index+1:]...)
	cats[category] = cat
	return s.save(ctx, cats)
}

func (s *CatalogService) save(ctx context.Context, cats models.MealCategories) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyMealCategories, cats); err != nil {
		s.log.Error("failed to persist catalog", zap.Error(err))
		return fmt.Errorf("%w: save catalog: %v", ErrPersistence, err)
	}
	return nil
}
