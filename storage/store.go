package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been written
// (or was removed).
var ErrNotFound = errors.New("storage: key not found")

// Store is the key-value persistence gateway: string keys mapped to JSON
// documents. There are no transactions; writes are last-write-wins, and
// read-modify-write sequences over whole documents assume a single writer.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Persisted keys. The layout is a compatibility contract with the mobile
// client's on-device store.
const (
	KeyUserData         = "userData"
	KeyTodaysMeals      = "todaysMeals"
	KeyMealHistory      = "mealHistory"
	KeyMealCategories   = "mealCategories"
	KeyBodyMeasurements = "bodyMeasurements"
	KeyLastActiveDate   = "lastActiveDate"
)

// GetJSON reads key and unmarshals it into out. Missing keys surface as
// ErrNotFound so callers can fall back to defaults.
func GetJSON(ctx context.Context, s Store, key string, out any) error {
	b, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("storage: decode %q: %w", key, err)
	}
	return nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", key, err)
	}
	return s.Set(ctx, key, b)
}
