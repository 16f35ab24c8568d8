package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/storage"
)

type Config struct {
	Addr          string
	StorageDriver string // "sqlite" | "redis" | "memory"
	SQLitePath    string
	RedisAddr     string
	RedisPassword string

	NutritionixAppID  string
	NutritionixAppKey string
}

// Load reads .env (when present) and the environment.
func Load(log *zap.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment")
	}

	return Config{
		Addr:              getenv("ADDR", ":8080"),
		StorageDriver:     getenv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:        getenv("SQLITE_PATH", "macrotrack.db"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		NutritionixAppID:  os.Getenv("NUTRITIONIX_APP_ID"),
		NutritionixAppKey: os.Getenv("NUTRITIONIX_APP_KEY"),
	}
}

// OpenStore builds the persistence gateway named by the config.
func OpenStore(cfg Config, log *zap.Logger) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "redis":
		log.Info("opening redis store", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0)
	case "memory":
		log.Warn("using in-memory store, state will not survive restarts")
		return storage.NewMemoryStore(), nil
	default:
		log.Info("opening sqlite store", zap.String("path", cfg.SQLitePath))
		return storage.NewGormStore(cfg.SQLitePath)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
