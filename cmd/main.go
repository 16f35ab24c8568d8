package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/config"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/logger"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/routes"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	cfg := config.Load(log)

	store, err := config.OpenStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}

	hub := services.NewRealtimeHub()
	history := services.NewHistoryService(store, log)
	profile := services.NewProfileService(store, log)
	ledger := services.NewLedgerService(store, history, hub, log)
	stats := services.NewStatsService(history, profile, log)
	catalog := services.NewCatalogService(store, log)
	nutrition := services.NewNutritionService(cfg.NutritionixAppID, cfg.NutritionixAppKey, log)

	ctx := context.Background()
	if err := ledger.LoadToday(ctx); err != nil {
		log.Fatal("failed to load today's meals", zap.Error(err))
	}

	scheduler := services.NewRolloverScheduler(ledger, log)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("failed to start rollover scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Deps{
		Log:       log,
		Ledger:    ledger,
		History:   history,
		Stats:     stats,
		Catalog:   catalog,
		Profile:   profile,
		Nutrition: nutrition,
		Hub:       hub,
	})

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
