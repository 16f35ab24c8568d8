package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/controllers"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/middlewares"
	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	Log       *zap.Logger
	Ledger    *services.LedgerService
	History   *services.HistoryService
	Stats     *services.StatsService
	Catalog   *services.CatalogService
	Profile   *services.ProfileService
	Nutrition *services.NutritionService
	Hub       *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(d.Log), gin.Recovery())

	ledgerCtl := controllers.NewLedgerController(d.Ledger)
	historyCtl := controllers.NewHistoryController(d.History)
	statsCtl := controllers.NewStatsController(d.Stats)
	catalogCtl := controllers.NewCatalogController(d.Catalog)
	profileCtl := controllers.NewProfileController(d.Profile)
	foodCtl := controllers.NewFoodController(d.Nutrition)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Today's plan
	plan := r.Group("/plan")
	{
		plan.GET("/today", ledgerCtl.GetToday)
		plan.POST("/meals/:slot", ledgerCtl.AddMeal)
		plan.DELETE("/meals/:slot/:index", ledgerCtl.RemoveMeal)
	}

	// Archived days
	history := r.Group("/history")
	{
		history.GET("", historyCtl.GetAll)
		history.GET("/:date", historyCtl.GetByDate)
		history.DELETE("", historyCtl.Clear)
	}

	r.GET("/stats/weekly", statsCtl.GetWeeklyOverview)

	// Meal templates
	catalog := r.Group("/catalog")
	{
		catalog.GET("", catalogCtl.GetCategories)
		catalog.POST("/:category/meals", catalogCtl.AddMeal)
		catalog.PUT("/:category/meals/:index", catalogCtl.UpdateMeal)
		catalog.DELETE("/:category/meals/:index", catalogCtl.DeleteMeal)
	}

	// Profile and measurements
	profile := r.Group("/profile")
	{
		profile.GET("", profileCtl.GetProfile)
		profile.PUT("", profileCtl.SaveProfile)
		profile.POST("/bodyfat", profileCtl.CalculateBodyFat)
		profile.GET("/measurements", profileCtl.GetMeasurements)
		profile.POST("/measurements/swap", profileCtl.SwapMeasurements)
		profile.PUT("/measurements/:type", profileCtl.SaveMeasurement)
		profile.DELETE("/measurements/:type", profileCtl.ClearMeasurement)
	}

	r.GET("/foods/search", foodCtl.SearchFoods)
	r.GET("/ws", realtimeCtl.EventsWS)

	return r
}
