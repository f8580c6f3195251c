package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"withme/cmd/fx/controllersfx"
	"withme/cmd/fx/dbfx"
	"withme/cmd/fx/expensesfx"
	"withme/cmd/fx/itineraryfx"
	"withme/cmd/fx/loggerfx"
	"withme/cmd/fx/placesfx"
	"withme/cmd/fx/suggestfx"
	"withme/cmd/fx/surveyfx"
	"withme/cmd/fx/traveltimefx"
	"withme/cmd/fx/tripsfx"
	"withme/internal/api/controllers"
	"withme/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		loggerfx.Module,
		dbfx.Module,
		tripsfx.Module,
		traveltimefx.Module,
		itineraryfx.Module,
		placesfx.Module,
		surveyfx.Module,
		expensesfx.Module,
		suggestfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	surveysController *controllers.SurveysController,
	expensesController *controllers.ExpensesController,
	suggestionsController *controllers.SuggestionsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.SessionIDMiddleware())

	RegisterRoutes(r,
		tripsController,
		itineraryController,
		placesController,
		surveysController,
		expensesController,
		suggestionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	surveysController *controllers.SurveysController,
	expensesController *controllers.ExpensesController,
	suggestionsController *controllers.SuggestionsController) {

	trips := r.Group("/trips")
	trips.POST("", tripsController.CreateTrip)
	trips.GET("", tripsController.ListTrips)
	trips.GET("/:tripId", tripsController.GetTrip)
	trips.PUT("/:tripId", tripsController.UpdateTrip)
	trips.DELETE("/:tripId", tripsController.DeleteTrip)
	trips.POST("/:tripId/members", tripsController.AddMember)

	trips.POST("/:tripId/items", itineraryController.AddItem)
	trips.GET("/:tripId/items", itineraryController.ListItems)
	trips.GET("/:tripId/travel-times", itineraryController.GetTravelTimes)

	trips.POST("/:tripId/expenses", expensesController.AddExpense)
	trips.GET("/:tripId/expenses", expensesController.ListExpenses)
	trips.GET("/:tripId/expenses/summary", expensesController.Summary)

	items := r.Group("/items")
	items.PUT("/:itemId", itineraryController.UpdateItem)
	items.DELETE("/:itemId", itineraryController.DeleteItem)

	places := r.Group("/places")
	places.POST("/import", placesController.ImportList)
	places.GET("", placesController.ListPlaces)

	surveys := r.Group("/surveys")
	surveys.POST("/events", surveysController.HandleEvent)
	surveys.POST("/responses", surveysController.SubmitResponse)

	r.POST("/suggestions", suggestionsController.Suggest)
}
