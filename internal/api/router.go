package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalrack/vitalrack-api/internal/api/handler"
	"github.com/vitalrack/vitalrack-api/internal/api/middleware"
	"github.com/vitalrack/vitalrack-api/internal/core/service"
	mongodb "github.com/vitalrack/vitalrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vitalrack/vitalrack-api/internal/infrastructure/db/redis"
	"github.com/vitalrack/vitalrack-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *service.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vitalrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	foodRepo := mongodb.NewFoodRepository(db)
	routineRepo := mongodb.NewRoutineRepository(db)
	workoutRepo := mongodb.NewWorkoutRepository(db)
	consumptionRepo := mongodb.NewConsumptionRepository(db)
	searchCache := redisdb.NewSearchCache(rdb)

	authService := service.NewAuthService(userRepo, tokens)
	nutritionService := service.NewNutritionService(foodRepo, consumptionRepo, searchCache, log)
	trainingService := service.NewTrainingService(routineRepo, workoutRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)
	trainingHandler := handler.NewTrainingHandler(trainingService)

	requireAuth := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Nutrition routes ---
	nutrition := e.Group("/nutrition", requireAuth)
	nutrition.GET("/search", nutritionHandler.Search)
	nutrition.POST("/log", nutritionHandler.LogConsumption)
	nutrition.GET("/history", nutritionHandler.History)

	// --- Training routes ---
	training := e.Group("/training", requireAuth)
	training.POST("/generate", trainingHandler.GenerateRoutine)
	training.GET("/routines", trainingHandler.ListRoutines)
	training.POST("/log", trainingHandler.LogWorkout)
	training.GET("/sessions", trainingHandler.ListWorkouts)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
