package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/mikiasgoitom/FoodBridge/internal/handler/http"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/cache"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/config"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/database"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/idgen"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/FoodBridge/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/seed"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/store"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/token"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/validator"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/contract"
	"github.com/mikiasgoitom/FoodBridge/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories. The in-memory stores are the default
	// backend; MongoDB takes over when MONGODB_URI is set.
	var (
		userRepo     contract.IUserRepository
		donationRepo contract.IDonationRepository
	)
	if appConfig.MongoURI != "" {
		mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		db := mongoClient.Client.Database(appConfig.MongoDBName)
		userRepo = mongodb.NewMongoUserRepository(db.Collection("users"))
		donationRepo = mongodb.NewMongoDonationRepository(db.Collection("donations"))
	} else {
		userRepo = memory.NewUserRepository()
		donationRepo = memory.NewDonationRepository()
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	appValidator := validator.NewValidator()
	idGenerator := idgen.NewGenerator()

	var tokenService usecase.TokenService
	if appConfig.TokenMode == config.TokenModeSigned {
		tokenService = token.NewJWTService(appConfig.EnsureJWTSecret(), appConfig.TokenExpiry)
	} else {
		tokenService = token.NewLegacyCodec()
	}

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, tokenService, idGenerator, appValidator, appLogger)
	donationUsecase := usecase.NewDonationUsecase(donationRepo, idGenerator, appLogger)

	// Optional Dependency Injection: Redis cache for the pending feeds
	if appConfig.RedisURL != "" {
		if rdb := cache.NewRedisFromURL(context.Background(), appConfig.RedisURL); rdb != nil {
			defer cache.Close(rdb)
			donationUsecase.SetDonationCache(store.NewDonationCacheStore(rdb))
		}
	}

	// Seed the fixed demo accounts, one per role
	if appConfig.SeedDemo {
		if err := seed.DemoAccounts(context.Background(), userRepo, hasher, appLogger); err != nil {
			log.Fatalf("Failed to seed demo accounts: %v", err)
		}
	}

	// Initialize Gin router
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(authUsecase, donationUsecase, appConfig.RateLimit)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
