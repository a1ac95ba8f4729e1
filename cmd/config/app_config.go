package config

import (
	"os"
	"time"

	"cookus-server/internal/api/handlers"
	"cookus-server/internal/api/routes"
	"cookus-server/internal/middleware"
	"cookus-server/internal/utils"
	"cookus-server/internal/utils/storage"
	"cookus-server/pkg/catalog"
	"cookus-server/pkg/faq"
	"cookus-server/pkg/fridge"
	"cookus-server/pkg/jwt"
	"cookus-server/pkg/recommend"
	"cookus-server/pkg/user"
	"cookus-server/pkg/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	codeTTL := codeTTLFromConfig()
	codes := verification.NewStore(codeTTL)

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	recommendRepository := recommend.NewRecommendRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	faqRepository := faq.NewFaqRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, codes, s3)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	recommendService := recommend.NewRecommendService(
		recommendRepository,
		recommend.NewOpenAIAdapter(),
	)
	catalogService := catalog.NewCatalogService(catalogRepository)
	faqService := faq.NewFaqService(faqRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	recommendHandler := handlers.NewRecommendHandler(recommendService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	faqHandler := handlers.NewFaqHandler(faqService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FridgeHandler:    fridgeHandler,
		RecommendHandler: recommendHandler,
		CatalogHandler:   catalogHandler,
		FaqHandler:       faqHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func codeTTLFromConfig() time.Duration {
	minutes := utils.GetConfig("CODE_TTL_MINUTES")
	if d, err := time.ParseDuration(minutes + "m"); err == nil && d > 0 {
		return d
	}
	return 5 * time.Minute
}
