package config

import (
	"os"
	"time"

	"Experience-Club-Backend/internal/api/handlers"
	"Experience-Club-Backend/internal/api/routes"
	"Experience-Club-Backend/internal/middleware"
	"Experience-Club-Backend/internal/utils"
	"Experience-Club-Backend/internal/utils/cache"
	"Experience-Club-Backend/internal/utils/storage"
	"Experience-Club-Backend/pkg/cart"
	"Experience-Club-Backend/pkg/coin"
	"Experience-Club-Backend/pkg/game"
	"Experience-Club-Backend/pkg/jwt"
	"Experience-Club-Backend/pkg/midtrans"
	"Experience-Club-Backend/pkg/order"
	"Experience-Club-Backend/pkg/product"
	"Experience-Club-Backend/pkg/user"

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisClient := cache.NewRedisClient()
	catalogCache := cache.NewRedisCache(redisClient)

	// Repository
	userRepository := user.NewUserRepository(db)
	coinRepository := coin.NewCoinRepository(db)
	productRepository := product.NewProductRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)
	gameRepository := game.NewGameRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, coinRepository, jwtService)
	coinService := coin.NewCoinService(coinRepository)
	productService := product.NewProductService(productRepository, catalogCache, s3)
	cartService := cart.NewCartService(cartRepository, productRepository)
	midtransService := midtrans.NewMidtransService(midtransRepository)
	orderService := order.NewOrderService(orderRepository, cartRepository, coinRepository, midtransService, catalogCache)
	gameService := game.NewGameService(gameRepository, coinRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	gameHandler := handlers.NewGameHandler(gameService, validator)
	coinHandler := handlers.NewCoinHandler(coinService)
	midtransHandler := handlers.NewMidtransHandler(midtransService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
		GameHandler:     gameHandler,
		CoinHandler:     coinHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
