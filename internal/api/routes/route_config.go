package routes

import (
	"Experience-Club-Backend/internal/api/handlers"
	"Experience-Club-Backend/internal/middleware"
	"Experience-Club-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ProductHandler  handlers.ProductHandler
	CartHandler     handlers.CartHandler
	OrderHandler    handlers.OrderHandler
	GameHandler     handlers.GameHandler
	CoinHandler     handlers.CoinHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Cart()
	c.Orders()
	c.Game()
	c.Coins()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Catalog() {
	products := c.App.Group("/api/v1/products")
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Get("/:slug", c.ProductHandler.GetProductBySlug)
	}

	c.App.Get("/api/v1/brands", c.ProductHandler.GetBrands)
	c.App.Get("/api/v1/categories", c.ProductHandler.GetCategories)
	c.App.Get("/api/v1/currencies", c.ProductHandler.GetCurrencies)

	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		admin.Post("/products", c.ProductHandler.CreateProduct)
		admin.Patch("/products/:id", c.ProductHandler.UpdateProduct)
		admin.Delete("/products/:id", c.ProductHandler.DeleteProduct)
		admin.Patch("/products/:id/column", c.ProductHandler.UpdateProductColumn)
		admin.Delete("/products", c.ProductHandler.DeleteProductsByColumn)
		admin.Post("/products/image", c.ProductHandler.UploadProductImage)
		admin.Patch("/products/:id/stock", c.ProductHandler.AdjustStock)
		admin.Put("/products/:id/translations", c.ProductHandler.UpsertTranslation)

		admin.Post("/brands", c.ProductHandler.CreateBrand)
		admin.Patch("/brands/:id", c.ProductHandler.UpdateBrand)
		admin.Delete("/brands/:id", c.ProductHandler.DeleteBrand)
		admin.Post("/categories", c.ProductHandler.CreateCategory)
		admin.Patch("/categories/:id", c.ProductHandler.UpdateCategory)
		admin.Delete("/categories/:id", c.ProductHandler.DeleteCategory)

		admin.Get("/orders", c.OrderHandler.GetAllOrders)
		admin.Patch("/orders/:id/status", c.OrderHandler.UpdateOrderStatus)

		admin.Get("/game/tasks", c.GameHandler.GetAllTasks)
		admin.Post("/game/tasks", c.GameHandler.CreateTask)
		admin.Post("/game/tasks/verify", c.GameHandler.VerifyTaskCompletion)
		admin.Post("/game/tasks/image", c.GameHandler.UploadTaskImage)
		admin.Patch("/game/tasks/:id", c.GameHandler.UpdateTask)
		admin.Delete("/game/tasks/:id", c.GameHandler.DeleteTask)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("/items", c.CartHandler.AddItem)
		cart.Patch("/items/:product_id", c.CartHandler.UpdateQuantity)
		cart.Delete("/items/:product_id", c.CartHandler.RemoveItem)
		cart.Delete("", c.CartHandler.ClearCart)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Get("/my", c.OrderHandler.GetMyOrders)
		orders.Get("/:id", c.OrderHandler.GetOrder)
	}
}

func (c *Config) Game() {
	game := c.App.Group("/api/v1/game", c.Middleware.AuthMiddleware(c.JWTService))
	{
		game.Get("/tasks", c.GameHandler.GetTasks)
		game.Post("/tasks/:id/complete", c.GameHandler.CompleteTask)
		game.Get("/progress", c.GameHandler.GetProgress)
	}
}

func (c *Config) Coins() {
	coins := c.App.Group("/api/v1/coins", c.Middleware.AuthMiddleware(c.JWTService))
	{
		coins.Get("", c.CoinHandler.GetUserCoins)
		coins.Get("/history", c.CoinHandler.GetCoinTransactionHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
