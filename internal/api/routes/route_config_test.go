package routes

import (
	"net/http/httptest"
	"testing"

	"Experience-Club-Backend/internal/api/handlers"
	"Experience-Club-Backend/internal/middleware"
	"Experience-Club-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	config := Config{
		App:             app,
		UserHandler:     handlers.NewUserHandler(nil, nil),
		ProductHandler:  handlers.NewProductHandler(nil, nil),
		CartHandler:     handlers.NewCartHandler(nil, nil),
		OrderHandler:    handlers.NewOrderHandler(nil, nil),
		GameHandler:     handlers.NewGameHandler(nil, nil),
		CoinHandler:     handlers.NewCoinHandler(nil),
		MidtransHandler: handlers.NewMidtransHandler(nil),
		Middleware:      middleware.NewMiddleware(),
		JWTService:      jwt.NewJWTService(),
	}
	config.Setup()
	return app
}

// Protected routes answer 401 without a token; an unregistered path would 404
// instead, so the status pins down the documented paths.
func TestProtectedRoutePaths(t *testing.T) {
	app := setupTestApp()

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/v1/orders"},
		{fiber.MethodGet, "/api/v1/orders/my"},
		{fiber.MethodGet, "/api/v1/orders/3f2b1a04-52cf-43a1-94e2-67f0f3d0a001"},
		{fiber.MethodGet, "/api/v1/admin/game/tasks"},
		{fiber.MethodPost, "/api/v1/admin/game/tasks"},
		{fiber.MethodPost, "/api/v1/admin/game/tasks/verify"},
		{fiber.MethodPost, "/api/v1/admin/game/tasks/image"},
		{fiber.MethodPatch, "/api/v1/admin/game/tasks/3f2b1a04-52cf-43a1-94e2-67f0f3d0a001"},
		{fiber.MethodDelete, "/api/v1/admin/game/tasks/3f2b1a04-52cf-43a1-94e2-67f0f3d0a001"},
		{fiber.MethodGet, "/api/v1/game/tasks"},
		{fiber.MethodGet, "/api/v1/game/progress"},
		{fiber.MethodGet, "/api/v1/coins"},
		{fiber.MethodGet, "/api/v1/coins/history"},
		{fiber.MethodGet, "/api/v1/cart"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err, "%s %s", tc.method, tc.path)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}
