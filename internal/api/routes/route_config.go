package routes

import (
	"cookus-server/internal/api/handlers"
	"cookus-server/internal/middleware"
	"cookus-server/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FridgeHandler    handlers.FridgeHandler
	RecommendHandler handlers.RecommendHandler
	CatalogHandler   handlers.CatalogHandler
	FaqHandler       handlers.FaqHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Fridge()
	c.Recommend()
	c.Catalog()
	c.Faq()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh", c.UserHandler.RefreshToken)
		user.Post("/send-code", c.UserHandler.SendVerificationCode)
		user.Post("/verify-code", c.UserHandler.VerifyCode)
		user.Post("/reset-password", c.UserHandler.ResetPassword)

		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Delete("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteAccount)
		user.Post("/me/image", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
	}
}

func (c *Config) Fridge() {
	fridge := c.App.Group("/api/v1/fridge", c.Middleware.AuthMiddleware(c.JWTService))

	fridge.Get("", c.FridgeHandler.GetFridge)
	fridge.Post("", c.FridgeHandler.SaveFridge)
	fridge.Delete("/:id", c.FridgeHandler.DeleteItem)
}

func (c *Config) Recommend() {
	rec := c.App.Group("/api/v1/recommend", c.Middleware.AuthMiddleware(c.JWTService))

	rec.Post("", c.RecommendHandler.Recommend)
	rec.Post("/select", c.RecommendHandler.SelectRecipe)
	rec.Get("/selections", c.RecommendHandler.GetSelections)
	rec.Patch("/selections/:id", c.RecommendHandler.UpdateSelectionAction)
	rec.Delete("/selections/:id", c.RecommendHandler.DeleteSelection)
}

func (c *Config) Catalog() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/:id", c.CatalogHandler.GetRecipe)

	c.App.Get("/api/v1/ingredients/search", c.CatalogHandler.SearchIngredients)
}

func (c *Config) Faq() {
	faq := c.App.Group("/api/v1/faq")

	faq.Get("", c.FaqHandler.ListFaq)
	faq.Get("/categories", c.FaqHandler.Categories)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
	c.App.Post("/api/v1/demo/recommend", c.RecommendHandler.RecommendDemo)
}
