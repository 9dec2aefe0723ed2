package api

import (
	"guestdesk/docs"
	"guestdesk/internal/api/handlers"
	"guestdesk/pkg/auth"
	"guestdesk/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	hotelHandler *handlers.HotelHandler,
	messageHandler *handlers.MessageHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	staff := app.Group("/staff")
	authGroup := staff.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	hotels := protected.Group("/hotels")
	hotels.Get("", hotelHandler.ListHotels)
	hotels.Post("", hotelHandler.CreateHotel)
	hotels.Get("/:id", hotelHandler.GetHotel)
	hotels.Get("/:id/attractions", hotelHandler.GetAttractions)
	hotels.Get("/:id/analytics", hotelHandler.GetAnalytics)
	hotels.Get("/:id/messages", messageHandler.ListMessages)
	hotels.Post("/:id/messages", messageHandler.CreateMessage)
	hotels.Post("/:id/messages/fetch", messageHandler.FetchMessages)

	messages := protected.Group("/messages")
	messages.Post("/:id/suggestions", messageHandler.Suggest)
	messages.Post("/:id/reply", messageHandler.Reply)

	return app
}
