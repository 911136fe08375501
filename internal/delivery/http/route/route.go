package route

import (
	"github.com/arkanasution/lentera-be/internal/delivery/http/handler"
	"github.com/arkanasution/lentera-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	LessonHandler   handler.LessonHandler
	PlaybackHandler handler.PlaybackHandler
	QuizHandler     handler.QuizHandler
	SandboxHandler  handler.SandboxHandler
	TeachingHandler handler.TeachingHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupLessonRoute(c.Api, c.LessonHandler, c.PlaybackHandler, c.QuizHandler, c.SandboxHandler, c.TeachingHandler)
	SetupSessionRoute(c.Api, c.PlaybackHandler, c.QuizHandler, c.SandboxHandler, c.TeachingHandler)
}
