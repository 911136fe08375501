package route

import (
	"github.com/arkanasution/lentera-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoute(api *fiber.App, lessonHandler handler.LessonHandler, playbackHandler handler.PlaybackHandler, quizHandler handler.QuizHandler, sandboxHandler handler.SandboxHandler, teachingHandler handler.TeachingHandler) {
	router := api.Group("/lessons")
	{
		router.Post("/", lessonHandler.Generate)
		router.Get("/:lesson_id", lessonHandler.Get)
	}

	sectionRouter := router.Group("/:lesson_id/sections/:section_index")
	{
		sectionRouter.Post("/playback", playbackHandler.Create)
		sectionRouter.Post("/quiz", quizHandler.Generate)
		sectionRouter.Post("/sandbox", sandboxHandler.Generate)
		sectionRouter.Post("/teaching", teachingHandler.Start)
	}
}

func SetupSessionRoute(api *fiber.App, playbackHandler handler.PlaybackHandler, quizHandler handler.QuizHandler, sandboxHandler handler.SandboxHandler, teachingHandler handler.TeachingHandler) {
	playbackRouter := api.Group("/playback/:session_id")
	{
		playbackRouter.Post("/tick", playbackHandler.Tick)
		playbackRouter.Post("/image", playbackHandler.SelectImage)
	}

	quizRouter := api.Group("/quiz/:session_id")
	{
		quizRouter.Post("/answer", quizHandler.Answer)
		quizRouter.Post("/next", quizHandler.Next)
		quizRouter.Post("/retry", quizHandler.Retry)
	}

	sandboxRouter := api.Group("/sandbox/:session_id")
	{
		sandboxRouter.Post("/place", sandboxHandler.Place)
		sandboxRouter.Post("/remove", sandboxHandler.Remove)
		sandboxRouter.Post("/combine", sandboxHandler.Combine)
		sandboxRouter.Post("/deconstruct", sandboxHandler.Deconstruct)
		sandboxRouter.Post("/reset", sandboxHandler.Reset)
		sandboxRouter.Post("/advance", sandboxHandler.Advance)
	}

	teachingRouter := api.Group("/teaching/:session_id")
	{
		teachingRouter.Post("/explain", teachingHandler.Explain)
		teachingRouter.Get("/transcript", teachingHandler.Transcript)
	}
}
