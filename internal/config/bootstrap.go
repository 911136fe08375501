package config

import (
	"context"

	"github.com/arkanasution/lentera-be/internal/cache"
	"github.com/arkanasution/lentera-be/internal/delivery/http/handler"
	"github.com/arkanasution/lentera-be/internal/delivery/http/middleware"
	"github.com/arkanasution/lentera-be/internal/delivery/http/repository"
	"github.com/arkanasution/lentera-be/internal/delivery/http/route"
	"github.com/arkanasution/lentera-be/internal/delivery/http/usecase"
	"github.com/arkanasution/lentera-be/internal/lesson"
	"github.com/arkanasution/lentera-be/internal/pkg/imagesearch"
	"github.com/arkanasution/lentera-be/internal/pkg/llm"
	"github.com/arkanasution/lentera-be/internal/pkg/tts"
	"github.com/arkanasution/lentera-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	gemini, err := llm.NewGeminiClient(context.Background(),
		config.Config.GetString("llm.gemini.api_key"),
		config.Config.GetString("llm.gemini.model"),
	)
	if err != nil {
		config.Log.Fatalf("Failed to create Gemini client: %v", err)
	}

	chat := llm.NewChatClient(
		config.Config.GetString("llm.chat.api_key"),
		config.Config.GetString("llm.chat.model"),
		config.Config.GetString("llm.chat.base_url"),
	)

	ttsClient := tts.NewClient(
		config.Config.GetString("tts.elevenlabs.api_key"),
		config.Config.GetString("tts.elevenlabs.voice_id"),
		config.Config.GetString("tts.elevenlabs.base_url"),
		config.Config.GetString("tts.elevenlabs.model_id"),
	)

	imageClient := imagesearch.NewClient(
		config.Config.GetString("images.pexels.api_key"),
		config.Config.GetString("images.pexels.base_url"),
		config.Config.GetString("images.fallback_url"),
	)

	var generationCache cache.Store = cache.NewMemory()
	if config.DB != nil {
		cacheRepo := repository.NewCacheRepository(config.DB)
		generationCache = cache.NewLayered(cache.NewMemory(), repository.NewGormStore(config.DB, cacheRepo))
	}

	lessonStore := lesson.NewStore()

	lessonUsecase := usecase.NewLessonUsecase(usecase.LessonConfig{
		Gemini: gemini,
		TTS:    ttsClient,
		Images: imageClient,
		Store:  lessonStore,
		Cache:  generationCache,
		Log:    config.Log,
		Config: config.Config,
	})
	playbackUsecase := usecase.NewPlaybackUsecase(usecase.PlaybackConfig{
		Store:  lessonStore,
		Log:    config.Log,
		Config: config.Config,
	})
	quizUsecase := usecase.NewQuizUsecase(usecase.QuizConfig{
		Gemini: gemini,
		Store:  lessonStore,
		Cache:  generationCache,
		Log:    config.Log,
		Config: config.Config,
	})
	sandboxUsecase := usecase.NewSandboxUsecase(usecase.SandboxConfig{
		Gemini: gemini,
		Store:  lessonStore,
		Cache:  generationCache,
		Log:    config.Log,
		Config: config.Config,
	})
	teachingUsecase := usecase.NewTeachingUsecase(usecase.TeachingConfig{
		Chat:   chat,
		Store:  lessonStore,
		Log:    config.Log,
		Config: config.Config,
	})

	lessonHandler := handler.NewLessonHandler(config.Validator, config.Log, lessonUsecase)
	playbackHandler := handler.NewPlaybackHandler(config.Validator, config.Log, playbackUsecase)
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)
	sandboxHandler := handler.NewSandboxHandler(config.Validator, config.Log, sandboxUsecase)
	teachingHandler := handler.NewTeachingHandler(config.Validator, config.Log, teachingUsecase)

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		LessonHandler:   lessonHandler,
		PlaybackHandler: playbackHandler,
		QuizHandler:     quizHandler,
		SandboxHandler:  sandboxHandler,
		TeachingHandler: teachingHandler,
	})

}
