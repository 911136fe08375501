package handler

import (
	"github.com/arkanasution/lentera-be/internal/delivery/http/domain"
	"github.com/arkanasution/lentera-be/internal/delivery/http/entity"
	"github.com/arkanasution/lentera-be/internal/delivery/http/usecase"
	"github.com/arkanasution/lentera-be/internal/pkg/response"
	"github.com/arkanasution/lentera-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	LessonHandler interface {
		Generate(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
	}

	lessonHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.LessonUsecase
	}
)

func NewLessonHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.LessonUsecase) LessonHandler {
	return &lessonHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /lessons
func (h *lessonHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.GenerateLessonRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.LESSON_GENERATE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Generate(ctx.UserContext(), req.Topic)
	if err != nil {
		return response.NewFailed(domain.LESSON_GENERATE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LESSON_GENERATE_SUCCESS, result, nil).Send(ctx)
}

// GET /lessons/:lesson_id
func (h *lessonHandler) Get(ctx *fiber.Ctx) error {
	lessonID := ctx.Params("lesson_id")
	if lessonID == "" {
		return response.NewFailed(domain.LESSON_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "lesson_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Get(ctx.UserContext(), lessonID)
	if err != nil {
		return response.NewFailed(domain.LESSON_GET_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LESSON_GET_SUCCESS, result, nil).Send(ctx)
}
