package handler

import (
	"strconv"

	"github.com/arkanasution/lentera-be/internal/delivery/http/domain"
	"github.com/arkanasution/lentera-be/internal/delivery/http/entity"
	"github.com/arkanasution/lentera-be/internal/delivery/http/usecase"
	"github.com/arkanasution/lentera-be/internal/pkg/response"
	"github.com/arkanasution/lentera-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	QuizHandler interface {
		Generate(ctx *fiber.Ctx) error
		Answer(ctx *fiber.Ctx) error
		Next(ctx *fiber.Ctx) error
		Retry(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /lessons/:lesson_id/sections/:section_index/quiz
func (h *quizHandler) Generate(ctx *fiber.Ctx) error {
	lessonID := ctx.Params("lesson_id")
	index, err := strconv.Atoi(ctx.Params("section_index"))
	if lessonID == "" || err != nil {
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "lesson_id and section_index are required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Generate(ctx.UserContext(), lessonID, index)
	if err != nil {
		return response.NewFailed(domain.QUIZ_GENERATE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_GENERATE_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/:session_id/answer
func (h *quizHandler) Answer(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	var req entity.QuizAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Answer(ctx.UserContext(), sessionID, *req.Option)
	if err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/:session_id/next
func (h *quizHandler) Next(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.Next(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_NEXT_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/:session_id/retry
func (h *quizHandler) Retry(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.Retry(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_RETRY_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_RETRY_SUCCESS, result, nil).Send(ctx)
}
