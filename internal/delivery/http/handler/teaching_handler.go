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
	TeachingHandler interface {
		Start(ctx *fiber.Ctx) error
		Explain(ctx *fiber.Ctx) error
		Transcript(ctx *fiber.Ctx) error
	}

	teachingHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.TeachingUsecase
	}
)

func NewTeachingHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.TeachingUsecase) TeachingHandler {
	return &teachingHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /lessons/:lesson_id/sections/:section_index/teaching
func (h *teachingHandler) Start(ctx *fiber.Ctx) error {
	lessonID := ctx.Params("lesson_id")
	index, err := strconv.Atoi(ctx.Params("section_index"))
	if lessonID == "" || err != nil {
		return response.NewFailed(domain.TEACHING_START_FAILED, fiber.NewError(fiber.StatusBadRequest, "lesson_id and section_index are required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Start(ctx.UserContext(), lessonID, index)
	if err != nil {
		return response.NewFailed(domain.TEACHING_START_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TEACHING_START_SUCCESS, result, nil).Send(ctx)
}

// POST /teaching/:session_id/explain
func (h *teachingHandler) Explain(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	var req entity.TeachingExplainRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.TEACHING_EXPLAIN_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Explain(ctx.UserContext(), sessionID, req.Explanation)
	if err != nil {
		return response.NewFailed(domain.TEACHING_EXPLAIN_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TEACHING_EXPLAIN_SUCCESS, result, nil).Send(ctx)
}

// GET /teaching/:session_id/transcript
func (h *teachingHandler) Transcript(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.Transcript(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(domain.TEACHING_TRANSCRIPT_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.TEACHING_TRANSCRIPT_SUCCESS, result, nil).Send(ctx)
}
