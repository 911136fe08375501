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
	PlaybackHandler interface {
		Create(ctx *fiber.Ctx) error
		Tick(ctx *fiber.Ctx) error
		SelectImage(ctx *fiber.Ctx) error
	}

	playbackHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.PlaybackUsecase
	}
)

func NewPlaybackHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.PlaybackUsecase) PlaybackHandler {
	return &playbackHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /lessons/:lesson_id/sections/:section_index/playback
func (h *playbackHandler) Create(ctx *fiber.Ctx) error {
	lessonID := ctx.Params("lesson_id")
	index, err := strconv.Atoi(ctx.Params("section_index"))
	if lessonID == "" || err != nil {
		return response.NewFailed(domain.PLAYBACK_CREATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "lesson_id and section_index are required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Create(lessonID, index)
	if err != nil {
		return response.NewFailed(domain.PLAYBACK_CREATE_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYBACK_CREATE_SUCCESS, result, nil).Send(ctx)
}

// POST /playback/:session_id/tick
func (h *playbackHandler) Tick(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	var req entity.TickRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PLAYBACK_TICK_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.Tick(sessionID, *req.CurrentTime)
	if err != nil {
		return response.NewFailed(domain.PLAYBACK_TICK_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYBACK_TICK_SUCCESS, result, nil).Send(ctx)
}

// POST /playback/:session_id/image
func (h *playbackHandler) SelectImage(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	var req entity.SelectImageRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PLAYBACK_IMAGE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SelectImage(sessionID, *req.ImageIndex)
	if err != nil {
		return response.NewFailed(domain.PLAYBACK_IMAGE_FAILED, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PLAYBACK_IMAGE_SUCCESS, result, nil).Send(ctx)
}
