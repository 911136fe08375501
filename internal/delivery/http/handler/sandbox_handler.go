package handler

import (
	"context"
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
	SandboxHandler interface {
		Generate(ctx *fiber.Ctx) error
		Place(ctx *fiber.Ctx) error
		Remove(ctx *fiber.Ctx) error
		Combine(ctx *fiber.Ctx) error
		Deconstruct(ctx *fiber.Ctx) error
		Reset(ctx *fiber.Ctx) error
		Advance(ctx *fiber.Ctx) error
	}

	sandboxHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.SandboxUsecase
	}
)

func NewSandboxHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.SandboxUsecase) SandboxHandler {
	return &sandboxHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /lessons/:lesson_id/sections/:section_index/sandbox
func (h *sandboxHandler) Generate(ctx *fiber.Ctx) error {
	lessonID := ctx.Params("lesson_id")
	index, err := strconv.Atoi(ctx.Params("section_index"))
	if lessonID == "" || err != nil {
		return response.NewFailed(domain.SANDBOX_GENERATE_FAILED, fiber.NewError(fiber.StatusBadRequest, "lesson_id and section_index are required"), h.logger).Send(ctx)
	}

	var req entity.GenerateSandboxRequest
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.SANDBOX_GENERATE_FAILED, err, h.logger).Send(ctx)
		}
	}

	result, err := h.usecase.Generate(ctx.UserContext(), lessonID, index, req.Mode)
	if err != nil {
		return response.NewFailed(domain.SANDBOX_GENERATE_FAILED, fiber.NewError(fiber.StatusBadGateway, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SANDBOX_GENERATE_SUCCESS, result, nil).Send(ctx)
}

// POST /sandbox/:session_id/place
func (h *sandboxHandler) Place(ctx *fiber.Ctx) error {
	return h.pieceOp(ctx, h.usecase.Place, domain.SANDBOX_PLACE_SUCCESS, domain.SANDBOX_PLACE_FAILED)
}

// POST /sandbox/:session_id/remove
func (h *sandboxHandler) Remove(ctx *fiber.Ctx) error {
	return h.pieceOp(ctx, h.usecase.Remove, domain.SANDBOX_REMOVE_SUCCESS, domain.SANDBOX_REMOVE_FAILED)
}

// POST /sandbox/:session_id/deconstruct
func (h *sandboxHandler) Deconstruct(ctx *fiber.Ctx) error {
	return h.pieceOp(ctx, h.usecase.Deconstruct, domain.SANDBOX_DECONSTRUCT_SUCCESS, domain.SANDBOX_DECONSTRUCT_FAILED)
}

// POST /sandbox/:session_id/combine
func (h *sandboxHandler) Combine(ctx *fiber.Ctx) error {
	return h.sessionOp(ctx, h.usecase.Combine, domain.SANDBOX_COMBINE_SUCCESS, domain.SANDBOX_COMBINE_FAILED)
}

// POST /sandbox/:session_id/reset
func (h *sandboxHandler) Reset(ctx *fiber.Ctx) error {
	return h.sessionOp(ctx, h.usecase.Reset, domain.SANDBOX_RESET_SUCCESS, domain.SANDBOX_RESET_FAILED)
}

// POST /sandbox/:session_id/advance
func (h *sandboxHandler) Advance(ctx *fiber.Ctx) error {
	return h.sessionOp(ctx, h.usecase.Advance, domain.SANDBOX_ADVANCE_SUCCESS, domain.SANDBOX_ADVANCE_FAILED)
}

type pieceOpFunc func(ctx context.Context, sessionID, pieceID string) (*entity.SandboxStateResponse, error)

func (h *sandboxHandler) pieceOp(ctx *fiber.Ctx, op pieceOpFunc, successMsg, failedMsg string) error {
	sessionID := ctx.Params("session_id")

	var req entity.SandboxPieceRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(failedMsg, err, h.logger).Send(ctx)
	}

	result, err := op(ctx.UserContext(), sessionID, req.PieceID)
	if err != nil {
		return response.NewFailed(failedMsg, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(successMsg, result, nil).Send(ctx)
}

func (h *sandboxHandler) sessionOp(ctx *fiber.Ctx, op func(ctx context.Context, sessionID string) (*entity.SandboxStateResponse, error), successMsg, failedMsg string) error {
	sessionID := ctx.Params("session_id")

	result, err := op(ctx.UserContext(), sessionID)
	if err != nil {
		return response.NewFailed(failedMsg, fiber.NewError(fiber.StatusNotFound, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(successMsg, result, nil).Send(ctx)
}
