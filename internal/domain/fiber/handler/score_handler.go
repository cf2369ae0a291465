package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/model"
	"github.com/campusrecruit/backend/internal/usecase"
	"github.com/campusrecruit/backend/internal/util"
)

type ScoreHandler struct {
	uc *usecase.ScoreUsecase
}

func NewScoreHandler(uc *usecase.ScoreUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/scores", h.List)
	app.Patch("/scores/:id", h.Patch)
	app.Patch("/scores/:id/autosave", h.Autosave)
	app.Get("/scores/:id/autosave", h.SaveStatus)
}

func (h *ScoreHandler) List(c *fiber.Ctx) error {
	documentType := model.DocumentType(c.Query("documentType"))
	candidateID, err := uuid.Parse(c.Query("candidateId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidateId must be a valid id",
		}, err)
	}
	var cycleID *uuid.UUID
	if raw := c.Query("cycleId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "cycleId must be a valid id",
			}, err)
		}
		cycleID = &id
	}

	scores, err := h.uc.List(documentType, candidateID, cycleID)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get scores",
		Data:    scores,
	})
}

func (h *ScoreHandler) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "score id must be a valid id",
		}, err)
	}
	var patch usecase.ScorePatch
	if err := c.BodyParser(&patch); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := h.uc.Patch(id, patch); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update score",
	})
}

// Autosave queues the patch behind the per-score debounce timer and
// returns immediately; the client polls the status endpoint for the badge.
func (h *ScoreHandler) Autosave(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "score id must be a valid id",
		}, err)
	}
	var patch usecase.ScorePatch
	if err := c.BodyParser(&patch); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	h.uc.SchedulePatch(id, patch)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Save scheduled",
	})
}

func (h *ScoreHandler) SaveStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "score id must be a valid id",
		}, err)
	}
	status, ok := h.uc.SaveStatus(id)
	if !ok {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "No autosave activity",
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get autosave status",
		Data:    status,
	})
}
