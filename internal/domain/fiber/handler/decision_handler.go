package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/dto"
	"github.com/campusrecruit/backend/internal/model"
	"github.com/campusrecruit/backend/internal/usecase"
	"github.com/campusrecruit/backend/internal/util"
)

type DecisionHandler struct {
	decisions   *usecase.DecisionUsecase
	advancement *usecase.AdvancementUsecase
}

func NewDecisionHandler(decisions *usecase.DecisionUsecase, advancement *usecase.AdvancementUsecase) *DecisionHandler {
	return &DecisionHandler{decisions: decisions, advancement: advancement}
}

func (h *DecisionHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/decisions", h.Existing)
	app.Post("/decisions", h.Save)
	app.Get("/decisions/validate", h.Validate)
	app.Post("/decisions/process", h.process(model.PhaseResume))
	app.Post("/decisions/process-coffee", h.process(model.PhaseCoffee))
	app.Post("/decisions/process-first-round", h.process(model.PhaseFirstRound))
	app.Post("/decisions/process-final", h.process(model.PhaseFinalRound))
}

func (h *DecisionHandler) Existing(c *fiber.Ctx) error {
	phase := model.Phase(c.Query("phase"))
	decisions, err := h.decisions.Existing(phase)
	if err != nil {
		return err
	}
	out := make(map[string]model.DecisionValue, len(decisions))
	for id, v := range decisions {
		out[id.String()] = v
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get decisions",
		Data:    fiber.Map{"decisions": out},
	})
}

func (h *DecisionHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := validate.Struct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "invalid decision payload",
			Details: err.Error(),
		}, err)
	}
	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "applicationId must be a valid id",
		}, err)
	}
	if err := h.decisions.Set(applicationID, model.Phase(req.Phase), model.DecisionValue(req.Decision)); err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success save decision",
	})
}

// Validate lets the staging UI check cohort completeness before offering
// the push-all button.
func (h *DecisionHandler) Validate(c *fiber.Ctx) error {
	phase := model.Phase(c.Query("phase"))
	check, err := h.advancement.ValidateCohort(phase)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success validate cohort",
		Data:    check,
	})
}

// process builds the push-all handler for one phase. The body is optional;
// an absent or unparsable body means no emails.
func (h *DecisionHandler) process(phase model.Phase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ProcessRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return util.ErrorResponse(c, util.ErrorResponseFormat{
					Code:    fiber.StatusBadRequest,
					Message: "invalid request body",
				}, err)
			}
		}
		summary, err := h.advancement.AdvanceAll(phase, req.SendEmails)
		if err != nil {
			return err
		}
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success process decisions",
			Data:    dto.AdvanceSummaryResponse{Summary: summary},
		})
	}
}
