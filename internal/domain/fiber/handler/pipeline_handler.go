package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campusrecruit/backend/internal/dto"
	"github.com/campusrecruit/backend/internal/model"
	"github.com/campusrecruit/backend/internal/usecase"
	"github.com/campusrecruit/backend/internal/util"
)

// PipelineHandler serves the staging view: the ranked application list,
// candidate drill-downs, and batched evaluation summaries.
type PipelineHandler struct {
	staging   *usecase.StagingUsecase
	summaries *usecase.SummaryUsecase
}

func NewPipelineHandler(staging *usecase.StagingUsecase, summaries *usecase.SummaryUsecase) *PipelineHandler {
	return &PipelineHandler{staging: staging, summaries: summaries}
}

func (h *PipelineHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/applications", h.Applications)
	app.Get("/candidates/:id", h.Candidate)
	app.Post("/evaluations/summaries", h.Summaries)
	app.Patch("/evaluations/:id/notes", h.ScheduleNotes)
	app.Get("/evaluations/:id/notes/status", h.NotesStatus)
}

func (h *PipelineHandler) Applications(c *fiber.Ctx) error {
	phase := model.Phase(c.Query("phase", string(model.PhaseResume)))
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 25)

	items, pagination, err := h.staging.List(phase, page, pageSize)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get applications",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *PipelineHandler) Candidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidate id must be a valid id",
		}, err)
	}
	candidate, err := h.staging.GetCandidate(id)
	if err != nil {
		return err
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func (h *PipelineHandler) Summaries(c *fiber.Ctx) error {
	var req dto.SummariesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := validate.Struct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "invalid summaries payload",
			Details: err.Error(),
		}, err)
	}

	ids := make([]uuid.UUID, len(req.ApplicationIDs))
	for i, raw := range req.ApplicationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "applicationIds must be valid ids",
			}, err)
		}
		ids[i] = id
	}

	grouped, err := h.summaries.Summaries(ids, model.InterviewType(req.InterviewType))
	if err != nil {
		return err
	}
	out := make(map[string]fiber.Map, len(grouped))
	for id, evals := range grouped {
		out[id.String()] = fiber.Map{"evaluations": evals}
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluation summaries",
		Data:    out,
	})
}

// ScheduleNotes queues a note edit behind the per-evaluation debounce timer
// and returns immediately; the client polls the status endpoint for the badge.
func (h *PipelineHandler) ScheduleNotes(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "evaluation id must be a valid id",
		}, err)
	}
	var req dto.UpdateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	h.summaries.ScheduleNotes(id, req.Notes)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Save scheduled",
	})
}

func (h *PipelineHandler) NotesStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "evaluation id must be a valid id",
		}, err)
	}
	status, ok := h.summaries.NotesStatus(id)
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
