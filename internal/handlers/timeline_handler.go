package handlers

import (
	"errors"
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TimelineHandler struct {
	timeline *services.TimelineService
}

func NewTimelineHandler(timeline *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{timeline: timeline}
}

func (h *TimelineHandler) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	entries, err := h.timeline.List(projectID)
	if err != nil {
		slog.Error("timeline list failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao carregar timeline."})
	}

	return c.JSON(fiber.Map{"entries": entries})
}

func (h *TimelineHandler) Create(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	var req dto.TimelineEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	entry, err := h.timeline.Create(projectID, &req)
	if err != nil {
		if fields, ok := invalidDateFields(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: fields,
			})
		}
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: map[string]string{"taskId": "Tarefa não encontrada."},
			})
		}
		slog.Error("timeline create failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao criar evento na timeline."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *TimelineHandler) Update(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Evento não informado."})
	}

	var req dto.TimelineEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	entry, err := h.timeline.Update(entryID, &req)
	if err != nil {
		if fields, ok := invalidDateFields(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: fields,
			})
		}
		switch {
		case errors.Is(err, services.ErrTimelineNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrTaskNotFound):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: map[string]string{"taskId": "Tarefa não encontrada."},
			})
		}
		slog.Error("timeline update failed", "error", err, "entry_id", entryID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao atualizar evento."})
	}

	return c.JSON(fiber.Map{"entry": entry})
}

func (h *TimelineHandler) Delete(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("entryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Evento não informado."})
	}

	if err := h.timeline.Delete(entryID); err != nil {
		if errors.Is(err, services.ErrTimelineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("timeline delete failed", "error", err, "entry_id", entryID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao remover evento."})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
