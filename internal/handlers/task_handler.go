package handlers

import (
	"errors"
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	tasks, err := h.tasks.List(projectID)
	if err != nil {
		slog.Error("task list failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao carregar tarefas."})
	}

	return c.JSON(fiber.Map{"tasks": tasks})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	task, err := h.tasks.Create(projectID, &req)
	if err != nil {
		if fields, ok := invalidDateFields(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: fields,
			})
		}
		slog.Error("task create failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao criar tarefa."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tarefa não informada."})
	}

	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	task, err := h.tasks.Update(taskID, &req)
	if err != nil {
		if fields, ok := invalidDateFields(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: "Dados inválidos.", Fields: fields,
			})
		}
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("task update failed", "error", err, "task_id", taskID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao atualizar tarefa."})
	}

	return c.JSON(fiber.Map{"task": task})
}

// invalidDateFields translates a date parse failure into the 422 field map,
// keyed by the field that carried the bad value.
func invalidDateFields(err error) (map[string]string, bool) {
	var dateErr *services.InvalidDateError
	if errors.As(err, &dateErr) {
		return map[string]string{dateErr.Field: "Data inválida."}, true
	}
	if errors.Is(err, services.ErrInvalidDate) {
		return map[string]string{"startDate": "Data inválida."}, true
	}
	return nil, false
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tarefa não informada."})
	}

	if err := h.tasks.Delete(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("task delete failed", "error", err, "task_id", taskID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao remover tarefa."})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
