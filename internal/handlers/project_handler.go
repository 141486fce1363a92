package handlers

import (
	"errors"
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/middleware"
	"github.com/gestaopublica/painel-projetos/internal/models"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// readOptions widens visibility for authenticated callers; anonymous reads
// only ever see public projects.
func readOptions(c *fiber.Ctx) services.QueryOptions {
	if _, ok := middleware.Identity(c); ok {
		return services.QueryOptions{}
	}
	return services.PublicOnly()
}

// List handles GET /api/projects with optional id and area query filters.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	opts := readOptions(c)

	if id := c.Query("id"); id != "" {
		projectID, err := uuid.Parse(id)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Identificador inválido."})
		}
		project, err := h.projects.GetProjectByID(projectID, opts)
		if err != nil {
			if errors.Is(err, services.ErrProjectNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
			}
			slog.Error("project fetch failed", "error", err, "project_id", id)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao consultar projetos."})
		}
		return c.JSON(fiber.Map{"project": project})
	}

	var (
		projects []dto.ProjectResponse
		err      error
	)
	if area := c.Query("area"); area != "" && area != "all" {
		projects, err = h.projects.GetProjectsByArea(area, opts)
	} else {
		projects, err = h.projects.GetProjects(opts)
	}
	if err != nil {
		slog.Error("project list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao consultar projetos."})
	}

	return c.JSON(fiber.Map{"projects": projects})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Não autenticado."})
	}

	req, fields := parseProjectRequest(c)
	if fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}
	if req == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}

	project, err := h.projects.Create(req, userID)
	if err != nil {
		slog.Error("project create failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao criar projeto."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	req, fields := parseProjectRequest(c)
	if fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}
	if req == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}

	project, err := h.projects.Update(projectID, req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("project update failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao atualizar projeto."})
	}

	return c.JSON(fiber.Map{"project": project})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	if err := h.projects.Delete(projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("project delete failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao excluir projeto."})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *ProjectHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.projects.Metrics()
	if err != nil {
		slog.Error("metrics failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao consultar métricas."})
	}
	return c.JSON(metrics)
}

// parseProjectRequest returns (nil, nil) for an unreadable body, (nil,
// fields) on validation failure, and the parsed request otherwise. Date
// ordering is checked here so the 422 carries a field-level message.
func parseProjectRequest(c *fiber.Ctx) (*dto.ProjectRequest, map[string]string) {
	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, nil
	}

	if fields := dto.Validate(&req); fields != nil {
		return nil, fields
	}

	startDate, errStart := dto.ParseDate(req.StartDate)
	endDate, errEnd := dto.ParseDate(req.EndDate)
	fields := map[string]string{}
	if errStart != nil {
		fields["startDate"] = "Informe a data inicial."
	}
	if errEnd != nil {
		fields["endDate"] = "Informe a data final."
	}
	if errStart == nil && errEnd == nil && endDate.Before(startDate) {
		fields["endDate"] = "Data final deve ser maior ou igual à inicial."
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if !models.IsValidArea(req.Area) {
		return nil, map[string]string{"area": "Área desconhecida."}
	}

	return &req, nil
}
