package handlers

import (
	"errors"
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/middleware"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	comments    *services.CommentService
	permissions *services.PermissionService
}

func NewCommentHandler(comments *services.CommentService, permissions *services.PermissionService) *CommentHandler {
	return &CommentHandler{comments: comments, permissions: permissions}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	comments, err := h.comments.List(projectID)
	if err != nil {
		slog.Error("comment list failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao carregar comentários."})
	}

	return c.JSON(fiber.Map{"comments": comments})
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Não autenticado."})
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Projeto não informado."})
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	comment, err := h.comments.Create(projectID, userID, &req)
	if err != nil {
		slog.Error("comment create failed", "error", err, "project_id", projectID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao criar comentário."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := h.authorize(c)
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corpo da requisição inválido."})
	}
	if fields := dto.Validate(&req); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Error: "Dados inválidos.", Fields: fields,
		})
	}

	comment, err := h.comments.Update(commentID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("comment update failed", "error", err, "comment_id", commentID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao atualizar comentário."})
	}

	return c.JSON(fiber.Map{"comment": comment})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := h.authorize(c)
	if err != nil {
		return err
	}

	if err := h.comments.Delete(commentID); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("comment delete failed", "error", err, "comment_id", commentID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao remover comentário."})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// authorize resolves the comment id and runs the author/creator/manager
// check. Failures come back as fiber errors for the app error handler.
func (h *CommentHandler) authorize(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := middleware.UserID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Não autenticado.")
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Comentário não informado.")
	}

	allowed, err := h.permissions.CanModifyComment(userID, commentID)
	if err != nil {
		slog.Error("comment permission check failed", "error", err, "comment_id", commentID.String())
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar permissões.")
	}
	if !allowed {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Permissão insuficiente.")
	}

	return commentID, nil
}
