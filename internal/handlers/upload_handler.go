package handlers

import (
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/middleware"
	"github.com/gestaopublica/painel-projetos/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload accepts a multipart "file" field, images and PDFs only.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Não autenticado."})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Arquivo inválido."})
	}

	contentType := header.Header.Get(fiber.HeaderContentType)
	if !storage.AllowedContentType(contentType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de arquivo não suportado."})
	}

	url, err := h.uploader.Upload(c.Context(), userID, header, contentType)
	if err != nil {
		slog.Error("upload failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Falha ao enviar arquivo."})
	}

	return c.JSON(dto.UploadResponse{URL: url})
}
