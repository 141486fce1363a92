package handlers

import (
	"log/slog"

	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/middleware"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MeHandler struct {
	profiles *services.ProfileService
}

func NewMeHandler(profiles *services.ProfileService) *MeHandler {
	return &MeHandler{profiles: profiles}
}

// Me returns the current profile with roles, or {"user": null} for
// anonymous callers.
func (h *MeHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.Identity(c)
	if !ok {
		return c.JSON(dto.MeResponse{User: nil})
	}

	if _, err := h.profiles.Ensure(identity); err != nil {
		slog.Error("profile sync failed", "error", err, "user_id", identity.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MeResponse{User: nil})
	}

	user, err := h.profiles.GetWithRoles(identity.ID)
	if err != nil {
		slog.Error("profile fetch failed", "error", err, "user_id", identity.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MeResponse{User: nil})
	}

	resp := dto.MapUser(*user)
	return c.JSON(dto.MeResponse{User: &resp})
}
