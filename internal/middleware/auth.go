package middleware

import (
	"errors"
	"strings"

	"github.com/gestaopublica/painel-projetos/internal/config"
	"github.com/gestaopublica/painel-projetos/internal/dto"
	"github.com/gestaopublica/painel-projetos/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTProtected rejects requests without a valid bearer token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Não autenticado.",
			})
		},
	})
}

// JWTOptional parses a bearer token when one is present and continues either
// way. Read endpoints use it to widen visibility for authenticated callers.
func JWTOptional(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Next()
		}

		token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err == nil && token.Valid {
			c.Locals("user", token)
		}
		return c.Next()
	}
}

// Identity extracts the profile carried by the JWT in context. The bool is
// false for anonymous requests.
func Identity(c *fiber.Ctx) (services.ProfileInput, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return services.ProfileInput{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return services.ProfileInput{}, false
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return services.ProfileInput{}, false
	}

	identity := services.ProfileInput{ID: userID}
	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	if avatar, ok := claims["avatar"].(string); ok && avatar != "" {
		identity.Avatar = &avatar
	}
	return identity, true
}

// ProfileSync upserts the local profile from the token on every
// authenticated request, so name/avatar edits at the identity source
// propagate. Must run after JWTProtected.
func ProfileSync(profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := Identity(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Não autenticado.",
			})
		}

		if _, err := profiles.Ensure(identity); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "falha ao sincronizar perfil")
		}

		c.Locals("user_id", identity.ID)
		return c.Next()
	}
}

// UserID returns the authenticated user's id set by ProfileSync.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id, nil
	}
	identity, ok := Identity(c)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return identity.ID, nil
}

// ManagementRequired gates mutations on the shared management predicate.
// Must run after ProfileSync.
func ManagementRequired(permissions *services.PermissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Não autenticado.",
			})
		}

		allowed, err := permissions.CanManageProjects(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "falha ao verificar permissões")
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Permissão insuficiente.",
			})
		}
		return c.Next()
	}
}
