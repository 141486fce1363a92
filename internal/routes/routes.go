package routes

import (
	"time"

	"github.com/gestaopublica/painel-projetos/internal/config"
	"github.com/gestaopublica/painel-projetos/internal/handlers"
	"github.com/gestaopublica/painel-projetos/internal/middleware"
	"github.com/gestaopublica/painel-projetos/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Me       *handlers.MeHandler
	Project  *handlers.ProjectHandler
	Task     *handlers.TaskHandler
	Comment  *handlers.CommentHandler
	Timeline *handlers.TimelineHandler
	Upload   *handlers.UploadHandler
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	h Handlers,
	profiles *services.ProfileService,
	permissions *services.PermissionService,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Session introspection works for both anonymous and signed-in callers.
	api.Get("/me", middleware.JWTOptional(cfg), h.Me.Me)

	api.Post("/uploads",
		middleware.JWTProtected(cfg),
		middleware.ProfileSync(profiles),
		h.Upload.Upload)

	authed := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.ProfileSync(profiles),
	}
	manage := append(append([]fiber.Handler{}, authed...), middleware.ManagementRequired(permissions))

	projects := api.Group("/projects")

	// Registered ahead of the :id routes so "metrics" is not consumed as an id.
	projects.Get("/metrics", h.Project.Metrics)

	projects.Get("/", middleware.JWTOptional(cfg), h.Project.List)
	projects.Post("/", withHandlers(manage, h.Project.Create)...)
	projects.Put("/:id", withHandlers(manage, h.Project.Update)...)
	projects.Delete("/:id", withHandlers(manage, h.Project.Delete)...)

	projects.Get("/:id/tasks", h.Task.List)
	projects.Post("/:id/tasks", withHandlers(manage, h.Task.Create)...)
	projects.Put("/:id/tasks/:taskId", withHandlers(manage, h.Task.Update)...)
	projects.Delete("/:id/tasks/:taskId", withHandlers(manage, h.Task.Delete)...)

	projects.Get("/:id/comments", h.Comment.List)
	projects.Post("/:id/comments", withHandlers(authed, h.Comment.Create)...)
	projects.Put("/:id/comments/:commentId", withHandlers(authed, h.Comment.Update)...)
	projects.Delete("/:id/comments/:commentId", withHandlers(authed, h.Comment.Delete)...)

	projects.Get("/:id/timeline", h.Timeline.List)
	projects.Post("/:id/timeline", withHandlers(manage, h.Timeline.Create)...)
	projects.Put("/:id/timeline/:entryId", withHandlers(manage, h.Timeline.Update)...)
	projects.Delete("/:id/timeline/:entryId", withHandlers(manage, h.Timeline.Delete)...)
}

func withHandlers(chain []fiber.Handler, final fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, final)
}
