// Package http contains the HTTP server components.
package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"noteshare/internal/noteshare/adapters/http/invites"
	"noteshare/internal/noteshare/adapters/http/middleware"
	"noteshare/internal/noteshare/adapters/http/notes"
	usecase "noteshare/internal/noteshare/app"
	"noteshare/internal/noteshare/ports/services"
)

// structValidator plugs go-playground/validator into fiber's body binding
// so request schemas are checked before any handler logic runs.
type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(out any) error {
	return v.validate.Struct(out)
}

// NewAppConfig builds the fiber configuration used by the service, with
// body validation enabled.
func NewAppConfig(readTimeout, writeTimeout time.Duration) fiber.Config {
	return fiber.Config{
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		StructValidator: &structValidator{validate: validator.New()},
	}
}

// SetupRouter wires the middleware chain and all routes.
func SetupRouter(
	app *fiber.App,
	tokens services.TokenService,
	userUC *usecase.UserUseCase,
	noteUC *usecase.NoteUseCase,
	inviteUC *usecase.InviteUseCase,
	inviteBaseURL string,
) {
	notesHandler := notes.NewHandler(noteUC)
	invitesHandler := invites.NewHandler(inviteUC, inviteBaseURL)

	// Middleware for all requests.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Everything under /api requires a resolved caller identity.
	api := app.Group("/api")
	api.Use(middleware.NewAuthMiddleware(tokens, userUC))

	notesRoutes := api.Group("/notes")
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Patch("/:note_id", notesHandler.PatchNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	api.Get("/boards/:board_id/notes", notesHandler.ListNotes)

	invitesRoutes := api.Group("/invites")
	invitesRoutes.Post("/", invitesHandler.SendInvite)
	invitesRoutes.Post("/:invite_id/accept", invitesHandler.AcceptInvite)

	api.Get("/friends", invitesHandler.GetFriends)

	// Handler for unknown routes.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})
}
