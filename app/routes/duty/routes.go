package duty

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/routes/auth"
)

func SetupDutyRoutes(app *fiber.App) {
	api := app.Group("/api/duty")
	api.Use(auth.AuthMiddleware)

	api.Get("/roster", GetRosterAPI)
	api.Get("/areas", GetTerrainAreasAPI)

	// Rota generation is a management action.
	api.Post("/rota/preview", auth.RequireManagement, PreviewRotaAPI)
	api.Post("/rota/commit", auth.RequireManagement, CommitRotaAPI)
}
