package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	api := app.Group("/api/staff")
	api.Use(auth.AuthMiddleware)

	api.Get("/substitutes", GetSubstituteCandidatesAPI)
	api.Get("/management", GetManagementStaffAPI)
	api.Get("/:staffId", GetStaffAPI)
	api.Get("/:staffId/timetable/:cycleDay", GetStaffTimetableAPI)

	venues := app.Group("/api/venues")
	venues.Use(auth.AuthMiddleware)
	venues.Get("/:venueId/nearby", GetNearbyVenuesAPI)
}
