package absences

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/routes/auth"
)

func SetupAbsencesRoutes(app *fiber.App) {
	api := app.Group("/api/absences")
	api.Use(auth.AuthMiddleware)

	api.Post("/", ReportAbsenceAPI)
	api.Post("/:absenceId/process", ProcessAbsenceAPI)
	api.Post("/:absenceId/markback", MarkBackAPI)
	api.Post("/:absenceId/cancel", auth.RequireManagement, CancelAbsenceAPI)
	api.Get("/:absenceId/events", GetAbsenceEventsAPI)
	api.Post("/requests/:requestId/decline", DeclineRequestAPI)
	api.Get("/overview", GetOverviewAPI)

	calendar := app.Group("/api/calendar")
	calendar.Use(auth.AuthMiddleware)
	calendar.Get("/resolve/:date", ResolveDayAPI)
	calendar.Get("/bells/:variant", GetBellSlotsAPI)
	calendar.Get("/periods", GetPeriodsAPI)
}
