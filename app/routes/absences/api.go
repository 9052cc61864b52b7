package absences

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/config"
	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/routes/auth"
	"github.com/JohanBenade/schools-pwa-sub000/app/scheduler"
)

var validate = validator.New()

// domainStatus maps scheduler errors onto HTTP status codes.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrNotFound):
		return 404
	case errors.Is(err, scheduler.ErrInvalidInput):
		return 400
	case errors.Is(err, scheduler.ErrStateConflict):
		return 409
	}
	return 500
}

func ReportAbsenceAPI(c *fiber.Ctx) error {
	type ReportRequest struct {
		StaffID     string `json:"staff_id" validate:"required,uuid4"`
		StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
		EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
		IsOpenEnded bool   `json:"is_open_ended"`
		Type        string `json:"type"`
		Reason      string `json:"reason"`
		Process     bool   `json:"process"`
	}

	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	in := scheduler.ReportAbsenceInput{
		StaffID:     req.StaffID,
		StartDate:   start,
		IsOpenEnded: req.IsOpenEnded,
		Type:        req.Type,
		Reason:      req.Reason,
		ReportedBy:  auth.CurrentStaffID(c),
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
		}
		in.EndDate = &end
	}

	absence, err := scheduler.ReportAbsence(config.GetDB(), in)
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Process {
		result, err := scheduler.ProcessAbsence(config.GetDB(), absence.ID, in.ReportedBy)
		if err != nil {
			return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"absence": absence, "allocation": result})
	}
	return c.Status(201).JSON(fiber.Map{"absence": absence})
}

func ProcessAbsenceAPI(c *fiber.Ctx) error {
	result, err := scheduler.ProcessAbsence(config.GetDB(), c.Params("absenceId"), auth.CurrentStaffID(c))
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func MarkBackAPI(c *fiber.Ctx) error {
	type MarkBackRequest struct {
		ReturnDate string `json:"return_date" validate:"required,datetime=2006-01-02"`
	}
	var req MarkBackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	returnDate, _ := time.Parse("2006-01-02", req.ReturnDate)

	result, err := scheduler.MarkBack(config.GetDB(), c.Params("absenceId"), returnDate, auth.CurrentStaffID(c))
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func CancelAbsenceAPI(c *fiber.Ctx) error {
	type CancelRequest struct {
		Reason string `json:"reason" validate:"required"`
	}
	var req CancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := scheduler.CancelAbsence(config.GetDB(), c.Params("absenceId"), auth.CurrentStaffID(c), req.Reason)
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func DeclineRequestAPI(c *fiber.Ctx) error {
	type DeclineRequest struct {
		Reason string `json:"reason" validate:"required"`
	}
	var req DeclineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := scheduler.DeclineRequest(config.GetDB(), c.Params("requestId"), auth.CurrentStaffID(c), req.Reason, time.Now())
	if err != nil {
		if result != nil && result.Outcome == scheduler.DeclineTooLate {
			return c.Status(409).JSON(result)
		}
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func GetAbsenceEventsAPI(c *fiber.Ctx) error {
	events, err := scheduler.AbsenceEvents(config.GetDB(), c.Params("absenceId"))
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"events": events, "count": len(events)})
}

func GetOverviewAPI(c *fiber.Ctx) error {
	filter := scheduler.OverviewFilter(c.Query("filter", string(scheduler.OverviewToday)))
	var start, end time.Time
	if filter == scheduler.OverviewRange {
		var err error
		if start, err = time.Parse("2006-01-02", c.Query("start")); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date"})
		}
		if end, err = time.Parse("2006-01-02", c.Query("end")); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
		}
	}

	overview, err := scheduler.QueryOverview(config.GetDB(), filter, start, end, time.Now())
	if err != nil {
		return c.Status(domainStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(overview)
}

func ResolveDayAPI(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}
	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	day, err := scheduler.ResolveDay(config.GetDB(), date, settings)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve day"})
	}
	return c.JSON(day)
}

func GetBellSlotsAPI(c *fiber.Ctx) error {
	slots, err := database.GetBellSlots(config.GetDB(), c.Params("variant"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch bell slots"})
	}
	return c.JSON(fiber.Map{"slots": slots, "count": len(slots)})
}

func GetPeriodsAPI(c *fiber.Ctx) error {
	periods, err := database.GetPeriods(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch periods"})
	}
	return c.JSON(fiber.Map{"periods": periods, "count": len(periods)})
}
