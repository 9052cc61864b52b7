package duty

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

type rotaRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r rotaRequest) dates() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

func parseRotaRequest(c *fiber.Ctx) (*rotaRequest, error) {
	var req rotaRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func PreviewRotaAPI(c *fiber.Ctx) error {
	req, err := parseRotaRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	start, end := req.dates()

	plan, err := scheduler.PreviewDutyRota(config.GetDB(), start, end)
	if err != nil {
		return c.Status(rotaStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

func CommitRotaAPI(c *fiber.Ctx) error {
	req, err := parseRotaRequest(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	start, end := req.dates()

	plan, err := scheduler.CommitDutyRota(config.GetDB(), start, end, auth.CurrentStaffID(c))
	if err != nil {
		return c.Status(rotaStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(plan)
}

func GetRosterAPI(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date"})
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date"})
	}

	entries, err := database.GetDutyEntriesInRange(config.GetDB(), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch duty roster"})
	}
	return c.JSON(fiber.Map{"entries": entries, "count": len(entries)})
}

func GetTerrainAreasAPI(c *fiber.Ctx) error {
	areas, err := database.GetTerrainAreas(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch terrain areas"})
	}
	return c.JSON(fiber.Map{"areas": areas, "count": len(areas)})
}

func rotaStatus(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrInvalidInput):
		return 400
	case errors.Is(err, scheduler.ErrStateConflict):
		return 409
	}
	return 500
}
