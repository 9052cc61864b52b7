package staff

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/JohanBenade/schools-pwa-sub000/app/config"
	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/scheduler"
)

func GetStaffAPI(c *fiber.Ctx) error {
	s, err := database.GetStaffByID(config.GetDB(), c.Params("staffId"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff member"})
	}
	return c.JSON(s)
}

func GetSubstituteCandidatesAPI(c *fiber.Ctx) error {
	candidates, err := database.GetSubstituteCandidates(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch candidates"})
	}
	return c.JSON(fiber.Map{"candidates": candidates, "count": len(candidates)})
}

func GetManagementStaffAPI(c *fiber.Ctx) error {
	ids, err := database.GetManagementStaffIDs(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch management staff"})
	}
	return c.JSON(fiber.Map{"staff_ids": ids, "count": len(ids)})
}

func GetStaffTimetableAPI(c *fiber.Ctx) error {
	cycleDay, err := strconv.Atoi(c.Params("cycleDay"))
	if err != nil || cycleDay < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cycle day"})
	}
	slots, err := database.GetSlotsByStaffAndCycleDay(config.GetDB(), c.Params("staffId"), cycleDay)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(fiber.Map{"slots": slots, "count": len(slots)})
}

func GetNearbyVenuesAPI(c *fiber.Ctx) error {
	venues, err := scheduler.NearestVenues(config.GetDB(), c.Params("venueId"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Venue not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch venues"})
	}
	return c.JSON(fiber.Map{"venues": venues, "count": len(venues)})
}
