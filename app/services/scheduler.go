package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/scheduler"
)

// StartRolloverJob schedules the open-ended absence rollover: every school
// morning the engine re-runs each open-ended absence so the day that just
// materialised gets its cover. Allocation is idempotent per slot, so re-runs
// never duplicate requests.
func StartRolloverJob(db *sql.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("30 5 * * MON-FRI", func() {
		RolloverOpenEndedAbsences(db)
	})
	if err != nil {
		log.Fatal("Failed to schedule rollover job:", err)
	}
	c.Start()
	log.Println("Rollover job scheduled for 05:30 on school days")
	return c
}

// RolloverOpenEndedAbsences re-allocates every open-ended absence. Failures
// are logged per absence; one bad absence never blocks the rest.
func RolloverOpenEndedAbsences(db *sql.DB) {
	absences, err := database.GetOpenEndedAbsences(db)
	if err != nil {
		log.Printf("Rollover: failed to list open-ended absences: %v", err)
		return
	}
	for _, a := range absences {
		result, err := scheduler.ProcessAbsence(db, a.ID, "rollover")
		if err != nil {
			log.Printf("Rollover: absence %s failed: %v", a.ID, err)
			continue
		}
		log.Printf("Rollover: absence %s now %s (%d assigned, %d pending)",
			a.ID, result.Status, result.AssignedCount, result.PendingCount)
	}
}
