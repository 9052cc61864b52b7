package database

import (
	"database/sql"

	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

const settingsColumns = `id, tenant_id, pointer_surname, terrain_pointer_index, homework_pointer_index,
	cycle_start_date, cycle_length, decline_cutoff_minutes, quiet_hours_start, quiet_hours_end, updated_at`

// GetSettings reads the scheduler settings singleton.
func GetSettings(db Queryer) (*models.SchedulerSettings, error) {
	return scanSettings(db.QueryRow(`SELECT ` + settingsColumns + ` FROM scheduler_settings LIMIT 1`))
}

// GetSettingsForUpdate reads the singleton with a row lock. Concurrent
// allocations serialise here so the fairness pointers stay globally fair.
func GetSettingsForUpdate(tx *sql.Tx) (*models.SchedulerSettings, error) {
	return scanSettings(tx.QueryRow(`SELECT ` + settingsColumns + ` FROM scheduler_settings LIMIT 1 FOR UPDATE`))
}

func scanSettings(row *sql.Row) (*models.SchedulerSettings, error) {
	s := &models.SchedulerSettings{}
	err := row.Scan(
		&s.ID, &s.TenantID, &s.PointerSurname, &s.TerrainPointerIndex, &s.HomeworkPointerIndex,
		&s.CycleStartDate, &s.CycleLength, &s.DeclineCutoffMinutes,
		&s.QuietHoursStart, &s.QuietHoursEnd, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSubstitutePointer advances the A-Z rotation cursor. Called inside the
// same transaction as the assignments the new value reflects.
func UpdateSubstitutePointer(db Queryer, settingsID, pointer string) error {
	_, err := db.Exec(
		`UPDATE scheduler_settings SET pointer_surname = $1, updated_at = NOW() WHERE id = $2`,
		pointer, settingsID,
	)
	return err
}

// UpdateDutyPointers persists the terrain and homework rotation indexes.
func UpdateDutyPointers(db Queryer, settingsID string, terrainIdx, homeworkIdx int) error {
	_, err := db.Exec(
		`UPDATE scheduler_settings SET terrain_pointer_index = $1, homework_pointer_index = $2, updated_at = NOW()
		 WHERE id = $3`,
		terrainIdx, homeworkIdx, settingsID,
	)
	return err
}
