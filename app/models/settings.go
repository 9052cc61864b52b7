package models

import "time"

// SchedulerSettings is the per-tenant singleton holding the fairness
// pointers and cycle configuration. Pointers advance monotonically modulo
// their domain inside the same transaction as the assignments they reflect.
type SchedulerSettings struct {
	ID                   string    `json:"id" db:"id"`
	TenantID             string    `json:"tenant_id" db:"tenant_id"`
	PointerSurname       string    `json:"pointer_surname" db:"pointer_surname"`
	TerrainPointerIndex  int       `json:"terrain_pointer_index" db:"terrain_pointer_index"`
	HomeworkPointerIndex int       `json:"homework_pointer_index" db:"homework_pointer_index"`
	CycleStartDate       time.Time `json:"cycle_start_date" db:"cycle_start_date"`
	CycleLength          int       `json:"cycle_length" db:"cycle_length"`
	DeclineCutoffMinutes int       `json:"decline_cutoff_minutes" db:"decline_cutoff_minutes"`
	QuietHoursStart      string    `json:"quiet_hours_start" db:"quiet_hours_start"`
	QuietHoursEnd        string    `json:"quiet_hours_end" db:"quiet_hours_end"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}
