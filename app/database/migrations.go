package database

import (
	"database/sql"
	"log"
)

// migration is one forward schema step. Steps are applied in version order
// inside a transaction; schema_version records the highest applied step.
type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{1, "base schema", baseSchema},
	{2, "seed scheduler settings", seedSettings},
}

// RunMigrations applies pending schema migrations.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return err
	}

	var current sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&current); err != nil {
		return err
	}

	for _, m := range migrations {
		if current.Valid && int64(m.version) <= current.Int64 {
			continue
		}
		log.Printf("Applying migration %d: %s", m.version, m.name)
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.up); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES ($1)`, m.version); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

const baseSchema = `
CREATE TABLE IF NOT EXISTS terms (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	name TEXT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS venues (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	block TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT 'classroom',
	is_active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS staff (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	display_name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'teacher',
	can_substitute BOOLEAN NOT NULL DEFAULT true,
	can_do_duty BOOLEAN NOT NULL DEFAULT true,
	is_active BOOLEAN NOT NULL DEFAULT true,
	home_venue_id UUID REFERENCES venues(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS school_calendar (
	date DATE PRIMARY KEY,
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	cycle_day INTEGER,
	day_type TEXT NOT NULL DEFAULT 'academic',
	bell_variant TEXT NOT NULL DEFAULT 'none',
	is_school_day BOOLEAN NOT NULL DEFAULT false,
	term_id UUID REFERENCES terms(id),
	day_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS bell_slots (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	variant TEXT NOT NULL,
	slot_type TEXT NOT NULL,
	period_number INTEGER,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	is_teaching BOOLEAN NOT NULL DEFAULT false,
	is_break BOOLEAN NOT NULL DEFAULT false,
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS periods (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	number INTEGER NOT NULL UNIQUE,
	is_teaching BOOLEAN NOT NULL DEFAULT true,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS timetable_slots (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	staff_id UUID NOT NULL REFERENCES staff(id),
	cycle_day INTEGER NOT NULL,
	period_number INTEGER NOT NULL,
	class_name TEXT NOT NULL DEFAULT '',
	subject TEXT NOT NULL DEFAULT '',
	venue_id UUID REFERENCES venues(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (staff_id, cycle_day, period_number),
	UNIQUE (venue_id, cycle_day, period_number)
);

CREATE TABLE IF NOT EXISTS mentor_groups (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	name TEXT NOT NULL,
	grade INTEGER NOT NULL,
	mentor_id UUID NOT NULL UNIQUE REFERENCES staff(id),
	venue_id UUID REFERENCES venues(id)
);

CREATE TABLE IF NOT EXISTS grade_backups (
	grade INTEGER PRIMARY KEY,
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	backup_staff_id UUID NOT NULL REFERENCES staff(id),
	grade_head_staff_id UUID NOT NULL REFERENCES staff(id)
);

CREATE TABLE IF NOT EXISTS absences (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	staff_id UUID NOT NULL REFERENCES staff(id),
	start_date DATE NOT NULL,
	end_date DATE,
	is_open_ended BOOLEAN NOT NULL DEFAULT false,
	type TEXT NOT NULL DEFAULT 'sick',
	reason TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'reported',
	returned_early BOOLEAN NOT NULL DEFAULT false,
	returned_at TIMESTAMPTZ,
	reported_by TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (end_date IS NULL OR end_date >= start_date)
);

CREATE TABLE IF NOT EXISTS substitute_requests (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	absence_id UUID NOT NULL REFERENCES absences(id),
	request_date DATE NOT NULL,
	period_number INTEGER,
	is_mentor_duty BOOLEAN NOT NULL DEFAULT false,
	substitute_id UUID REFERENCES staff(id),
	fallback_level TEXT,
	class_name TEXT NOT NULL DEFAULT '',
	subject TEXT NOT NULL DEFAULT '',
	venue_code TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	declined_by UUID REFERENCES staff(id),
	decline_reason TEXT,
	declined_at TIMESTAMPTZ,
	cancel_reason TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- COALESCE keeps mentor-duty rows (NULL period) under the uniqueness rule too.
CREATE UNIQUE INDEX IF NOT EXISTS uq_requests_slot
	ON substitute_requests (absence_id, request_date, COALESCE(period_number, 0), is_mentor_duty);

CREATE TABLE IF NOT EXISTS terrain_areas (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	name TEXT NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS duty_roster (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	duty_date DATE NOT NULL,
	duty_type TEXT NOT NULL,
	terrain_area_id UUID REFERENCES terrain_areas(id),
	staff_id UUID NOT NULL REFERENCES staff(id),
	replacement_id UUID REFERENCES staff(id),
	replaced_for_id UUID REFERENCES absences(id),
	status TEXT NOT NULL DEFAULT 'scheduled',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (duty_date, duty_type, staff_id),
	CHECK ((duty_type = 'terrain') = (terrain_area_id IS NOT NULL))
);

CREATE TABLE IF NOT EXISTS duty_declines (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	duty_type TEXT NOT NULL,
	staff_id UUID NOT NULL REFERENCES staff(id),
	duty_description TEXT NOT NULL DEFAULT '',
	duty_date DATE NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	declined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sport_duties (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	event_name TEXT NOT NULL,
	duty_date DATE NOT NULL,
	staff_id UUID NOT NULL REFERENCES staff(id),
	coordinator_id UUID NOT NULL REFERENCES staff(id),
	venue_id UUID REFERENCES venues(id),
	start_time TEXT NOT NULL DEFAULT '',
	end_time TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS event_log (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL DEFAULT 'maragon',
	absence_id UUID NOT NULL REFERENCES absences(id),
	request_id UUID REFERENCES substitute_requests(id),
	event_type TEXT NOT NULL,
	actor TEXT NOT NULL DEFAULT '',
	details TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS scheduler_settings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	tenant_id TEXT NOT NULL UNIQUE DEFAULT 'maragon',
	pointer_surname TEXT NOT NULL DEFAULT 'A',
	terrain_pointer_index INTEGER NOT NULL DEFAULT 0,
	homework_pointer_index INTEGER NOT NULL DEFAULT 0,
	cycle_start_date DATE NOT NULL DEFAULT '2026-01-14',
	cycle_length INTEGER NOT NULL DEFAULT 7,
	decline_cutoff_minutes INTEGER NOT NULL DEFAULT 30,
	quiet_hours_start TEXT NOT NULL DEFAULT '20:00',
	quiet_hours_end TEXT NOT NULL DEFAULT '06:00',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_timetable_cycle_period ON timetable_slots (cycle_day, period_number);
CREATE INDEX IF NOT EXISTS idx_absences_staff_dates ON absences (staff_id, start_date);
CREATE INDEX IF NOT EXISTS idx_requests_absence ON substitute_requests (absence_id);
CREATE INDEX IF NOT EXISTS idx_requests_sub_date ON substitute_requests (substitute_id, request_date);
CREATE INDEX IF NOT EXISTS idx_duty_roster_date ON duty_roster (duty_date);
CREATE INDEX IF NOT EXISTS idx_event_log_absence ON event_log (absence_id, created_at);
`

const seedSettings = `
INSERT INTO scheduler_settings (tenant_id)
VALUES ('maragon')
ON CONFLICT (tenant_id) DO NOTHING;
`
