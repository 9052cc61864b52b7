package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// RotaInputs is the snapshot the rota builder works from. Preview and commit
// share the builder; only commit writes anything.
type RotaInputs struct {
	Days            []ResolvedDay
	Staff           []models.Staff             // duty-eligible, first-name ascending
	Areas           []models.TerrainArea
	AbsentByDate    map[string]map[string]bool
	TerrainPointer  int
	HomeworkPointer int
}

// RotaAssignment is one planned duty.
type RotaAssignment struct {
	Date            time.Time       `json:"date"`
	DutyType        models.DutyType `json:"duty_type"`
	TerrainAreaID   *string         `json:"terrain_area_id,omitempty"`
	TerrainAreaName string          `json:"terrain_area_name,omitempty"`
	StaffID         string          `json:"staff_id"`
	StaffName       string          `json:"staff_name"`
}

// RotaPlan is a full terrain+homework plan for a date range, plus the
// pointer values that must be persisted when the plan commits.
type RotaPlan struct {
	Terrain         []RotaAssignment `json:"terrain"`
	Homework        []RotaAssignment `json:"homework"`
	Warnings        []string         `json:"warnings,omitempty"`
	TerrainPointer  int              `json:"terrain_pointer"`
	HomeworkPointer int              `json:"homework_pointer"`
}

// BuildRota plans terrain and homework duties over the given school days.
// Homework (Mon-Thu) is filled first from descending first-name order, then
// each terrain area in sort order from ascending order. Within any Mon-Fri
// week the terrain set and the homework set stay disjoint, and nobody is
// double-booked on a date. Pure: no reads, no writes.
func BuildRota(in RotaInputs) *RotaPlan {
	plan := &RotaPlan{
		TerrainPointer:  in.TerrainPointer,
		HomeworkPointer: in.HomeworkPointer,
	}
	if len(in.Staff) == 0 {
		for range in.Days {
			plan.Warnings = append(plan.Warnings, "no duty-eligible staff")
		}
		return plan
	}

	asc := make([]models.Staff, len(in.Staff))
	copy(asc, in.Staff)
	SortByFirstName(asc)
	desc := make([]models.Staff, len(asc))
	for i, s := range asc {
		desc[len(asc)-1-i] = s
	}

	var weekMonday time.Time
	weekTerrain := map[string]bool{}
	weekHomework := map[string]bool{}

	for _, day := range in.Days {
		monday, _ := WeekBounds(day.Date)
		if !monday.Equal(weekMonday) {
			weekMonday = monday
			weekTerrain = map[string]bool{}
			weekHomework = map[string]bool{}
		}

		dateKey := day.Date.Format("2006-01-02")
		absent := in.AbsentByDate[dateKey]
		assignedToday := map[string]bool{}

		homeworkAssignee := ""
		if day.Date.Weekday() >= time.Monday && day.Date.Weekday() <= time.Thursday {
			idx, ok := nextEligible(desc, plan.HomeworkPointer, func(s models.Staff) bool {
				return !absent[s.ID] && !weekTerrain[s.ID]
			})
			if ok {
				chosen := desc[idx]
				plan.HomeworkPointer = (idx + 1) % len(desc)
				homeworkAssignee = chosen.ID
				weekHomework[chosen.ID] = true
				assignedToday[chosen.ID] = true
				plan.Homework = append(plan.Homework, RotaAssignment{
					Date:      day.Date,
					DutyType:  models.DutyHomework,
					StaffID:   chosen.ID,
					StaffName: chosen.DisplayName,
				})
			} else {
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("no eligible staff for homework duty on %s", dateKey))
			}
		}

		for _, area := range in.Areas {
			idx, ok := nextEligible(asc, plan.TerrainPointer, func(s models.Staff) bool {
				return !absent[s.ID] && s.ID != homeworkAssignee &&
					!weekHomework[s.ID] && !assignedToday[s.ID]
			})
			if !ok {
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("no eligible staff for terrain area %s on %s", area.Name, dateKey))
				continue
			}
			chosen := asc[idx]
			plan.TerrainPointer = (idx + 1) % len(asc)
			weekTerrain[chosen.ID] = true
			assignedToday[chosen.ID] = true
			areaID := area.ID
			plan.Terrain = append(plan.Terrain, RotaAssignment{
				Date:            day.Date,
				DutyType:        models.DutyTerrain,
				TerrainAreaID:   &areaID,
				TerrainAreaName: area.Name,
				StaffID:         chosen.ID,
				StaffName:       chosen.DisplayName,
			})
		}
	}
	return plan
}

// nextEligible walks the ordered staff list from the pointer, wrapping once,
// and returns the index of the first candidate passing the filter.
func nextEligible(staff []models.Staff, pointer int, ok func(models.Staff) bool) (int, bool) {
	n := len(staff)
	if n == 0 {
		return 0, false
	}
	for i := 0; i < n; i++ {
		idx := (pointer + i) % n
		if ok(staff[idx]) {
			return idx, true
		}
	}
	return 0, false
}

// PreviewDutyRota plans a rota for the range without writing anything.
func PreviewDutyRota(db *sql.DB, start, end time.Time) (*RotaPlan, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: rota range end before start", ErrInvalidInput)
	}
	settings, err := database.GetSettings(db)
	if err != nil {
		return nil, err
	}
	in, err := loadRotaInputs(db, start, end, settings)
	if err != nil {
		return nil, err
	}
	return BuildRota(*in), nil
}

// CommitDutyRota plans and persists a rota in one transaction, advancing the
// duty pointers with it. The range must contain no existing duty entries.
func CommitDutyRota(db *sql.DB, start, end time.Time, actor string) (*RotaPlan, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: rota range end before start", ErrInvalidInput)
	}
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	settings, err := database.GetSettingsForUpdate(tx)
	if err != nil {
		return nil, err
	}
	existing, err := database.CountDutyEntriesInRange(tx, start, end)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: %d duty entries already exist in range", ErrStateConflict, existing)
	}

	in, err := loadRotaInputs(tx, start, end, settings)
	if err != nil {
		return nil, err
	}
	plan := BuildRota(*in)

	for _, a := range append(append([]RotaAssignment{}, plan.Homework...), plan.Terrain...) {
		entry := &models.DutyRosterEntry{
			DutyDate:      a.Date,
			DutyType:      a.DutyType,
			TerrainAreaID: a.TerrainAreaID,
			StaffID:       a.StaffID,
		}
		if err := database.CreateDutyEntry(tx, entry); err != nil {
			return nil, err
		}
	}
	if err := database.UpdateDutyPointers(tx, settings.ID, plan.TerrainPointer, plan.HomeworkPointer); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return plan, nil
}

func loadRotaInputs(q database.Queryer, start, end time.Time, settings *models.SchedulerSettings) (*RotaInputs, error) {
	in := &RotaInputs{
		TerrainPointer:  settings.TerrainPointerIndex,
		HomeworkPointer: settings.HomeworkPointerIndex,
		AbsentByDate:    map[string]map[string]bool{},
	}
	var err error
	if in.Staff, err = database.GetDutyCandidates(q); err != nil {
		return nil, err
	}
	if in.Areas, err = database.GetTerrainAreas(q); err != nil {
		return nil, err
	}
	for _, date := range SchoolWeekdays(start, end) {
		day, err := ResolveDay(q, date, settings)
		if err != nil {
			return nil, err
		}
		if !day.IsSchoolDay {
			continue
		}
		in.Days = append(in.Days, *day)
		absent, err := database.GetAbsentStaffIDs(q, date)
		if err != nil {
			return nil, err
		}
		in.AbsentByDate[date.Format("2006-01-02")] = absent
	}
	return in, nil
}
