package scheduler

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// PeriodResult is the allocation outcome for one coverage slot of a day.
type PeriodResult struct {
	RequestID      string                `json:"request_id"`
	PeriodNumber   *int                  `json:"period_number,omitempty"`
	IsMentorDuty   bool                  `json:"is_mentor_duty"`
	ClassName      string                `json:"class_name"`
	Subject        string                `json:"subject"`
	VenueCode      string                `json:"venue_code"`
	SubstituteID   *string               `json:"substitute_id,omitempty"`
	SubstituteName string                `json:"substitute_name,omitempty"`
	FallbackLevel  *models.FallbackLevel `json:"fallback_level,omitempty"`
	Status         models.RequestStatus  `json:"status"`
}

// DayResult is the allocation outcome for one date of an absence.
type DayResult struct {
	Date        time.Time      `json:"date"`
	CycleDay    *int           `json:"cycle_day,omitempty"`
	DayType     models.DayType `json:"day_type"`
	BellVariant string         `json:"bell_variant"`
	RollCall    *PeriodResult  `json:"roll_call,omitempty"`
	Periods     []PeriodResult `json:"periods"`
}

// ProcessResult summarises an allocation run over an absence.
type ProcessResult struct {
	AbsenceID     string                      `json:"absence_id"`
	StaffID       string                      `json:"staff_id"`
	Days          []DayResult                 `json:"days"`
	AssignedCount int                         `json:"assigned_count"`
	PendingCount  int                         `json:"pending_count"`
	Status        models.AbsenceStatus        `json:"status"`
	Notifications []models.NotificationIntent `json:"notifications"`
}

// ReportAbsenceInput is the caller's payload for reporting an absence.
type ReportAbsenceInput struct {
	StaffID     string     `json:"staff_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsOpenEnded bool       `json:"is_open_ended"`
	Type        string     `json:"type"`
	Reason      string     `json:"reason"`
	ReportedBy  string     `json:"reported_by"`
}

// ReportAbsence validates and records a new absence, then logs the report.
// It does not allocate cover; callers chain ProcessAbsence.
func ReportAbsence(db *sql.DB, in ReportAbsenceInput) (*models.Absence, error) {
	if in.IsOpenEnded && in.EndDate != nil {
		return nil, fmt.Errorf("%w: open-ended absence cannot carry an end date", ErrInvalidInput)
	}
	if !in.IsOpenEnded && in.EndDate == nil {
		return nil, fmt.Errorf("%w: absence needs an end date or the open-ended flag", ErrInvalidInput)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	staff, err := database.GetStaffByID(db, in.StaffID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: staff %s", ErrNotFound, in.StaffID)
	}
	if err != nil {
		return nil, err
	}
	if !staff.IsActive {
		return nil, fmt.Errorf("%w: staff %s is inactive", ErrInvalidInput, in.StaffID)
	}

	a := &models.Absence{
		StaffID:     in.StaffID,
		StartDate:   dateOnly(in.StartDate),
		IsOpenEnded: in.IsOpenEnded,
		Type:        in.Type,
		Reason:      in.Reason,
		Status:      models.AbsenceReported,
		ReportedBy:  in.ReportedBy,
	}
	if in.EndDate != nil {
		d := dateOnly(*in.EndDate)
		a.EndDate = &d
	}
	if err := database.CreateAbsence(db, a); err != nil {
		return nil, err
	}
	a.Staff = staff

	event := &models.EventLogEntry{
		AbsenceID: a.ID,
		EventType: models.EventAbsenceReported,
		Actor:     in.ReportedBy,
		Details:   fmt.Sprintf("absence reported for %s from %s", staff.DisplayName, a.StartDate.Format("2006-01-02")),
	}
	if err := database.AppendEvent(db, event); err != nil {
		return nil, err
	}
	return a, nil
}

// ProcessAbsence allocates cover for every school day of an absence. Each
// date runs in its own transaction holding the settings row lock, so the A-Z
// pointer and the full day's assignments commit together. The run is
// idempotent: slots that already carry a request are reported as-is.
func ProcessAbsence(db *sql.DB, absenceID, actor string) (*ProcessResult, error) {
	absence, err := database.GetAbsenceByID(db, absenceID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: absence %s", ErrNotFound, absenceID)
	}
	if err != nil {
		return nil, err
	}
	if absence.Status == models.AbsenceCancelled || absence.Status == models.AbsenceResolved {
		return nil, fmt.Errorf("%w: absence %s is %s", ErrStateConflict, absenceID, absence.Status)
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		return nil, err
	}
	end, err := effectiveEnd(db, absence)
	if err != nil {
		return nil, err
	}

	existing, err := existingRequestIndex(db, absenceID)
	if err != nil {
		return nil, err
	}

	buf := &IntentBuffer{}
	result := &ProcessResult{AbsenceID: absence.ID, StaffID: absence.StaffID}

	for _, date := range SchoolWeekdays(absence.StartDate, end) {
		day, err := ResolveDay(db, date, settings)
		if err != nil {
			return nil, err
		}
		if !day.IsSchoolDay {
			continue
		}
		dayRes, err := processDate(db, absence, day, existing, actor, buf)
		if err != nil {
			return nil, fmt.Errorf("allocating %s: %w", date.Format("2006-01-02"), err)
		}
		result.Days = append(result.Days, *dayRes)
	}

	for _, d := range result.Days {
		for _, p := range d.Periods {
			if p.Status == models.RequestAssigned {
				result.AssignedCount++
			} else {
				result.PendingCount++
			}
		}
	}

	status, err := recomputeAbsenceStatus(db, absence.ID)
	if err != nil {
		return nil, err
	}
	result.Status = status
	buf.Emit(absenceStatusIntent(absence.ID, status, absence.StaffID))
	result.Notifications = buf.Intents()
	return result, nil
}

// dayContext is the per-date occupancy snapshot the allocator filters
// against. It is loaded once inside the date transaction and mutated as
// assignments are made, so later periods see earlier picks.
type dayContext struct {
	day        *ResolvedDay
	candidates []models.Staff
	absent     map[string]bool
	homes      map[string]string
	load       map[string]int
	periods    map[int]*PeriodContext
}

func loadDayContext(tx database.Queryer, day *ResolvedDay) (*dayContext, error) {
	ctx := &dayContext{
		day:     day,
		load:    map[string]int{},
		periods: map[int]*PeriodContext{},
	}
	var err error
	if ctx.candidates, err = database.GetSubstituteCandidates(tx); err != nil {
		return nil, err
	}
	if ctx.absent, err = database.GetAbsentStaffIDs(tx, day.Date); err != nil {
		return nil, err
	}
	if ctx.homes, err = database.GetHomeVenueMap(tx); err != nil {
		return nil, err
	}

	if day.CycleDay != nil {
		slots, err := database.GetSlotsByCycleDay(tx, *day.CycleDay)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			pc := ctx.period(s.PeriodNumber)
			pc.TeachingStaff[s.StaffID] = true
			if s.VenueID != nil {
				pc.OccupiedVenues[*s.VenueID] = s.StaffID
			}
		}
	}

	loads, err := database.GetSubstituteLoadByDate(tx, day.Date)
	if err != nil {
		return nil, err
	}
	for _, l := range loads {
		ctx.load[l.StaffID]++
		if l.PeriodNumber != nil {
			ctx.period(*l.PeriodNumber).AssignedHere[l.StaffID] = true
		}
	}
	return ctx, nil
}

func (c *dayContext) period(n int) *PeriodContext {
	pc, ok := c.periods[n]
	if !ok {
		pc = &PeriodContext{
			TeachingStaff:  map[string]bool{},
			OccupiedVenues: map[string]string{},
			AssignedHere:   map[string]bool{},
		}
		c.periods[n] = pc
	}
	return pc
}

// recordAssignment folds a fresh pick into the snapshot.
func (c *dayContext) recordAssignment(staffID string, periodNumber int) {
	c.load[staffID]++
	c.period(periodNumber).AssignedHere[staffID] = true
}

// dropAssignment releases a slot after a decline, so the reassignment sees
// the decliner's period as free again.
func (c *dayContext) dropAssignment(staffID string, periodNumber int) {
	if c.load[staffID] > 0 {
		c.load[staffID]--
	}
	delete(c.period(periodNumber).AssignedHere, staffID)
}

// pickSubstitute applies the free-teacher rule for one period, preferring
// zero-load candidates, and selects by the A-Z pointer.
func (c *dayContext) pickSubstitute(periodNumber int, pointer byte, exclude map[string]bool) (models.Staff, bool) {
	free := FreeTeachers(*c.period(periodNumber), FreeSetFilter{
		Candidates: c.candidates,
		Absent:     c.absent,
		HomeVenues: c.homes,
		DailyLoad:  c.load,
		Exclude:    exclude,
	})
	fresh, loaded := SplitByLoad(free, c.load)
	if s, ok := PickByPointer(fresh, pointer); ok {
		return s, true
	}
	return PickByPointer(loaded, pointer)
}

func processDate(db *sql.DB, absence *models.Absence, day *ResolvedDay, existing map[string]models.SubstituteRequest, actor string, buf *IntentBuffer) (*DayResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	settings, err := database.GetSettingsForUpdate(tx)
	if err != nil {
		return nil, err
	}
	pointer := pointerByte(settings.PointerSurname)

	ctx, err := loadDayContext(tx, day)
	if err != nil {
		return nil, err
	}
	exclude := map[string]bool{absence.StaffID: true}

	dayRes := &DayResult{
		Date:        day.Date,
		CycleDay:    day.CycleDay,
		DayType:     day.DayType,
		BellVariant: day.BellVariant,
	}

	// Roll call first: the mentor register runs before period 1.
	rollCall, err := coverMentorDuty(tx, absence, day, existing, actor, buf)
	if err != nil {
		return nil, err
	}
	dayRes.RollCall = rollCall

	if day.CycleDay != nil {
		slots, err := database.GetSlotsByStaffAndCycleDay(tx, absence.StaffID, *day.CycleDay)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			if req, ok := existing[requestKey(day.Date, &slot.PeriodNumber, false)]; ok {
				dayRes.Periods = append(dayRes.Periods, resultFromRequest(req))
				continue
			}
			res, newPointer, err := allocateSlot(tx, ctx, absence, slot, pointer, exclude, actor, buf)
			if err != nil {
				return nil, err
			}
			pointer = newPointer
			dayRes.Periods = append(dayRes.Periods, *res)
		}
	}

	if err := handleDutyClashes(tx, ctx, absence, day, pointer, actor, buf); err != nil {
		return nil, err
	}

	if err := database.UpdateSubstitutePointer(tx, settings.ID, string(rune(pointer))); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return dayRes, nil
}

// allocateSlot covers one teaching period, advancing the pointer past the
// chosen initial on success.
func allocateSlot(tx *sql.Tx, ctx *dayContext, absence *models.Absence, slot models.TimetableSlot, pointer byte, exclude map[string]bool, actor string, buf *IntentBuffer) (*PeriodResult, byte, error) {
	period := slot.PeriodNumber
	req := &models.SubstituteRequest{
		AbsenceID:    absence.ID,
		RequestDate:  ctx.day.Date,
		PeriodNumber: &period,
		ClassName:    slot.ClassName,
		Subject:      slot.Subject,
		VenueCode:    slot.VenueCode,
		Status:       models.RequestPending,
	}

	chosen, found := ctx.pickSubstitute(period, pointer, exclude)
	if found {
		req.SubstituteID = &chosen.ID
		req.Status = models.RequestAssigned
	}

	inserted, err := database.InsertSubstituteRequest(tx, req)
	if err != nil {
		return nil, pointer, err
	}
	if !inserted {
		// A concurrent run won the slot; report it without side effects.
		fresh, err := database.GetRequestsByAbsence(tx, absence.ID)
		if err != nil {
			return nil, pointer, err
		}
		for _, r := range fresh {
			if sameDate(r.RequestDate, ctx.day.Date) && !r.IsMentorDuty && r.PeriodNumber != nil && *r.PeriodNumber == period {
				res := resultFromRequest(r)
				return &res, pointer, nil
			}
		}
		return nil, pointer, fmt.Errorf("request for period %d vanished", period)
	}

	if found {
		ctx.recordAssignment(chosen.ID, period)
		event := &models.EventLogEntry{
			AbsenceID: absence.ID,
			RequestID: &req.ID,
			EventType: models.EventSubAssigned,
			Actor:     actor,
			Details:   fmt.Sprintf("period %d (%s, %s) assigned to %s", period, slot.ClassName, slot.Subject, chosen.DisplayName),
		}
		if err := database.AppendEvent(tx, event); err != nil {
			return nil, pointer, err
		}
		buf.Emit(substituteAssignedIntent(absence.ID, req.ID, chosen.ID, ctx.day.Date,
			fmt.Sprintf("You cover %s (%s), period %d, venue %s.", slot.ClassName, slot.Subject, period, slot.VenueCode)))
		res := resultFromRequest(*req)
		res.SubstituteName = chosen.DisplayName
		return &res, NextPointer(chosen.Initial()), nil
	}

	event := &models.EventLogEntry{
		AbsenceID: absence.ID,
		RequestID: &req.ID,
		EventType: models.EventNoCover,
		Actor:     actor,
		Details:   fmt.Sprintf("no free teacher for period %d (%s)", period, slot.ClassName),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return nil, pointer, err
	}
	res := resultFromRequest(*req)
	return &res, pointer, nil
}

// coverMentorDuty assigns the roll-call register through the grade backup
// chain: configured backup first, then the grade head. No pointer is
// consumed; the chain is fixed configuration, not rotation.
func coverMentorDuty(tx *sql.Tx, absence *models.Absence, day *ResolvedDay, existing map[string]models.SubstituteRequest, actor string, buf *IntentBuffer) (*PeriodResult, error) {
	group, err := database.GetMentorGroupByMentor(tx, absence.StaffID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	if req, ok := existing[requestKey(day.Date, nil, true)]; ok {
		res := resultFromRequest(req)
		return &res, nil
	}

	venueCode := ""
	if group.VenueID != nil {
		if v, err := database.GetVenueByID(tx, *group.VenueID); err == nil && v != nil {
			venueCode = v.Code
		}
	}

	req := &models.SubstituteRequest{
		AbsenceID:    absence.ID,
		RequestDate:  day.Date,
		IsMentorDuty: true,
		ClassName:    group.Name,
		Subject:      "Register",
		VenueCode:    venueCode,
		Status:       models.RequestPending,
	}

	chosen, level, err := mentorFallback(tx, absence.StaffID, day.Date, map[string]bool{absence.StaffID: true})
	if err != nil {
		return nil, err
	}
	if chosen != "" {
		req.SubstituteID = &chosen
		req.FallbackLevel = &level
		req.Status = models.RequestAssigned
	}

	inserted, err := database.InsertSubstituteRequest(tx, req)
	if err != nil {
		return nil, err
	}
	if !inserted {
		res := resultFromRequest(*req)
		return &res, nil
	}

	if chosen != "" {
		event := &models.EventLogEntry{
			AbsenceID: absence.ID,
			RequestID: &req.ID,
			EventType: models.EventSubAssigned,
			Actor:     actor,
			Details:   fmt.Sprintf("register for %s covered by %s fallback", group.Name, level),
		}
		if err := database.AppendEvent(tx, event); err != nil {
			return nil, err
		}
		buf.Emit(substituteAssignedIntent(absence.ID, req.ID, chosen, day.Date,
			fmt.Sprintf("You take the %s register at roll call.", group.Name)))
	} else {
		event := &models.EventLogEntry{
			AbsenceID: absence.ID,
			RequestID: &req.ID,
			EventType: models.EventNoCover,
			Actor:     actor,
			Details:   fmt.Sprintf("no backup available for the %s register", group.Name),
		}
		if err := database.AppendEvent(tx, event); err != nil {
			return nil, err
		}
	}
	res := resultFromRequest(*req)
	return &res, nil
}

// handleDutyClashes clears the absent teacher out of the day's duties: roster
// duties get reassigned, sport duties get flagged to their coordinator, and
// substitutions the absent teacher holds for other absences are declined and
// rerun through the free-teacher rule.
func handleDutyClashes(tx *sql.Tx, ctx *dayContext, absence *models.Absence, day *ResolvedDay, pointer byte, actor string, buf *IntentBuffer) error {
	dates := []time.Time{day.Date}

	duties, err := database.GetDutyEntriesByStaffOnDates(tx, absence.StaffID, dates)
	if err != nil {
		return err
	}
	for _, d := range openDutyEntries(duties) {
		if _, err := ReassignDuty(tx, d, absence.ID, "absent", actor, buf); err != nil {
			return err
		}
	}

	sports, err := database.GetSportDutiesByStaffOnDates(tx, absence.StaffID, dates)
	if err != nil {
		return err
	}
	for _, s := range sports {
		buf.Emit(sportDutyOrphanedIntent(absence.ID, s.CoordinatorID, s.DutyDate, s.EventName))
	}

	held, err := database.GetAssignedRequestsBySubstitute(tx, absence.StaffID, dates)
	if err != nil {
		return err
	}
	for _, r := range held {
		if r.AbsenceID == absence.ID {
			continue
		}
		if err := reassignHeldRequest(tx, ctx, r, absence.StaffID, pointer, actor, buf); err != nil {
			return err
		}
	}
	return nil
}

// reassignHeldRequest takes a substitution the newly absent teacher was
// holding for a different absence, declines it with reason "absent" and
// reruns allocation for that slot. The pointer is read but never advanced;
// reassignments are repairs, not new rotation turns.
func reassignHeldRequest(tx *sql.Tx, ctx *dayContext, req models.SubstituteRequest, absentStaffID string, pointer byte, actor string, buf *IntentBuffer) error {
	if err := database.MarkRequestDeclined(tx, req.ID, absentStaffID, "absent", time.Now()); err != nil {
		return err
	}
	other, err := database.GetAbsenceByID(tx, req.AbsenceID)
	if err != nil {
		return err
	}
	event := &models.EventLogEntry{
		AbsenceID: req.AbsenceID,
		RequestID: &req.ID,
		EventType: models.EventDeclined,
		Actor:     actor,
		Details:   "substitute is absent; slot released",
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return err
	}

	if req.PeriodNumber != nil {
		ctx.dropAssignment(absentStaffID, *req.PeriodNumber)
	}
	exclude := map[string]bool{absentStaffID: true, other.StaffID: true}

	var chosenID, chosenName string
	found := false
	if req.IsMentorDuty {
		// Register cover retries the grade backup chain, not the pointer.
		id, _, err := mentorFallback(tx, other.StaffID, req.RequestDate, exclude)
		if err != nil {
			return err
		}
		if id != "" {
			s, err := database.GetStaffByID(tx, id)
			if err != nil {
				return err
			}
			chosenID, chosenName = s.ID, s.DisplayName
			found = true
		}
	} else if req.PeriodNumber != nil {
		if s, ok := ctx.pickSubstitute(*req.PeriodNumber, pointer, exclude); ok {
			chosenID, chosenName = s.ID, s.DisplayName
			found = true
		}
	}
	if !found {
		if err := database.EscalateRequest(tx, req.ID); err != nil {
			return err
		}
		event := &models.EventLogEntry{
			AbsenceID: req.AbsenceID,
			RequestID: &req.ID,
			EventType: models.EventNoCover,
			Actor:     actor,
			Details:   fmt.Sprintf("no replacement for %s after substitute absence", heldSlotName(req)),
		}
		if err := database.AppendEvent(tx, event); err != nil {
			return err
		}
		_, err := recomputeAbsenceStatus(tx, req.AbsenceID)
		return err
	}

	if err := database.AssignRequest(tx, req.ID, chosenID); err != nil {
		return err
	}
	if req.PeriodNumber != nil {
		ctx.recordAssignment(chosenID, *req.PeriodNumber)
	}
	event = &models.EventLogEntry{
		AbsenceID: req.AbsenceID,
		RequestID: &req.ID,
		EventType: models.EventReassigned,
		Actor:     actor,
		Details:   fmt.Sprintf("%s reassigned to %s", heldSlotName(req), chosenName),
	}
	if err := database.AppendEvent(tx, event); err != nil {
		return err
	}
	buf.Emit(substituteAssignedIntent(req.AbsenceID, req.ID, chosenID, req.RequestDate,
		heldSlotDetail(req)))
	_, err = recomputeAbsenceStatus(tx, req.AbsenceID)
	return err
}

func heldSlotName(req models.SubstituteRequest) string {
	if req.IsMentorDuty {
		return fmt.Sprintf("the %s register", req.ClassName)
	}
	return fmt.Sprintf("period %d", *req.PeriodNumber)
}

func heldSlotDetail(req models.SubstituteRequest) string {
	if req.IsMentorDuty {
		return fmt.Sprintf("You take the %s register at roll call.", req.ClassName)
	}
	return fmt.Sprintf("You cover %s (%s), period %d, venue %s.",
		req.ClassName, req.Subject, *req.PeriodNumber, req.VenueCode)
}

// recomputeAbsenceStatus rolls teaching-period request states up into the
// absence status. Mentor-duty requests never gate the rollup; a register
// always has a fixed escalation path of its own.
func recomputeAbsenceStatus(q database.Queryer, absenceID string) (models.AbsenceStatus, error) {
	reqs, err := database.GetRequestsByAbsence(q, absenceID)
	if err != nil {
		return "", err
	}
	assigned, open := 0, 0
	for _, r := range reqs {
		if r.IsMentorDuty {
			continue
		}
		switch r.Status {
		case models.RequestAssigned:
			assigned++
		case models.RequestPending, models.RequestEscalated:
			open++
		}
	}
	status := models.AbsenceCovered
	if open > 0 {
		if assigned > 0 {
			status = models.AbsencePartial
		} else {
			status = models.AbsenceEscalated
		}
	}
	return status, database.UpdateAbsenceStatus(q, absenceID, status)
}

// effectiveEnd resolves the last date to allocate for. Open-ended absences
// run to the end of the current term, or 14 school days when the start falls
// outside any seeded term.
func effectiveEnd(db database.Queryer, a *models.Absence) (time.Time, error) {
	if !a.IsOpenEnded && a.EndDate != nil {
		return dateOnly(*a.EndDate), nil
	}
	term, err := database.GetTermForDate(db, a.StartDate)
	if err != nil {
		return time.Time{}, err
	}
	if term != nil {
		return dateOnly(term.EndDate), nil
	}
	d := dateOnly(a.StartDate)
	for count := 0; count < 14; {
		d = d.AddDate(0, 0, 1)
		if !IsWeekend(d) {
			count++
		}
	}
	return d, nil
}

func existingRequestIndex(db database.Queryer, absenceID string) (map[string]models.SubstituteRequest, error) {
	reqs, err := database.GetRequestsByAbsence(db, absenceID)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]models.SubstituteRequest, len(reqs))
	for _, r := range reqs {
		if r.Status == models.RequestCancelled {
			continue
		}
		idx[requestKey(r.RequestDate, r.PeriodNumber, r.IsMentorDuty)] = r
	}
	return idx, nil
}

func requestKey(date time.Time, period *int, mentor bool) string {
	p := 0
	if period != nil {
		p = *period
	}
	return fmt.Sprintf("%s|%d|%t", date.Format("2006-01-02"), p, mentor)
}

func resultFromRequest(r models.SubstituteRequest) PeriodResult {
	res := PeriodResult{
		RequestID:     r.ID,
		PeriodNumber:  r.PeriodNumber,
		IsMentorDuty:  r.IsMentorDuty,
		ClassName:     r.ClassName,
		Subject:       r.Subject,
		VenueCode:     r.VenueCode,
		SubstituteID:  r.SubstituteID,
		FallbackLevel: r.FallbackLevel,
		Status:        r.Status,
	}
	if r.Substitute != nil {
		res.SubstituteName = r.Substitute.DisplayName
	}
	return res
}

func pointerByte(s string) byte {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return 'A'
	}
	return s[0]
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
