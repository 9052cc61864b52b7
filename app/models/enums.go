package models

// AbsenceStatus defines the lifecycle states of a reported absence.
type AbsenceStatus string

const (
	AbsenceReported  AbsenceStatus = "reported"
	AbsenceCovered   AbsenceStatus = "covered"
	AbsencePartial   AbsenceStatus = "partial"
	AbsenceEscalated AbsenceStatus = "escalated"
	AbsenceResolved  AbsenceStatus = "resolved"
	AbsenceCancelled AbsenceStatus = "cancelled"
)

// RequestStatus defines the states of a substitute request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAssigned  RequestStatus = "assigned"
	RequestDeclined  RequestStatus = "declined"
	RequestCancelled RequestStatus = "cancelled"
	RequestEscalated RequestStatus = "escalated"
)

// DutyType distinguishes the two roster duties.
type DutyType string

const (
	DutyTerrain  DutyType = "terrain"
	DutyHomework DutyType = "homework"
)

// DayType classifies a calendar date.
type DayType string

const (
	DayAcademic      DayType = "academic"
	DayExam          DayType = "exam"
	DayEvent         DayType = "event"
	DayTeachersOnly  DayType = "teachers_only"
	DayHoliday       DayType = "holiday"
	DayPublicHoliday DayType = "public_holiday"
	DayWeekend       DayType = "weekend"
)

// VenueType classifies a venue.
type VenueType string

const (
	VenueClassroom VenueType = "classroom"
	VenueFacility  VenueType = "facility"
	VenueOffice    VenueType = "office"
	VenueTerrain   VenueType = "terrain"
)

// StaffRole is the coarse role set used by the host.
type StaffRole string

const (
	RoleTeacher     StaffRole = "teacher"
	RolePrincipal   StaffRole = "principal"
	RoleDeputy      StaffRole = "deputy"
	RoleOffice      StaffRole = "office"
	RoleCoordinator StaffRole = "coordinator"
)

// SlotType identifies the kind of a bell schedule slot.
type SlotType string

const (
	SlotRegister SlotType = "register"
	SlotAssembly SlotType = "assembly"
	SlotPeriod   SlotType = "period"
	SlotBreak    SlotType = "break"
	SlotStudy    SlotType = "study"
	SlotClubs    SlotType = "clubs"
	SlotTest     SlotType = "test"
)

// FallbackLevel records which fallback covered a mentor register.
type FallbackLevel string

const (
	FallbackBackup    FallbackLevel = "backup"
	FallbackGradeHead FallbackLevel = "grade_head"
)

// EventType classifies event log entries.
type EventType string

const (
	EventAbsenceReported EventType = "absence_reported"
	EventSubAssigned     EventType = "substitute_assigned"
	EventNoCover         EventType = "no_cover"
	EventDeclined        EventType = "declined"
	EventReassigned      EventType = "reassigned"
	EventEarlyReturn     EventType = "early_return"
	EventNoReplacement   EventType = "no_replacement"
	EventDutyReassigned  EventType = "duty_reassigned"
	EventCancelled       EventType = "cancelled"
)

// NotificationType classifies notification intents. Delivery is external.
type NotificationType string

const (
	NotifySubstituteAssigned NotificationType = "substitute_assigned"
	NotifyAbsenceCovered     NotificationType = "absence_covered"
	NotifyAbsencePartial     NotificationType = "absence_partial"
	NotifyAbsenceReported    NotificationType = "absence_reported_to_management"
	NotifySubCancelled       NotificationType = "sub_cancelled"
	NotifyDutyCancelled      NotificationType = "duty_cancelled"
	NotifyTerrainReassigned  NotificationType = "terrain_reassigned"
	NotifySportDutyOrphaned  NotificationType = "sport_duty_orphaned"
	NotifyAllClear           NotificationType = "all_clear"
)

// RecipientClass names who an intent is addressed to, not how to reach them.
type RecipientClass string

const (
	RecipientAbsentTeacher    RecipientClass = "absent_teacher"
	RecipientNewSubstitute    RecipientClass = "new_substitute"
	RecipientOldSubstitute    RecipientClass = "displaced_substitute"
	RecipientEventCoordinator RecipientClass = "event_coordinator"
	RecipientManagement       RecipientClass = "management"
	RecipientDutyTeacher      RecipientClass = "duty_teacher"
)
