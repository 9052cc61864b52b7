package models

import "time"

// EventLogEntry is an append-only audit record keyed by absence and
// optionally by substitute request.
type EventLogEntry struct {
	ID        string    `json:"id" db:"id"`
	AbsenceID string    `json:"absence_id" db:"absence_id"`
	RequestID *string   `json:"request_id,omitempty" db:"request_id"`
	EventType EventType `json:"event_type" db:"event_type"`
	Actor     string    `json:"actor" db:"actor"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NotificationIntent is a typed message produced by the scheduler for the
// external delivery layer. It carries a recipient class and, where known,
// the concrete staff ID, never a device address.
type NotificationIntent struct {
	Type        NotificationType `json:"type"`
	Recipient   RecipientClass   `json:"recipient"`
	RecipientID *string          `json:"recipient_id,omitempty"`
	AbsenceID   string           `json:"absence_id,omitempty"`
	RequestID   *string          `json:"request_id,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Message     string           `json:"message"`
}
