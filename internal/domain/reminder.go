package domain

import "time"

// ReminderLog is the immutable audit record of one delivered reminder.
// EmailSentTo is a snapshot: it keeps the address the message actually went
// to even if the user's email changes later.
type ReminderLog struct {
	ID               int64     `json:"id"`
	RenewableID      int64     `json:"renewable_id"`
	SentToID         int64     `json:"sent_to_id"`
	SentAt           time.Time `json:"sent_at"`
	DaysBeforeExpiry int       `json:"days_before_expiry"`
	EmailContent     string    `json:"email_content"`
	EmailSentTo      string    `json:"email_sent_to"`
}

// DispatchKey identifies a reminder for one renewable, one matched interval
// and one calendar day. At most one reminder is sent per key.
type DispatchKey struct {
	RenewableID      int64
	DaysBeforeExpiry int
	SweepDate        time.Time
}

// NewDispatchKey builds a key, truncating day to its calendar date in day's location.
func NewDispatchKey(renewableID int64, daysBeforeExpiry int, day time.Time) DispatchKey {
	return DispatchKey{
		RenewableID:      renewableID,
		DaysBeforeExpiry: daysBeforeExpiry,
		SweepDate:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// ReminderMessage carries everything needed to render a reminder body.
type ReminderMessage struct {
	ClientName string
	ItemName   string
	ItemType   string
	ExpiryDate time.Time
	DaysLeft   int
	Notes      *string
}

// Email is one outgoing HTML message.
type Email struct {
	To      string
	Subject string
	HTML    string
}
