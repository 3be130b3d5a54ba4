package domain

import "time"

// Renewable is one trackable obligation (domain, license, contract) of a client.
type Renewable struct {
	ID                int64
	Name              string
	ClientID          int64
	TypeID            int64
	AssignedToID      *int64
	StartDate         time.Time
	EndDate           time.Time
	Amount            *int64
	ReminderIntervals ReminderIntervals // nil means "use the item type defaults"
	Notes             *string
	Status            RenewableStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive reports whether the renewable is still being tracked.
func (r *Renewable) IsActive() bool {
	return r.Status == RenewableStatusActive
}

// HasAssignee reports whether somebody is responsible for the renewal.
func (r *Renewable) HasAssignee() bool {
	return r.AssignedToID != nil
}

// ItemType is the default policy template for a category of renewables.
type ItemType struct {
	ID                       int64
	Name                     string
	DefaultRenewalPeriod     int // days, used when a renewable is created
	DefaultReminderIntervals ReminderIntervals
	CreatedAt                time.Time
}

// RenewableStats is the dashboard summary of the renewables table.
type RenewableStats struct {
	ClientCount    int `json:"client_count"`
	ActiveCount    int `json:"active_count"`
	UpcomingCount  int `json:"upcoming_count"`
	ExpiredCount   int `json:"expired_count"`
	UpcomingWindow int `json:"upcoming_window_days"`
}
