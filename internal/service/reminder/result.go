package reminder

import "time"

// Trigger names what started a sweep.
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

// String returns the string representation of the trigger.
func (t Trigger) String() string { return string(t) }

// SweepResult summarises one sweep. Per-renewable failures are counted
// here and logged; they never fail the sweep.
type SweepResult struct {
	Trigger    Trigger   `json:"trigger"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Evaluated is the number of renewables returned by the repository.
	Evaluated int `json:"evaluated"`
	// Due is the number of eligible renewables whose days left matched an interval.
	Due int `json:"due"`
	// Sent is the number of reminders delivered.
	Sent int `json:"sent"`
	// Skipped is the number of due reminders already sent earlier the same day.
	Skipped int `json:"skipped"`
	// Failed is the number of due reminders that could not be delivered.
	Failed int `json:"failed"`
}

// Duration returns how long the sweep took.
func (r SweepResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Status is a snapshot of the engine for health reporting. Last is nil
// until the first sweep finishes.
type Status struct {
	Running bool
	Last    *SweepResult
	LastErr error
}
