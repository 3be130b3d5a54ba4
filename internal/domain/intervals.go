package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultReminderIntervals is used for item types created without intervals.
var DefaultReminderIntervals = ReminderIntervals{30, 15, 7}

// ReminderIntervals is an ordered list of "days before expiry" on which a
// reminder is due.
type ReminderIntervals []int

// Contains reports whether days matches one of the intervals exactly.
func (ri ReminderIntervals) Contains(days int) bool {
	return slices.Contains(ri, days)
}

// IsEmpty reports whether there are no intervals.
func (ri ReminderIntervals) IsEmpty() bool {
	return len(ri) == 0
}

// Validate rejects negative intervals.
func (ri ReminderIntervals) Validate() error {
	for _, d := range ri {
		if d < 0 {
			return NewValidationError("reminder_intervals", fmt.Sprintf("interval %d must be >= 0", d))
		}
	}
	return nil
}

// ParseReminderIntervals decodes a stored interval column. Rows written by
// older versions hold either a JSON array, a JSON string containing an array,
// or a bare comma separated list. NULL and empty input yield nil.
func ParseReminderIntervals(raw []byte) (ReminderIntervals, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("decode intervals string: %w", err)
		}
		return ParseReminderIntervals([]byte(inner))
	}

	if raw[0] == '[' {
		var out []int
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode intervals array: %w", err)
		}
		if len(out) == 0 {
			return nil, nil
		}
		return out, nil
	}

	parts := strings.Split(string(raw), ",")
	out := make(ReminderIntervals, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", p, err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// MarshalIntervals encodes intervals for a JSONB column. nil encodes as SQL NULL.
func MarshalIntervals(ri ReminderIntervals) ([]byte, error) {
	if ri == nil {
		return nil, nil
	}
	return json.Marshal([]int(ri))
}
