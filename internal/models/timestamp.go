package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is local wall-clock time with microseconds and no zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp is a time.Time stored as an ISO-8601 string without a zone.
type Timestamp struct {
	time.Time
}

// String formats the timestamp in TimestampLayout.
func (ts Timestamp) String() string {
	return ts.Time.Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp in TimestampLayout.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts zone-less timestamps with or without a fraction, and
// RFC 3339 timestamps.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("lastModified must be a string: %w", err)
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

// ParseTimestamp parses a stored timestamp in local time.
func ParseTimestamp(raw string) (time.Time, error) {
	// Fractional seconds are optional when parsing this layout.
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}
