package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONTime wraps time.Time so we can control both JSON un/marshaling and
// SQL driver encoding. Date pickers submit bare "2006-01-02" dates while
// API clients send RFC3339; both must land in the same column.
type JSONTime time.Time

func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	// strip quotes
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*jt = JSONTime(time.Time{})
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	// no-timezone form some clients send
	const layoutNoFrac = "2006-01-02T15:04:05"
	if t, err := time.Parse(layoutNoFrac, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	// bare date from <input type="date">
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("JSONTime.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*jt = JSONTime(t)
	return nil
}

// MarshalJSON always emits full RFC3339.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	t := time.Time(jt)
	return json.Marshal(t.Format(time.RFC3339))
}

// Value implements driver.Valuer so GORM can bind JSONTime as a
// timestamp parameter.
func (jt JSONTime) Value() (driver.Value, error) {
	return time.Time(jt), nil
}

// Scan implements sql.Scanner so GORM can read timestamps back.
func (jt *JSONTime) Scan(src interface{}) error {
	if src == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*jt = JSONTime(v)
		return nil
	case []byte:
		t, err := parseDBTime(string(v))
		if err != nil {
			return err
		}
		*jt = JSONTime(t)
		return nil
	case string:
		t, err := parseDBTime(v)
		if err != nil {
			return err
		}
		*jt = JSONTime(t)
		return nil
	default:
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", src)
	}
}

func parseDBTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("JSONTime.Scan: parse %q failed", s)
}
