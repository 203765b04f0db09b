package entity

import (
	"fmt"
	"strings"
	"time"
)

// Layouts the booking backend emits. Slot and booking timestamps come back
// either as "2006-01-02 15:04:05" (implicitly UTC) or as ISO 8601.
var backendTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type UTCTime struct {
	time.Time
}

// ParseBackendTime parses a backend timestamp. Layouts without an explicit
// offset are interpreted as UTC.
func ParseBackendTime(s string) (UTCTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range backendTimeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return UTCTime{t.UTC()}, nil
		}
	}
	return UTCTime{}, fmt.Errorf("cannot parse backend time %q", s)
}

func (ut *UTCTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time value %s", s)
	}
	t, err := ParseBackendTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	ut.Time = t.Time
	return nil
}

func (ut UTCTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ut.UTC().Format(time.RFC3339) + `"`), nil
}
