package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cruisedesk/shared/constant"
	"cruisedesk/shared/timezone"
)

const unixMillisThreshold = 1_000_000_000_000

// Timestamp accepts RFC3339, "2006-01-02 15:04:05", "2006-01-02" and unix seconds or milliseconds.
// Layouts without a zone are read in the application timezone.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	if data[0] != '"' {
		var seconds int64
		if err := json.Unmarshal(data, &seconds); err != nil {
			return fmt.Errorf("failed to decode timestamp: %w", err)
		}

		if seconds >= unixMillisThreshold {
			t.Time = timezone.ToAppTime(time.UnixMilli(seconds))
		} else {
			t.Time = timezone.ToAppTime(time.Unix(seconds, 0))
		}

		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to decode timestamp: %w", err)
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(timezone.Format(t.Time, constant.DateFormat))
}

// ParseTimestamp parses the layouts the upstream is known to emit. An empty string is the zero time.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return time.Time{}, nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return timezone.ToAppTime(parsed), nil
	}

	for _, layout := range []string{constant.DateTimeFormat, constant.DateOnlyFormat} {
		if parsed, err := timezone.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", value)
}
