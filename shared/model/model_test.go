package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"cruisedesk/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.ID
		wantErr  bool
	}{
		{name: "string id", input: `"c-42"`, expected: "c-42"},
		{name: "string id is trimmed", input: `"  7 "`, expected: "7"},
		{name: "numeric id", input: `42`, expected: "42"},
		{name: "large numeric id keeps digits", input: `9007199254740993`, expected: "9007199254740993"},
		{name: "null id", input: `null`, expected: ""},
		{name: "boolean is rejected", input: `true`, wantErr: true},
		{name: "object is rejected", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id model.ID

			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		ID       model.ID `json:"id"`
		ParentID model.ID `json:"parent_id"`
	}{ID: "12"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"12","parent_id":null}`, string(payload))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		zero     bool
		wantErr  bool
	}{
		{name: "rfc3339", input: `"2025-03-01T10:00:00Z"`, expected: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "rfc3339 with offset", input: `"2025-03-01T17:00:00+07:00"`, expected: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "unix seconds", input: `1735689600`, expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "unix milliseconds", input: `1735689600000`, expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "null", input: `null`, zero: true},
		{name: "empty string", input: `""`, zero: true},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts model.Timestamp

			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			if tt.zero {
				assert.True(t, ts.IsZero())

				return
			}

			assert.True(t, tt.expected.Equal(ts.Time), "expected %s, got %s", tt.expected, ts.Time)
		})
	}
}

func TestTimestamp_LocalLayouts(t *testing.T) {
	var withTime, dateOnly model.Timestamp

	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01 08:30:00"`), &withTime))
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &dateOnly))

	assert.Equal(t, 8, withTime.Hour())
	assert.Equal(t, 30, withTime.Minute())
	assert.Equal(t, 1, dateOnly.Day())
	assert.Equal(t, time.March, dateOnly.Month())
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	zero, err := json.Marshal(model.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(zero))

	set, err := json.Marshal(model.NewTimestamp(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	var roundTrip model.Timestamp
	require.NoError(t, json.Unmarshal(set, &roundTrip))
	assert.True(t, roundTrip.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
}
