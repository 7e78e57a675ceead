package upstream

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Envelope is the {success, message, data} wrapper of the upstream API.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// DecodeEnvelope reads an upstream body. Objects carrying success or data are envelopes,
// anything else is bare data whose success follows the status code. Bodies that are not JSON
// decode to null data.
func DecodeEnvelope(status int, body []byte) Envelope {
	envelope := Envelope{Success: isSuccess(status)}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		envelope.Data = json.RawMessage("null")
		envelope.Message = http.StatusText(status)

		return envelope
	}

	if !json.Valid(body) {
		envelope.Data = json.RawMessage("null")
		envelope.Message = http.StatusText(status)

		return envelope
	}

	fields := map[string]json.RawMessage{}
	if body[0] != '{' || json.Unmarshal(body, &fields) != nil {
		envelope.Data = json.RawMessage(body)
		envelope.Message = http.StatusText(status)

		return envelope
	}

	_, hasSuccess := fields["success"]
	_, hasData := fields["data"]

	if !hasSuccess && !hasData {
		envelope.Data = json.RawMessage(body)
		envelope.Message = normalizeMessage(fields, status)

		return envelope
	}

	if hasSuccess {
		var success bool
		if err := json.Unmarshal(fields["success"], &success); err == nil {
			envelope.Success = success && isSuccess(status)
		}
	}

	envelope.Data = json.RawMessage("null")
	if hasData {
		envelope.Data = fields["data"]
	}

	for _, key := range []string{"meta", "pagination"} {
		if raw, ok := fields[key]; ok && !isNull(raw) {
			envelope.Meta = raw

			break
		}
	}

	envelope.Message = normalizeMessage(fields, status)

	return envelope
}

// normalizeMessage picks message, then error, then the first entry of errors, then the status text.
func normalizeMessage(fields map[string]json.RawMessage, status int) string {
	if msg := stringField(fields["message"]); msg != "" {
		return msg
	}

	if msg := stringField(fields["error"]); msg != "" {
		return msg
	}

	if raw, ok := fields["errors"]; ok {
		if msg := firstError(raw); msg != "" {
			return msg
		}
	}

	return http.StatusText(status)
}

func firstError(raw json.RawMessage) string {
	if msg := stringField(raw); msg != "" {
		return msg
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, entry := range list {
			if msg := stringField(entry); msg != "" {
				return msg
			}

			var object map[string]json.RawMessage
			if err := json.Unmarshal(entry, &object); err == nil {
				if msg := stringField(object["message"]); msg != "" {
					return msg
				}
			}
		}

		return ""
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return ""
	}

	// field name order keeps the message stable between calls
	for _, field := range slices.Sorted(maps.Keys(object)) {
		if msg := firstError(object[field]); msg != "" {
			return msg
		}
	}

	return ""
}

func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	return strings.TrimSpace(value)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
