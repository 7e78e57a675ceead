package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURL = errors.New("value is not a base64 data url")

func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a data url into its content type and payload.
func Decode(file string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(file, dataPrefix) {
		return "", nil, ErrNotDataURL
	}

	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrNotDataURL
	}

	encoded := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return contentType, data, nil
}

// DecodedSize is the payload size of a data url without decoding it.
func DecodedSize(file string) int {
	idx := strings.Index(file, base64Marker)
	if idx == -1 {
		return len(file)
	}

	encoded := file[idx+len(base64Marker):]

	return stdBase64.StdEncoding.DecodedLen(len(encoded)) - strings.Count(encoded[max(0, len(encoded)-2):], "=")
}
