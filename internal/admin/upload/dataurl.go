package upload

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
)

var ErrNotDataURL = errors.New("not a data URL")

// IsDataURL reports whether s is an inline data: URL rather than a link.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURL returns the media type and payload of a data: URL.
// Both base64 and percent-encoded payloads are accepted.
func DecodeDataURL(s string) (string, []byte, error) {
	if !IsDataURL(s) {
		return "", nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, errors.New("malformed data URL: missing payload")
	}

	mediaType := header
	isBase64 := false
	if strings.HasSuffix(header, ";base64") {
		mediaType = strings.TrimSuffix(header, ";base64")
		isBase64 = true
	}
	if mediaType == "" {
		mediaType = "text/plain;charset=US-ASCII"
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, err
		}
		return mediaType, data, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, err
	}
	return mediaType, []byte(decoded), nil
}
