package transform

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned for payloads that are not valid UTF-8.
var ErrNotText = errors.New("payload is not valid UTF-8 text")

// Uppercase maps a UTF-8 text payload to its uppercase form. Binary payloads
// are rejected rather than silently corrupted.
func Uppercase(payload []byte) ([]byte, error) {
	if !utf8.Valid(payload) {
		return nil, ErrNotText
	}

	return []byte(strings.ToUpper(string(payload))), nil
}
