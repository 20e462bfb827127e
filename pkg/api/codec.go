package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is a wire encoding for views and commands.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

var ErrUnknownFormat = errors.New("unknown wire format")

// ParseFormat accepts "json" or "msgpack", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Encode serialises v. JSON output is indented for humans.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(v)
	default:
		return nil, fmt.Errorf("encode %q: %w", f, ErrUnknownFormat)
	}
}

// Decode is the inverse of Encode.
func Decode(f Format, data []byte, v any) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatMsgpack:
		return msgpack.Unmarshal(data, v)
	default:
		return fmt.Errorf("decode %q: %w", f, ErrUnknownFormat)
	}
}
