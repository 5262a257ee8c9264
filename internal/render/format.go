package render

import (
	"errors"
	"fmt"
	"strings"
)

// FormatMode selects the output renderer.
type FormatMode int

const (
	FormatTable FormatMode = iota
	FormatJSON
	FormatCSV
)

// ErrUnsupportedFormat is returned when a render call receives a mode that
// is not one of the recognized variants. Callers are expected to validate
// user input first; hitting this is a programming error, not bad input.
var ErrUnsupportedFormat = errors.New("unsupported formatting")

// AllFormats lists the accepted format names in flag-help order.
func AllFormats() []string {
	return []string{"table", "json", "csv"}
}

// ParseFormat converts a format name (case-insensitive) into a FormatMode.
func ParseFormat(value string) (FormatMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q (use one of: %s)", ErrUnsupportedFormat, value, strings.Join(AllFormats(), ", "))
	}
}

func (m FormatMode) String() string {
	switch m {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("format(%d)", int(m))
	}
}
