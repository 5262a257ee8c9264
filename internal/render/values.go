package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// amountShape reports whether v is a compound amount: a sub-object with
// exactly the currency and value keys.
func amountShape(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 2 {
		return nil, false
	}
	if _, ok := m["currency"]; !ok {
		return nil, false
	}
	if _, ok := m["value"]; !ok {
		return nil, false
	}
	return m, true
}

// isPrimitive reports whether v renders as a single scalar cell.
func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, string, bool, float64, int, int64:
		return true
	default:
		return false
	}
}

// flatMap reports whether v is a plain key-value mapping, i.e. a map whose
// values are all primitives.
func flatMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, value := range m {
		if !isPrimitive(value) {
			return nil, false
		}
	}
	return m, true
}

func formatScalar(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprint(value)
	}
}

// cellValue renders a value for a table cell. Compound amounts collapse to
// "<value> <currency>"; other flat maps render as sorted key=value pairs.
func cellValue(v any) string {
	if amount, ok := amountShape(v); ok {
		return strings.TrimSpace(formatScalar(amount["value"]) + " " + formatScalar(amount["currency"]))
	}
	if m, ok := flatMap(v); ok {
		keys := make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, key+"="+formatScalar(m[key]))
		}
		return strings.Join(pairs, ", ")
	}
	return formatScalar(v)
}

// isoTimeLayouts pairs accepted ISO-8601 inputs with the layout used to
// emit the corresponding date/time cell.
var isoTimeLayouts = []struct {
	parse string
	emit  string
}{
	{time.RFC3339Nano, "2006-01-02 15:04:05Z07:00"},
	{"2006-01-02T15:04:05", "2006-01-02 15:04:05"},
	{"2006-01-02", "2006-01-02"},
}

// parseISOTime reformats an ISO-8601 date/time string as a native
// date/time cell. Non-date strings pass through unchanged via ok=false.
func parseISOTime(s string) (string, bool) {
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout.parse, s); err == nil {
			return t.Format(layout.emit), true
		}
	}
	return "", false
}

// csvValue renders a primitive for a CSV cell, coercing ISO-8601 strings
// into date/time cells.
func csvValue(v any) string {
	if s, ok := v.(string); ok {
		if formatted, ok := parseISOTime(s); ok {
			return formatted
		}
		return s
	}
	return formatScalar(v)
}
