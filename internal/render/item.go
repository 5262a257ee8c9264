package render

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"molliectl/internal/mollie"
)

// RenderItem renders a single record in the requested mode.
func RenderItem(record mollie.Record, mode FormatMode) (string, error) {
	switch mode {
	case FormatJSON:
		return marshalJSON(record)
	case FormatTable:
		return renderItemTable(record), nil
	case FormatCSV:
		return renderItemCSV(record)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mode)
	}
}

func renderItemTable(record mollie.Record) string {
	rows := make([][]string, 0, len(record))
	for _, key := range itemFields(record) {
		rows = append(rows, []string{key, cellValue(record[key])})
	}

	title := "Properties of " + itemLabel(record) + ":"
	return fmt.Sprintf("%s\n%s\n", title, Grid([]string{"Property", "Value"}, rows))
}

func itemLabel(record mollie.Record) string {
	resource := record.Resource()
	if resource == "" {
		resource = "item"
	}
	if id := record.ID(); id != "" {
		return fmt.Sprintf("%s with id %s", resource, id)
	}
	return resource
}

// itemFields selects the fields shown in the item table view. Known
// resource types use their schema registry entry; unregistered types fall
// back to sorted key order with the reserved-marker, constant-name, and
// non-renderable exclusions applied.
func itemFields(record mollie.Record) []string {
	if schema, ok := itemSchemas[record.Resource()]; ok {
		fields := make([]string, 0, len(schema))
		for _, key := range schema {
			if value, ok := record[key]; ok && renderableItemValue(value) {
				fields = append(fields, key)
			}
		}
		return fields
	}

	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := keys[:0]
	for _, key := range keys {
		if strings.HasPrefix(key, "_") || isConstantName(key) {
			continue
		}
		if !renderableItemValue(record[key]) {
			continue
		}
		fields = append(fields, key)
	}
	return fields
}

// renderableItemValue accepts primitives and plain key-value mappings;
// nested structures stay out of the property table.
func renderableItemValue(v any) bool {
	if isPrimitive(v) {
		return true
	}
	_, ok := flatMap(v)
	return ok
}

// isConstantName reports whether a field name follows the all-uppercase
// constant convention.
func isConstantName(key string) bool {
	return key != "" && key == strings.ToUpper(key) && key != strings.ToLower(key)
}

func renderItemCSV(record mollie.Record) (string, error) {
	fields := flattenMap(record, "")

	headers := make([]string, 0, len(fields))
	row := make([]string, 0, len(fields))
	for _, field := range fields {
		headers = append(headers, field.key)
		row = append(row, csvValue(field.value))
	}

	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.Write(row); err != nil {
		return "", fmt.Errorf("write csv row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return builder.String(), nil
}
