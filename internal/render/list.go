package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"molliectl/internal/mollie"
)

// RenderList renders a sequence of records of the named resource type in
// the requested mode. Records appear in input order.
func RenderList(records []mollie.Record, resourceName string, mode FormatMode) (string, error) {
	switch mode {
	case FormatJSON:
		return marshalJSON(records)
	case FormatTable:
		return renderListTable(records, resourceName), nil
	case FormatCSV:
		return renderListCSV(records, resourceName)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mode)
	}
}

// marshalJSON serializes the raw payload with 4-space indentation. Map keys
// marshal in sorted order, so output is stable for identical input.
func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data) + "\n", nil
}

func renderListTable(records []mollie.Record, resourceName string) string {
	columns := projectionFor(resourceName)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Label
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = cellValue(record[col.Key])
		}
		rows = append(rows, row)
	}

	return fmt.Sprintf("List of %s:\n%s\n", resourceName, Grid(headers, rows))
}

type columnClass int

const (
	colPlain columnClass = iota
	colAmount
	colDropped
)

// classifyColumns decides, per projected column, how the CSV renderer
// treats it across all records: plain scalar, amount expanded into
// currency/value columns, or dropped entirely. A single unsupported value
// drops the column for every row so the output stays rectangular.
func classifyColumns(records []mollie.Record, columns []Column) []columnClass {
	classes := make([]columnClass, len(columns))
	for i, col := range columns {
		sawAmount := false
		sawScalar := false
		dropped := false
		for _, record := range records {
			value, ok := record[col.Key]
			if !ok || value == nil {
				continue
			}
			if isPrimitive(value) {
				sawScalar = true
				continue
			}
			if _, ok := amountShape(value); ok {
				sawAmount = true
				continue
			}
			dropped = true
			break
		}
		switch {
		case dropped, sawAmount && sawScalar:
			classes[i] = colDropped
		case sawAmount:
			classes[i] = colAmount
		default:
			classes[i] = colPlain
		}
	}
	return classes
}

func renderListCSV(records []mollie.Record, resourceName string) (string, error) {
	columns := projectionFor(resourceName)
	classes := classifyColumns(records, columns)

	headers := make([]string, 0, len(columns)+1)
	for i, col := range columns {
		switch classes[i] {
		case colPlain:
			headers = append(headers, col.Key)
		case colAmount:
			headers = append(headers, col.Key+"_currency", col.Key+"_value")
		}
	}

	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := make([]string, 0, len(headers))
		for i, col := range columns {
			value := record[col.Key]
			switch classes[i] {
			case colPlain:
				row = append(row, csvValue(value))
			case colAmount:
				if amount, ok := amountShape(value); ok {
					row = append(row, csvValue(amount["currency"]), csvValue(amount["value"]))
				} else {
					row = append(row, "", "")
				}
			}
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return builder.String(), nil
}
