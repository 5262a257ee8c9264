package render_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"molliectl/internal/mollie"
	"molliectl/internal/render"
)

func TestRenderItemTableKnownResource(t *testing.T) {
	record := mollie.Record{
		"resource":    "payment",
		"id":          "tr_WDqYK6vllg",
		"status":      "paid",
		"description": "Order #12345",
		"amount":      map[string]any{"currency": "EUR", "value": "10.00"},
		"_links":      map[string]any{"self": map[string]any{"href": "x"}},
	}

	out, err := render.RenderItem(record, render.FormatTable)
	if err != nil {
		t.Fatalf("RenderItem returned error: %v", err)
	}

	requireContains(t, out, "Properties of payment with id tr_WDqYK6vllg:")
	requireContains(t, out, "Property")
	requireContains(t, out, "Value")
	requireContains(t, out, "Order #12345")
	requireContains(t, out, "10.00 EUR")
	requireNotContains(t, out, "_links")
}

func TestRenderItemTableFallbackExclusions(t *testing.T) {
	record := mollie.Record{
		"resource":  "widget",
		"id":        "w_1",
		"name":      "gadget",
		"_internal": "hidden",
		"MODES":     "hidden too",
		"details":   map[string]any{"deep": map[string]any{"a": "b"}},
		"labels":    []any{"x", "y"},
	}

	out, err := render.RenderItem(record, render.FormatTable)
	if err != nil {
		t.Fatalf("RenderItem returned error: %v", err)
	}

	requireContains(t, out, "Properties of widget with id w_1:")
	requireContains(t, out, "gadget")
	requireNotContains(t, out, "_internal")
	requireNotContains(t, out, "MODES")
	// details nests a second level, so it is not a plain key-value mapping.
	requireNotContains(t, out, "details")
	requireNotContains(t, out, "labels")
}

func TestRenderItemTableFlatMapAllowed(t *testing.T) {
	record := mollie.Record{
		"resource": "widget",
		"id":       "w_1",
		"metadata": map[string]any{"order_id": "12345", "retries": float64(2)},
	}

	out, err := render.RenderItem(record, render.FormatTable)
	if err != nil {
		t.Fatalf("RenderItem returned error: %v", err)
	}
	requireContains(t, out, "metadata")
	requireContains(t, out, "order_id=12345")
	requireContains(t, out, "retries=2")
}

func TestRenderItemCSVFlattensNested(t *testing.T) {
	record := mollie.Record{
		"resource": "payment",
		"id":       "tr_1",
		"amount":   map[string]any{"currency": "EUR", "value": "10.00"},
		"details": map[string]any{
			"_links": map[string]any{"self": map[string]any{"href": "x"}},
			"note":   "hello",
		},
		"_links": map[string]any{"self": map[string]any{"href": "x"}},
	}

	out, err := render.RenderItem(record, render.FormatCSV)
	if err != nil {
		t.Fatalf("RenderItem returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one header and one data row:\n%s", out)
	}
	requireContains(t, lines[0], "amount_currency")
	requireContains(t, lines[0], "amount_value")
	requireContains(t, lines[0], "details_note")
	requireNotContains(t, out, "_links")
	requireContains(t, lines[1], "EUR")
	requireContains(t, lines[1], "hello")
}

func TestRenderItemJSONRoundTrip(t *testing.T) {
	record := mollie.Record{
		"resource": "customer",
		"id":       "cst_1",
		"metadata": map[string]any{"segment": "retail"},
		"_links":   map[string]any{"self": map[string]any{"href": "x"}},
	}

	out, err := render.RenderItem(record, render.FormatJSON)
	if err != nil {
		t.Fatalf("RenderItem returned error: %v", err)
	}

	var parsed mollie.Record
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(parsed, record) {
		t.Fatalf("round trip mismatch:\n%#v\n%#v", parsed, record)
	}
}

func TestRenderItemUnsupportedFormat(t *testing.T) {
	out, err := render.RenderItem(mollie.Record{"id": "tr_1"}, render.FormatMode(-1))
	if !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range render.AllFormats() {
		if _, err := render.ParseFormat(name); err != nil {
			t.Fatalf("ParseFormat(%q) returned error: %v", name, err)
		}
	}
	if _, err := render.ParseFormat("yaml"); !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat for yaml, got %v", err)
	}
}
