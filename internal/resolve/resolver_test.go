package resolve_test

import (
	"errors"
	"strings"
	"testing"

	"molliectl/internal/mollie"
	"molliectl/internal/resolve"
)

func descriptors() []mollie.Descriptor {
	return mollie.SupportedResources()
}

func TestByHintExactMatch(t *testing.T) {
	name, err := resolve.ByHint("payments", descriptors())
	if err != nil {
		t.Fatalf("ByHint returned error: %v", err)
	}
	if name != "payments" {
		t.Fatalf("expected payments, got %q", name)
	}
}

func TestByHintExactMatchWinsOverSubstring(t *testing.T) {
	// "orders" is also a substring of a hypothetical longer name; an exact
	// hit must win without considering other candidates.
	known := []mollie.Descriptor{
		{Name: "orders"},
		{Name: "orderlines"},
	}
	name, err := resolve.ByHint("orders", known)
	if err != nil {
		t.Fatalf("ByHint returned error: %v", err)
	}
	if name != "orders" {
		t.Fatalf("expected orders, got %q", name)
	}
}

func TestByHintSingleSubstringMatch(t *testing.T) {
	name, err := resolve.ByHint("cust", descriptors())
	if err != nil {
		t.Fatalf("ByHint returned error: %v", err)
	}
	if name != "customers" {
		t.Fatalf("expected customers, got %q", name)
	}
}

func TestByHintUnknownResource(t *testing.T) {
	_, err := resolve.ByHint("mandates", descriptors())
	if !errors.Is(err, resolve.ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
	for _, name := range []string{"payments", "refunds", "customers", "orders", "profiles", "clients"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error message should list %q: %v", name, err)
		}
	}
}

func TestByHintAmbiguousResource(t *testing.T) {
	// "r" appears in refunds, customers, orders, and profiles.
	_, err := resolve.ByHint("r", descriptors())
	if !errors.Is(err, resolve.ErrAmbiguousResource) {
		t.Fatalf("expected ErrAmbiguousResource, got %v", err)
	}
	for _, name := range []string{"refunds", "customers", "orders", "profiles"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error message should list candidate %q: %v", name, err)
		}
	}
	if strings.Contains(err.Error(), "clients") {
		t.Fatalf("error message should not list non-matching names: %v", err)
	}
}

func TestByID(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"tr_WDqYK6vllg", "payments"},
		{"re_4qqhO89gsT", "refunds"},
		{"cst_8wmqcHMN4U", "customers"},
		{"ord_pbjz8x", "orders"},
		{"pfl_v9hTwCvYqw", "profiles"},
		{"org_12345678", "clients"},
	}
	for _, tc := range cases {
		name, err := resolve.ByID(tc.id, descriptors())
		if err != nil {
			t.Fatalf("ByID(%q) returned error: %v", tc.id, err)
		}
		if name != tc.want {
			t.Fatalf("ByID(%q) = %q, want %q", tc.id, name, tc.want)
		}
	}
}

func TestByIDUnrecognized(t *testing.T) {
	_, err := resolve.ByID("sub_rVKGtNd6s3", descriptors())
	if !errors.Is(err, resolve.ErrUnrecognizedID) {
		t.Fatalf("expected ErrUnrecognizedID, got %v", err)
	}
}
