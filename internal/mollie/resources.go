package mollie

// Descriptor describes one resource type the client can address.
type Descriptor struct {
	// Name is the plural resource name used in API paths, e.g. "payments".
	Name string
	// IDPrefix is the literal prefix every ID of this type carries, e.g. "tr_".
	IDPrefix string
	// SupportsGet reports whether the type exposes a top-level get-by-ID call.
	SupportsGet bool
	// SupportsList reports whether the type exposes a top-level list call.
	SupportsList bool
}

// SupportedResources returns the supported resource types in the stable
// order used for ID-prefix resolution.
func SupportedResources() []Descriptor {
	return []Descriptor{
		{Name: "payments", IDPrefix: "tr_", SupportsGet: true, SupportsList: true},
		// Refund GET is only exposed nested under a payment in the v2 API.
		{Name: "refunds", IDPrefix: "re_", SupportsGet: false, SupportsList: true},
		{Name: "customers", IDPrefix: "cst_", SupportsGet: true, SupportsList: true},
		{Name: "orders", IDPrefix: "ord_", SupportsGet: true, SupportsList: true},
		{Name: "profiles", IDPrefix: "pfl_", SupportsGet: true, SupportsList: true},
		{Name: "clients", IDPrefix: "org_", SupportsGet: true, SupportsList: true},
	}
}
