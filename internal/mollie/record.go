package mollie

// Record is a single Mollie API object, decoded from JSON without any
// field renaming. Nested objects stay as map[string]any values.
type Record map[string]any

// Resource returns the API resource token (e.g. "payment") if present.
func (r Record) Resource() string {
	s, _ := r["resource"].(string)
	return s
}

// ID returns the record identifier if present.
func (r Record) ID() string {
	s, _ := r["id"].(string)
	return s
}

// Field looks up a top-level field and reports whether it exists.
func (r Record) Field(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}
