// Package mollie implements the HTTP client for the Mollie v2 REST API.
//
// The client covers the read-only surface molliectl needs: fetching a
// single record by ID and listing records of a resource type. Records are
// kept as raw decoded JSON so output formatting sees the untranslated wire
// payload. Each supported resource type is described by a Descriptor that
// carries its ID prefix and explicit get/list capability flags; operations
// check the flags before dispatch and fail with ErrNotSupported instead of
// probing the API.
package mollie
