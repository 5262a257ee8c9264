// Package resolve maps user-supplied resource hints and resource IDs to
// one of the known Mollie resource types.
package resolve
