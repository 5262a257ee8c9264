// Package config loads, normalizes, and validates molliectl configuration.
//
// It supplies repository defaults, reads the TOML file, expands user paths
// (including tilde shortcuts), and honours environment fallbacks such as
// MOLLIE_API_KEY. Always obtain settings through this package so downstream
// code receives sanitized values and clear validation errors.
package config
