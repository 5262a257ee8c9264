// Package main hosts the molliectl CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into Mollie
// API calls: fetching a single record by ID, listing records of a resource
// type, inspecting the supported resource types, running the OAuth
// authorization flow, and scaffolding configuration. It centralizes
// configuration resolution, credential selection, and logger setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: resolution, rendering, and API access live in
// the internal packages; commands only compose them.
package main
