// Package config handles configuration for the recco terminal client.
//
// Sources are layered, later overriding earlier:
//
//	defaults -> JSON file (-c/-config) -> environment -> flags
//
// One setting matters most in practice: the API base URL, selectable via the
// RECCO_API_URL environment variable and defaulting to the local development
// backend. The JSON loader uses timex.Duration for intervals, so values can
// be either strings like "300ms" or integer nanoseconds.
package config
