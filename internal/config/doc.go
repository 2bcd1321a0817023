// Package config provides configuration loading, merging, and validation
// facilities for the note keeper binaries.
//
// Values come from environment variables (with defaults), command-line flags
// and an optional JSON file, merged with mergo in that order.
package config
