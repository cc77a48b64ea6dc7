// Package config loads and validates the application configuration from
// YAML, including feed provider settings, the per-line platform stop maps
// of the reference station, and the arrival-selection policy.
package config
