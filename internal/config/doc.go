// Package config loads and validates the YAML scenario files consumed
// by cmd/wavegen and internal/batch, mirroring the teacher project's
// own flat, tag-annotated Config/loadConfig pattern.
package config
