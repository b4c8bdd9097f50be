// Package batch runs a wave-generation scenario pipeline over every
// YAML config file in a directory, in parallel, and reports progress
// with an ASCII bar — generalized from the teacher project's
// internal/runner, which did the same over the critical_speed binary.
package batch
