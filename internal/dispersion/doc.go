// Package dispersion solves the depth-generalized dispersion relation
// used by the wave-flume engine to resolve a wave number k from an
// angular frequency ω and a still-water depth d.
//
// The relation is a one-layer, non-hydrostatic, Padé-style form:
//
//	ω² = g·k·(k·d) / (1 + (k·d)²/4)
//
// It recovers the shallow-water limit √(gd) as k·d → 0 and
// approximates the deep-water limit gT/(2π) as k·d grows, and is used
// in place of the classical ω² = g·k·tanh(k·d) relation deliberately —
// see pkg/waveutil for the classical model, kept separate for
// host-side display and classification.
//
// Solver is a cheap, stateless configuration value; resolving a wave
// number never mutates shared state and the iteration is bounded by
// MaxIterations regardless of input.
package dispersion
