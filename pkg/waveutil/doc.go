// Package waveutil provides a second, simpler dispersion model for
// display and quick regime classification: the classical
// ω² = g·k·tanh(k·d) inversion, intentionally distinct from
// internal/dispersion's depth-generalized Padé relation. A host that
// only needs an approximate wavelength or celerity for a live plot can
// use this package without paying for a Newton-Raphson solve.
//
// Recovered from the original wave-channel display code and
// generalized here into a GUI-free library, alongside the
// teacher project's general-purpose Linspace helper.
package waveutil
