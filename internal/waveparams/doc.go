// Package waveparams holds the immutable physical description of a
// single regular wave: wave height H, period T, still-water depth d,
// and the derived angular frequency ω, wave number k, phase speed c,
// and wavelength L.
//
// A Parameters value is provisional until resolved by the dispersion
// solver (package dispersion): k, c, and L are zero-valued sentinels
// until that happens. Resolution replaces rather than mutates — New
// and the solver's internal completion step both return plain values,
// so a Parameters is either unresolved or fully resolved, never
// observed half-filled by a caller outside this module.
package waveparams
