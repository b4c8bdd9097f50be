// Package rootfind provides general-purpose numerical root-finding and
// curve-intersection helpers that do not belong to any single wave
// component but are useful to a host sweeping a derived quantity
// across a parameter range.
//
// Ported from the teacher project's pkg/utils, kept dependency-light
// and domain-agnostic: neither function imports waveparams, dispersion,
// kinematics, or boundary.
package rootfind
