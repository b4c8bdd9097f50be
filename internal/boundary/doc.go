// Package boundary drives a wave-generation inflow boundary for a host
// flow solver: a simulation time cursor and an enable flag, kept as
// independent fields rather than folded into one state enum, sitting
// in front of a Kinematics value that supplies the actual field
// evaluation.
//
// The host owns the simulation clock. Within one logical tick it must
// (1) optionally call UpdateParameters or SetEnabled, (2) call
// AdvanceTime or UpdateTime, (3) read boundary values or call an Apply
// method. Status is a consistent snapshot of whatever state exists
// when it is called.
//
// Driver never retains a caller-owned grid slice past the return of an
// Apply call, and writes only index 0 — the left boundary cell.
package boundary
