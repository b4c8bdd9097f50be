// Package kinematics evaluates the spatio-temporal fields of a
// resolved regular wave under linear wave theory: surface elevation
// η(x,t), depth-averaged horizontal velocity u(x,t), particle
// displacement, steepness, and energy diagnostics.
//
// Kinematics wraps a waveparams.Parameters by value — copied on
// construction and on update, never aliased — so every operation is a
// pure function of (x, t) and is safe to call concurrently from many
// goroutines sharing the same Kinematics value.
//
// Phase convention throughout this package: φ(x,t) = k·x - ω·t.
package kinematics
