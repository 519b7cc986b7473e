// Package quantum provides the core primitives shared by the toy
// particle-physics visualizations.
//
// The package defines the data each simulation produces and the
// randomness it consumes:
//
//   - [Label]: categorical state of a plasma cell (quark, gluon, empty)
//   - [Grid]: square array of labels
//   - [Path]: lattice walk as parallel X/Y sequences
//   - [Field]: mutable set of particle positions
//   - [Frame]: one snapshot of a field during an animation
//   - [Rand]: injected random source
//
// # Randomness
//
// No type in this package touches the global random source. Callers pass a
// [Rand] explicitly, so a simulation seeded with the same value reproduces
// the same output:
//
//	rng := quantum.NewRand(42)
//	grid, _ := physics.NewPlasma().Generate(10, rng)
package quantum
