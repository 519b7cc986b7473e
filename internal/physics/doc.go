// Package physics provides the three toy particle-physics generators.
//
// None of them models real physics; each turns an injected
// [quantum.Rand] into data for a visualization:
//
//   - [Plasma]: size×size grid of independently drawn quark/gluon/empty labels
//   - [Neutrino]: lattice random walk starting at the origin
//   - [DarkMatter]: Gaussian-jittered particles clamped to a box, as a lazy frame sequence
//
// [Plasma] and [DarkMatter] implement [quantum.Configurable] so config
// files and flags can adjust their tunables at runtime.
//
// # Frames
//
// [DarkMatter.Frames] is pull-driven. Rendering code decides the pacing:
//
//	for fr := range physics.NewDarkMatter().Frames(50, 100, rng) {
//	    draw(fr)
//	    time.Sleep(10 * time.Millisecond)
//	}
package physics
