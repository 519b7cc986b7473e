// Package lab wires generators to displays. It exposes one entry point per
// simulation on [Runner], a [Registry] describing the simulations for the
// selectors, and [Prompt], the plain text selector.
package lab
