// Package viz provides terminal rendering for the simulations.
//
// Every view is a Bubble Tea model:
//
//   - [PlasmaView]: grid drawn with half-block cells in the label colours
//   - [WalkView]: Braille line plot plus an asciigraph displacement chart
//   - [FieldView]: Braille scatter animated from a pulled frame sequence
//   - [Menu]: simulation picker with editable integer parameters
//
// # Key Bindings
//
//	q, Esc, Enter - close the view
//	Space         - pause/resume an animation
//
// An animation that runs out of frames keeps its final frame on screen
// until the view is closed.
package viz
