// Package export turns simulation output into images, animations and
// text formats.
//
//   - [PlasmaRGB], [PlasmaImage]: grid to colour array / titled raster
//   - [WalkChart], [FieldChart]: go-chart plots of a walk and a particle frame
//   - [Animation]: GIF encoder for frame sequences
//   - [Video]: MJPEG (AVI) writer for frame sequences
//   - [PathToSVG], [WritePathCSV]: vector and tabular walk exports
package export
