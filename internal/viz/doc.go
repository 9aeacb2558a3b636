// Package viz renders sampled fields for the terminal. It only consumes
// kernel output ([sampling.FieldMap], [sampling.Profile], charges) and is
// never called by the kernel.
//
//   - [Canvas]: braille sub-pixel canvas
//   - [FieldRenderer]: charge map with field direction strokes
//   - [PlotProfile]: line chart of a profile via asciigraph
package viz
