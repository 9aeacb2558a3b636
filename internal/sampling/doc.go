// Package sampling evaluates an [electro.Source] over sets of observation
// points:
//
//   - [Grid] / [SampleGrid]: rectangular grid in a coordinate plane
//   - [Line] / [SampleLine]: evenly spaced points along a segment
//   - [Metric]: reductions of a sampled map into named numbers
//
// Singular points (observation points on a charge) are kept in the output
// with their error attached instead of aborting the whole sweep, so
// renderers can mark them.
package sampling
