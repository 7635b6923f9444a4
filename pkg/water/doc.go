// Package water computes the volume of rain water trapped by an elevation map.
//
// An elevation map is a slice of bar heights at consecutive unit-width
// positions. Water settles above a position up to the lower of the highest
// bars on either side of it.
//
// # Usage
//
//	volume := water.Volume([]int{4, 2, 0, 3, 2, 5}) // 9
//
// Individual pools can be listed with [Basins], and the portion of a map
// that can hold water at all with [UsableSpan].
//
// # Algorithm
//
// [Volume] splits the map at its global maximum (first occurrence on ties).
// Water left of the peak is bounded only by the highest bar seen so far
// scanning from the left edge, and symmetrically on the right, so each side
// is solved in a single pass. The peak itself never holds water and is
// excluded from both passes.
//
// # Negative heights
//
// Negative heights have no meaning for an elevation map. Every function in
// this package treats them as zero.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package water
