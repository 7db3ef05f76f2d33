// Package boundary locates the illuminated region of an endoscopic frame.
//
// Endoscope optics project a bright circular (sometimes rectangular) field
// onto the sensor, surrounded by a black border. This package computes the
// bounding geometry of that field from a grayscale intensity grid: either the
// minimal axis-aligned rectangle enclosing every illuminated pixel, or an
// enclosing circle derived from the intensity-weighted centroid.
//
// # Input Representation
//
// Detectors operate on a row-major intensity grid ([][]float64) where
// grid[row][col] holds the pixel intensity. Values are compared against a
// scalar threshold; pixels at or above the threshold count as illuminated.
// Image decoding and grayscale conversion are the caller's concern (see the
// imaging package).
//
// # Coordinate System
//
// Results use (row, col) order, matching the grid layout:
//   - Row 0 is the top of the frame, rows increase downward
//   - Col 0 is the left of the frame, cols increase rightward
//
// When mapping to image x/y coordinates, col corresponds to x and row to y.
//
// # Purity and Concurrency
//
// Every function is pure: the input grid is never mutated, no state is shared
// between calls, and identical inputs produce identical results. Callers may
// run detections concurrently over different frames without synchronization.
//
// # Error Handling
//
// Two sentinel errors cover the failure modes:
//   - ErrInvalidShape: the grid is empty, has a zero-length row, or is ragged
//   - ErrEmptyRegion: no pixel meets the threshold, so no geometry exists
//
// Both are wrapped with context and match via errors.Is.
package boundary
