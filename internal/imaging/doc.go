// Package imaging provides the frame-handling collaborators around the
// boundary detectors: decoding and caching endoscopic frames, converting them
// to grayscale intensity grids, optional pre-smoothing, and rendering
// detection results back onto the frame.
//
// # Supported Formats
//
// Frames decode from PNG, JPEG, GIF, and TIFF. TIFF matters in practice
// because endoscopy capture rigs commonly archive raw frames as TIFF.
//
// # Coordinate System
//
// Functions in this package use standard image x/y coordinates with (0,0) at
// the top-left corner. Detection results from the boundary package use
// (row, col) order; col maps to x and row to y.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. The remaining functions are
// stateless and may be called concurrently on different frames.
package imaging
