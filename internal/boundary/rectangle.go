package boundary

import "fmt"

// Point is an integer pixel coordinate in (row, col) order.
type Point struct {
	Row int `json:"row"` // Vertical position (0 = topmost)
	Col int `json:"col"` // Horizontal position (0 = leftmost)
}

// RectangleResult describes the minimal axis-aligned box enclosing every
// illuminated pixel.
//
// The box uses inclusive bounds: the bottom-right illuminated pixel sits at
// (TopLeft.Row + Height - 1, TopLeft.Col + Width - 1).
type RectangleResult struct {
	// TopLeft is the first illuminated row and column.
	TopLeft Point `json:"top_left"`

	// Height is the vertical extent in pixels (inclusive).
	Height int `json:"height"`

	// Width is the horizontal extent in pixels (inclusive).
	Width int `json:"width"`

	// Area is Width × Height in square pixels.
	Area int `json:"area"`
}

// BoundaryRectangle finds the rectangle that circumferences the illuminated
// region of an endoscopic frame.
//
// Parameters:
//   - grid: Row-major grayscale intensity grid of shape H×W.
//   - th: Whitening threshold; pixels with intensity >= th are illuminated.
//     Use DefaultThreshold when in doubt.
//
// Returns:
//   - *RectangleResult: The smallest inclusive box covering all illuminated
//     pixels.
//   - error: ErrInvalidShape for a malformed grid, ErrEmptyRegion when no
//     pixel meets the threshold.
//
// # Algorithm
//
//  1. Binarize the grid into a {0, 255} mask
//  2. Project the mask onto both axes as mean profiles
//  3. Take the first and last nonzero profile index on each axis
//
// A row or column is inside the box exactly when at least one of its pixels
// is illuminated, so the box is minimal: shrinking any edge by one pixel
// would drop an illuminated pixel.
func BoundaryRectangle(grid [][]float64, th float64) (*RectangleResult, error) {
	mask, err := Threshold(grid, th)
	if err != nil {
		return nil, err
	}

	rowProfile, colProfile := maskProfiles(mask)

	top, bottom, ok := nonzeroSpan(rowProfile)
	if !ok {
		return nil, fmt.Errorf("boundary rectangle: %w", ErrEmptyRegion)
	}
	left, right, ok := nonzeroSpan(colProfile)
	if !ok {
		return nil, fmt.Errorf("boundary rectangle: %w", ErrEmptyRegion)
	}

	height := bottom - top + 1
	width := right - left + 1

	return &RectangleResult{
		TopLeft: Point{Row: top, Col: left},
		Height:  height,
		Width:   width,
		Area:    height * width,
	}, nil
}
