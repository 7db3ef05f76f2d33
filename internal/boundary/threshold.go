package boundary

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the whitening threshold used when a caller does not
// supply one. Intensities at or above it count as illuminated.
const DefaultThreshold = 10

var (
	// ErrEmptyRegion indicates that no pixel met the threshold, so no
	// boundary geometry exists.
	ErrEmptyRegion = errors.New("no pixel meets the threshold")

	// ErrInvalidShape indicates that the intensity grid is empty, has a
	// zero-length row, or has rows of differing length.
	ErrInvalidShape = errors.New("invalid grid shape")
)

// Threshold binarizes an intensity grid into a {0, 255} mask.
//
// Every element at or above th becomes 255 (illuminated); everything strictly
// below becomes 0. The input grid is not modified; the mask is a fresh
// allocation.
//
// Returns ErrInvalidShape if the grid is empty or ragged.
func Threshold(grid [][]float64, th float64) ([][]uint8, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}

	mask := make([][]uint8, len(grid))
	for i, row := range grid {
		mask[i] = make([]uint8, len(row))
		for j, v := range row {
			if v >= th {
				mask[i][j] = 255
			}
		}
	}
	return mask, nil
}

// validateGrid checks that the grid is a non-empty rectangular matrix.
func validateGrid(grid [][]float64) error {
	if len(grid) == 0 {
		return fmt.Errorf("%w: grid has no rows", ErrInvalidShape)
	}
	width := len(grid[0])
	if width == 0 {
		return fmt.Errorf("%w: grid has no columns", ErrInvalidShape)
	}
	for i, row := range grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, i, len(row), width)
		}
	}
	return nil
}
