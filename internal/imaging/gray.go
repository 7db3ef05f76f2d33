package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Grayscale converts a frame to a row-major intensity grid.
//
// Each entry holds the pixel's luminance in [0, 255], computed with ITU-R
// BT.601 weights (0.299*R + 0.587*G + 0.114*B). The grid shape is H×W with
// grid[row][col] addressing, which is the input representation the boundary
// detectors expect.
func Grayscale(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	grid := make([][]float64, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			grid[y][x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return grid
}

// Smooth applies a Gaussian blur to suppress sensor noise before detection.
//
// Specular highlights and hot pixels in the black border can cross the
// whitening threshold and stretch the detected boundary; a small radius
// (1-3 px) removes them without moving the true edge. A radius <= 0 returns
// the frame unchanged.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
