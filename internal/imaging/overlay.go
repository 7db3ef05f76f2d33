package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/scopetools/endoscope-mcp/internal/boundary"
)

// OverlayOptions control how detection results are rendered onto a frame.
// Colors are hex strings ("#RRGGBB"); empty strings select the defaults.
type OverlayOptions struct {
	// RectColor outlines the boundary rectangle. Default "#00FFFF".
	RectColor string

	// CircleColor outlines the boundary circle. Default "#FFFF00".
	CircleColor string

	// CenterColor fills the centroid marker. Default "#FF00FF".
	CenterColor string

	// Scale resizes the rendered overlay. Values <= 0 or 1.0 keep the
	// original size.
	Scale float64
}

// OverlayResult contains a frame with detection overlays, encoded as
// base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DrawBoundary renders detection results onto a copy of the frame.
//
// The rectangle is drawn as a one-pixel outline along its inclusive bounds,
// the circle as a one-pixel outline around its rounded center, and the
// centroid as a small filled dot. Either result may be nil to skip it.
// Shapes extending past the frame edge are clipped.
func DrawBoundary(img image.Image, rect *boundary.RectangleResult, circle *boundary.CircleResult, opts OverlayOptions) (*OverlayResult, error) {
	rectColor, err := overlayColor(opts.RectColor, "#00FFFF")
	if err != nil {
		return nil, fmt.Errorf("invalid rectangle color: %w", err)
	}
	circleColor, err := overlayColor(opts.CircleColor, "#FFFF00")
	if err != nil {
		return nil, fmt.Errorf("invalid circle color: %w", err)
	}
	centerColor, err := overlayColor(opts.CenterColor, "#FF00FF")
	if err != nil {
		return nil, fmt.Errorf("invalid center color: %w", err)
	}

	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	if rect != nil {
		drawRectOutline(result, rect, rectColor)
	}
	if circle != nil {
		cx := int(math.Round(circle.Center.Col))
		cy := int(math.Round(circle.Center.Row))
		drawCircleOutline(result, cx, cy, int(math.Round(circle.Radius)), circleColor)
		drawDot(result, cx, cy, 2, centerColor)
	}

	var out image.Image = result
	if opts.Scale > 0 && opts.Scale != 1.0 {
		newWidth := int(float64(result.Bounds().Dx()) * opts.Scale)
		newHeight := int(float64(result.Bounds().Dy()) * opts.Scale)
		out = imaging.Resize(result, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// overlayColor parses a hex color, substituting fallback for the empty string.
func overlayColor(hex, fallback string) (color.RGBA, error) {
	if hex == "" {
		hex = fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawRectOutline draws the inclusive bounding box as a one-pixel outline.
func drawRectOutline(img *image.RGBA, rect *boundary.RectangleResult, c color.RGBA) {
	x1 := rect.TopLeft.Col
	y1 := rect.TopLeft.Row
	x2 := x1 + rect.Width - 1
	y2 := y1 + rect.Height - 1

	for x := x1; x <= x2; x++ {
		setClipped(img, x, y1, c)
		setClipped(img, x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		setClipped(img, x1, y, c)
		setClipped(img, x2, y, c)
	}
}

// drawCircleOutline draws a circle outline using the midpoint algorithm.
func drawCircleOutline(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		setClipped(img, cx+x, cy+y, c)
		setClipped(img, cx+y, cy+x, c)
		setClipped(img, cx-y, cy+x, c)
		setClipped(img, cx-x, cy+y, c)
		setClipped(img, cx-x, cy-y, c)
		setClipped(img, cx-y, cy-x, c)
		setClipped(img, cx+y, cy-x, c)
		setClipped(img, cx+x, cy-y, c)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// drawDot fills a disc of the given radius around (cx, cy).
func drawDot(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				setClipped(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}
