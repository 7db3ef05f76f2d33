package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/scopetools/endoscope-mcp/internal/boundary"
)

// CropResult contains a cropped frame encoded as base64 PNG.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropToRectangle extracts the detected boundary box from a frame, trimming
// away the black border around the illuminated field.
//
// Parameters:
//   - img: Source frame.
//   - rect: Detected boundary rectangle in (row, col) coordinates.
//   - margin: Extra pixels kept on every side, clamped to the frame edges.
//   - scale: Output scale factor; values <= 0 or 1.0 keep the cropped size.
//
// Returns an error when the rectangle lies outside the frame entirely, which
// indicates it was detected on a different frame.
func CropToRectangle(img image.Image, rect *boundary.RectangleResult, margin int, scale float64) (*CropResult, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	x1 := rect.TopLeft.Col - margin
	y1 := rect.TopLeft.Row - margin
	x2 := rect.TopLeft.Col + rect.Width + margin
	y2 := rect.TopLeft.Row + rect.Height + margin

	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > width {
		x2 = width
	}
	if y2 > height {
		y2 = height
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("boundary box (%d,%d)-(%d,%d) outside %dx%d frame",
			rect.TopLeft.Col, rect.TopLeft.Row,
			rect.TopLeft.Col+rect.Width, rect.TopLeft.Row+rect.Height,
			width, height)
	}

	cropped := imaging.Crop(img, image.Rect(
		bounds.Min.X+x1, bounds.Min.Y+y1,
		bounds.Min.X+x2, bounds.Min.Y+y2,
	))

	if scale > 0 && scale != 1.0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped frame: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
