// Command boundary-demo runs both boundary detectors against a single frame
// and prints the results, optionally writing an overlay image. It is a thin
// consumer of the detector packages, useful for eyeballing thresholds before
// wiring the MCP server into a pipeline.
//
// Usage:
//
//	boundary-demo -in data/eye.tif -th 30 -out overlay.png
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scopetools/endoscope-mcp/internal/boundary"
	"github.com/scopetools/endoscope-mcp/internal/imaging"
)

func main() {
	var (
		inPath  string
		outPath string
		th      float64
		blur    float64
	)

	flag.StringVar(&inPath, "in", "", "Input frame (PNG, JPEG, GIF, or TIFF)")
	flag.StringVar(&outPath, "out", "", "Optional overlay output path (PNG)")
	flag.Float64Var(&th, "th", boundary.DefaultThreshold, "Whitening threshold")
	flag.Float64Var(&blur, "blur", 0, "Gaussian blur radius applied before detection")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -in frame.png [-out overlay.png] [-th 10] [-blur 0]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.SetFlags(0)

	cache := imaging.NewFrameCache()
	img, err := cache.Load(inPath)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	grid := imaging.Grayscale(imaging.Smooth(img, blur))

	rect, err := boundary.BoundaryRectangle(grid, th)
	if err != nil {
		log.Fatalf("rectangle: %v", err)
	}
	circle, err := boundary.BoundaryCircle(grid, th)
	if err != nil {
		log.Fatalf("circle: %v", err)
	}

	fmt.Printf("rectangle: top_left=(%d,%d) shape=%dx%d area=%d\n",
		rect.TopLeft.Row, rect.TopLeft.Col, rect.Height, rect.Width, rect.Area)
	fmt.Printf("circle:    center=(%.2f,%.2f) radius=%.2f\n",
		circle.Center.Row, circle.Center.Col, circle.Radius)

	if outPath == "" {
		return
	}

	overlay, err := imaging.DrawBoundary(img, rect, circle, imaging.OverlayOptions{})
	if err != nil {
		log.Fatalf("overlay: %v", err)
	}
	data, err := base64.StdEncoding.DecodeString(overlay.ImageBase64)
	if err != nil {
		log.Fatalf("overlay decode: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("overlay write: %v", err)
	}
	fmt.Printf("overlay written to %s (%dx%d)\n", outPath, overlay.Width, overlay.Height)
}
