package boundary

import (
	"errors"
	"testing"
)

func TestBoundaryRectangle_Block(t *testing.T) {
	grid := blockGrid(10, 10, 3, 2, 6, 5, 255)

	rect, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}

	if rect.TopLeft != (Point{Row: 3, Col: 2}) {
		t.Errorf("TopLeft: got %+v, want {Row:3 Col:2}", rect.TopLeft)
	}
	if rect.Height != 4 || rect.Width != 4 {
		t.Errorf("shape: got %dx%d, want 4x4", rect.Height, rect.Width)
	}
	if rect.Area != 16 {
		t.Errorf("Area: got %d, want 16", rect.Area)
	}
}

func TestBoundaryRectangle_SinglePixel(t *testing.T) {
	grid := makeGrid(5, 7, 0)
	grid[4][6] = 200

	rect, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}

	if rect.TopLeft != (Point{Row: 4, Col: 6}) || rect.Height != 1 || rect.Width != 1 {
		t.Errorf("got %+v, want 1x1 box at (4,6)", rect)
	}
}

func TestBoundaryRectangle_FullGrid(t *testing.T) {
	grid := makeGrid(6, 9, 255)

	rect, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}

	if rect.TopLeft != (Point{Row: 0, Col: 0}) || rect.Height != 6 || rect.Width != 9 {
		t.Errorf("got %+v, want full 6x9 box", rect)
	}
}

// The box must contain every illuminated pixel, and shrinking any edge by one
// pixel must drop at least one.
func TestBoundaryRectangle_ContainmentAndMinimality(t *testing.T) {
	grid := makeGrid(20, 30, 0)
	lit := []Point{
		{Row: 4, Col: 21}, {Row: 12, Col: 7}, {Row: 9, Col: 14},
		{Row: 4, Col: 9}, {Row: 17, Col: 13},
	}
	for _, p := range lit {
		grid[p.Row][p.Col] = 99
	}

	rect, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}

	top := rect.TopLeft.Row
	left := rect.TopLeft.Col
	bottom := top + rect.Height - 1
	right := left + rect.Width - 1

	for _, p := range lit {
		if p.Row < top || p.Row > bottom || p.Col < left || p.Col > right {
			t.Errorf("pixel %+v outside box [%d,%d]x[%d,%d]", p, top, bottom, left, right)
		}
	}

	onEdge := func(pred func(Point) bool) bool {
		for _, p := range lit {
			if pred(p) {
				return true
			}
		}
		return false
	}
	if !onEdge(func(p Point) bool { return p.Row == top }) {
		t.Error("no illuminated pixel on top edge; box is not minimal")
	}
	if !onEdge(func(p Point) bool { return p.Row == bottom }) {
		t.Error("no illuminated pixel on bottom edge; box is not minimal")
	}
	if !onEdge(func(p Point) bool { return p.Col == left }) {
		t.Error("no illuminated pixel on left edge; box is not minimal")
	}
	if !onEdge(func(p Point) bool { return p.Col == right }) {
		t.Error("no illuminated pixel on right edge; box is not minimal")
	}
}

// Raising the threshold excludes pixels, so the box never grows.
func TestBoundaryRectangle_MonotonicThreshold(t *testing.T) {
	grid := makeGrid(16, 16, 0)
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			di := i - 8
			dj := j - 8
			grid[i][j] = 255 - 10*float64(di*di+dj*dj)
			if grid[i][j] < 0 {
				grid[i][j] = 0
			}
		}
	}

	prevArea := 16 * 16
	for _, th := range []float64{10, 50, 100, 150, 200, 250} {
		rect, err := BoundaryRectangle(grid, th)
		if err != nil {
			t.Fatalf("BoundaryRectangle(th=%v) failed: %v", th, err)
		}
		if rect.Area > prevArea {
			t.Errorf("th=%v: area grew from %d to %d", th, prevArea, rect.Area)
		}
		prevArea = rect.Area
	}
}

func TestBoundaryRectangle_Deterministic(t *testing.T) {
	grid := blockGrid(12, 12, 1, 2, 9, 10, 180)

	first, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}
	second, err := BoundaryRectangle(grid, 10)
	if err != nil {
		t.Fatalf("BoundaryRectangle failed: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestBoundaryRectangle_EmptyRegion(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {10, 10}, {3, 40}} {
		grid := makeGrid(dims[0], dims[1], 0)
		_, err := BoundaryRectangle(grid, 10)
		if !errors.Is(err, ErrEmptyRegion) {
			t.Errorf("%dx%d zero grid: got %v, want ErrEmptyRegion", dims[0], dims[1], err)
		}
	}
}

func TestBoundaryRectangle_InvalidShape(t *testing.T) {
	_, err := BoundaryRectangle(nil, 10)
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}
