package server

import (
	"encoding/json"
	"fmt"

	"github.com/scopetools/endoscope-mcp/internal/boundary"
	"github.com/scopetools/endoscope-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "boundary_rectangle").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Boundary Detection
	case "boundary_rectangle":
		return s.handleBoundaryRectangle(args)
	case "boundary_circle":
		return s.handleBoundaryCircle(args)
	case "boundary_overlay":
		return s.handleBoundaryOverlay(args)
	case "boundary_crop":
		return s.handleBoundaryCrop(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Frame Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadFrameInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Boundary Detection Handlers ===

type detectionArgs struct {
	Path       string  `json:"path"`
	Threshold  float64 `json:"threshold"`
	BlurRadius float64 `json:"blur_radius"`
}

// intensityGrid loads a frame, applies optional pre-smoothing, and converts
// it to the grayscale grid the detectors consume.
func (s *Server) intensityGrid(path string, blurRadius float64) ([][]float64, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return imaging.Grayscale(imaging.Smooth(img, blurRadius)), nil
}

func (a *detectionArgs) threshold() float64 {
	if a.Threshold == 0 {
		return boundary.DefaultThreshold
	}
	return a.Threshold
}

func (s *Server) handleBoundaryRectangle(args json.RawMessage) (interface{}, error) {
	var a detectionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.intensityGrid(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return boundary.BoundaryRectangle(grid, a.threshold())
}

func (s *Server) handleBoundaryCircle(args json.RawMessage) (interface{}, error) {
	var a detectionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	grid, err := s.intensityGrid(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return boundary.BoundaryCircle(grid, a.threshold())
}

type boundaryOverlayArgs struct {
	detectionArgs
	RectColor   string  `json:"rect_color"`
	CircleColor string  `json:"circle_color"`
	CenterColor string  `json:"center_color"`
	Scale       float64 `json:"scale"`
}

func (s *Server) handleBoundaryOverlay(args json.RawMessage) (interface{}, error) {
	var a boundaryOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	grid := imaging.Grayscale(imaging.Smooth(img, a.BlurRadius))

	rect, err := boundary.BoundaryRectangle(grid, a.threshold())
	if err != nil {
		return nil, err
	}
	circle, err := boundary.BoundaryCircle(grid, a.threshold())
	if err != nil {
		return nil, err
	}

	return imaging.DrawBoundary(img, rect, circle, imaging.OverlayOptions{
		RectColor:   a.RectColor,
		CircleColor: a.CircleColor,
		CenterColor: a.CenterColor,
		Scale:       a.Scale,
	})
}

type boundaryCropArgs struct {
	detectionArgs
	Margin int     `json:"margin"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleBoundaryCrop(args json.RawMessage) (interface{}, error) {
	var a boundaryCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	grid := imaging.Grayscale(imaging.Smooth(img, a.BlurRadius))

	rect, err := boundary.BoundaryRectangle(grid, a.threshold())
	if err != nil {
		return nil, err
	}

	return imaging.CropToRectangle(img, rect, a.Margin, a.Scale)
}
