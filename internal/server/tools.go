package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the frame file (PNG, JPEG, GIF, or TIFF)",
	}
}

// detectionProperties are the parameters shared by the boundary tools.
func detectionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Whitening threshold; pixels with intensity >= threshold count as illuminated. Default 10.",
			"default":     10,
		},
		"blur_radius": map[string]interface{}{
			"type":        "number",
			"description": "Optional Gaussian blur radius applied before detection to suppress sensor noise. Default 0 (off).",
			"default":     0,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Information
		{
			Name:        "image_load",
			Description: "Load an endoscopic frame and return its dimensions, format, and color depth. The frame stays cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a frame file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Boundary Detection
		{
			Name:        "boundary_rectangle",
			Description: "Find the minimal axis-aligned rectangle enclosing the illuminated region of an endoscopic frame. Returns top-left (row, col), height, width, and area. Fails when no pixel meets the threshold.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "boundary_circle",
			Description: "Find the circle enclosing the illuminated region of an endoscopic frame: intensity-weighted centroid (row, col) and radius. The radius measures the horizontal extent of the region. Fails when no pixel meets the threshold.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "boundary_overlay",
			Description: "Run both boundary detectors and return the frame with the rectangle, circle, and centroid drawn on top, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(detectionProperties(), map[string]interface{}{
					"rect_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the rectangle outline. Default #00FFFF.",
					},
					"circle_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the circle outline. Default #FFFF00.",
					},
					"center_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color for the centroid marker. Default #FF00FF.",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor. Default 1.0.",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "boundary_crop",
			Description: "Detect the boundary rectangle and return the frame cropped to it, trimming the black border, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(detectionProperties(), map[string]interface{}{
					"margin": map[string]interface{}{
						"type":        "integer",
						"description": "Extra pixels kept on every side, clamped to the frame edges. Default 0.",
						"default":     0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor. Default 1.0.",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

func mergeProperties(base, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
