package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Notation
		{
			Name:        "munsell_parse",
			Description: "Parse and validate a Munsell color spec such as '9R 5.5/14' or 'N 4.5'. Returns the canonical code, every field, and an approximate sRGB preview.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"spec": map[string]interface{}{
						"type":        "string",
						"description": "Combined spec: hue, value, chroma separated by spaces and/or '/'",
					},
				},
				"required": []string{"spec"},
			},
		},
		{
			Name:        "munsell_compose",
			Description: "Build a Munsell color from discrete fields: hue spec (e.g. '2.5GY' or 'N'), value, and chroma. Chroma is required only for chromatic hues.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "string",
						"description": "Hue spec: '<step><family>' or the neutral marker 'N'",
					},
					"value": map[string]interface{}{
						"type":        []string{"number", "string"},
						"description": "Lightness 0-10",
					},
					"chroma": map[string]interface{}{
						"type":        []string{"number", "string"},
						"description": "Saturation >= 0; omit for neutral",
					},
				},
				"required": []string{"hue", "value"},
			},
		},

		// Hue circle
		{
			Name:        "munsell_degree",
			Description: "Convert a chromatic hue spec (e.g. '2.5YR') to its position on the 0-100 linear hue circle. '10RP' maps to 0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "string",
						"description": "Chromatic hue spec",
					},
				},
				"required": []string{"hue"},
			},
		},
		{
			Name:        "munsell_undegree",
			Description: "Convert a hue-circle degree in [0, 100] back to the canonical hue spec. 0 and 100 both map to '10RP'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"degree": map[string]interface{}{
						"type":        "number",
						"description": "Degree in [0, 100]",
					},
				},
				"required": []string{"degree"},
			},
		},
		{
			Name:        "munsell_hue_circle",
			Description: "List the ten hue families in circular order with their indices and degree anchors.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// sRGB conversion
		{
			Name:        "munsell_to_srgb",
			Description: "Approximate sRGB preview (hex and 8-bit RGB) of a Munsell spec, clamped into gamut.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"spec": map[string]interface{}{
						"type":        "string",
						"description": "Munsell color spec",
					},
				},
				"required": []string{"spec"},
			},
		},
		{
			Name:        "munsell_from_srgb",
			Description: "Nearest Munsell notation for an sRGB color given as '#rrggbb'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "sRGB color, '#rrggbb' or '#rgb'",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Rendering
		{
			Name:        "munsell_swatch",
			Description: "Render a square swatch of a Munsell color as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"spec": map[string]interface{}{
						"type":        "string",
						"description": "Munsell color spec",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch edge length in pixels. Default 128",
						"default":     128,
					},
				},
				"required": []string{"spec"},
			},
		},
		{
			Name:        "munsell_value_scale",
			Description: "Render an 11-patch strip of a color across values 0-10 at fixed hue and chroma, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"spec": map[string]interface{}{
						"type":        "string",
						"description": "Munsell color spec supplying the hue and chroma",
					},
					"patch": map[string]interface{}{
						"type":        "integer",
						"description": "Patch edge length in pixels (minimum 16). Default 24",
						"default":     24,
					},
				},
				"required": []string{"spec"},
			},
		},
		{
			Name:        "munsell_hue_page",
			Description: "Render the value/chroma chart of one chromatic hue as base64-encoded PNG, with labeled axes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "string",
						"description": "Chromatic hue spec, e.g. '5R'",
					},
					"max_chroma": map[string]interface{}{
						"type":        "number",
						"description": "Rightmost chroma column (steps of 2). Default 12",
						"default":     12,
					},
					"patch": map[string]interface{}{
						"type":        "integer",
						"description": "Patch edge length in pixels (minimum 16). Default 24",
						"default":     24,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the finished chart. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"hue"},
			},
		},

		// Image picking
		{
			Name:        "munsell_sample",
			Description: "Sample the pixel at (x, y) of an image file and name it in Munsell notation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "munsell_dominant",
			Description: "Name the most common colors of an image (or region) in Munsell notation, most frequent first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional rectangle to analyze: {x1, y1, x2, y2}",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
