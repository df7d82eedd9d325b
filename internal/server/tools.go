package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// shapeProperty is the shared schema fragment for selection shape.
func shapeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"rectangle", "circle"},
		"description": "Selection shape. Rectangle uses x0/y0/x1/y1; circle uses center_x/center_y/diameter.",
		"default":     "rectangle",
	}
}

// styleProperties is the shared schema fragment for border and annotation style.
func styleProperties() map[string]interface{} {
	return map[string]interface{}{
		"border_width": map[string]interface{}{
			"type":        "integer",
			"description": "Border width in pixels. Default 3.",
			"default":     3,
		},
		"border_color": map[string]interface{}{
			"type":        "string",
			"description": "Border color as #RRGGBB. Default #FFFFFF.",
			"default":     "#FFFFFF",
		},
		"border_opacity": map[string]interface{}{
			"type":        "number",
			"description": "Border ring opacity 0-1. Default 1.0.",
			"default":     1.0,
		},
		"opacity": map[string]interface{}{
			"type":        "number",
			"description": "Global compositing opacity 0-1. Default 1.0.",
			"default":     1.0,
		},
		"draw_indicator": map[string]interface{}{
			"type":        "boolean",
			"description": "Outline the source region on the output. Default true.",
			"default":     true,
		},
		"connect_lines": map[string]interface{}{
			"type":        "boolean",
			"description": "Draw connection lines from the source region to the inset. Default true.",
			"default":     true,
		},
		"line_color": map[string]interface{}{
			"type":        "string",
			"description": "Indicator/connection line color as #RRGGBB. Defaults to the border color.",
		},
		"line_thickness": map[string]interface{}{
			"type":        "number",
			"description": "Indicator/connection line thickness in pixels. Default 2.",
			"default":     2,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	renderProps := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the source image",
		},
		"shape":    shapeProperty(),
		"x0":       map[string]interface{}{"type": "integer", "description": "Selection left edge (rectangle)"},
		"y0":       map[string]interface{}{"type": "integer", "description": "Selection top edge (rectangle)"},
		"x1":       map[string]interface{}{"type": "integer", "description": "Selection right edge, exclusive (rectangle)"},
		"y1":       map[string]interface{}{"type": "integer", "description": "Selection bottom edge, exclusive (rectangle)"},
		"center_x": map[string]interface{}{"type": "integer", "description": "Selection center X (circle)"},
		"center_y": map[string]interface{}{"type": "integer", "description": "Selection center Y (circle)"},
		"diameter": map[string]interface{}{"type": "integer", "description": "Selection diameter (circle)"},
		"zoom": map[string]interface{}{
			"type":        "number",
			"description": "Magnification factor. Clamped into [1.5, 10], then capped so the resampled edge stays within 8000px.",
			"default":     2.0,
		},
		"method": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"nearest", "bilinear", "bicubic", "lanczos"},
			"description": "Resampling kernel. Default lanczos.",
			"default":     "lanczos",
		},
		"position": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "custom"},
			"description": "Inset placement preset. Default top-right.",
			"default":     "top-right",
		},
		"pos_x":  map[string]interface{}{"type": "integer", "description": "Custom placement X (position=custom)"},
		"pos_y":  map[string]interface{}{"type": "integer", "description": "Custom placement Y (position=custom)"},
		"margin": map[string]interface{}{"type": "integer", "description": "Margin from the image edge for presets. Default 10.", "default": 10},
		"out_path": map[string]interface{}{
			"type":        "string",
			"description": "Where to save the rendered image (.png/.jpg). Omit to only return a preview.",
		},
	}
	for k, v := range styleProperties() {
		renderProps[k] = v
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and identity used to key inset metadata.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Inset Pipeline
		{
			Name:        "inset_render",
			Description: "Render a magnified inset onto an image in one shot: extract a region, resample it by the zoom factor, frame it with a border, place it, draw the source indicator and connection lines, and composite. Returns the result geometry and a base64 PNG preview.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": renderProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "inset_extract",
			Description: "Extract and resample a region without compositing, save it as a standalone inset artifact, and record its source metadata (rect, shape, zoom, source identity) under a key for later finalize.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     map[string]interface{}{"type": "string", "description": "Absolute path to the source image"},
					"shape":    shapeProperty(),
					"x0":       map[string]interface{}{"type": "integer"},
					"y0":       map[string]interface{}{"type": "integer"},
					"x1":       map[string]interface{}{"type": "integer"},
					"y1":       map[string]interface{}{"type": "integer"},
					"center_x": map[string]interface{}{"type": "integer"},
					"center_y": map[string]interface{}{"type": "integer"},
					"diameter": map[string]interface{}{"type": "integer"},
					"zoom":     map[string]interface{}{"type": "number", "default": 2.0},
					"method": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"nearest", "bilinear", "bicubic", "lanczos"},
						"default": "lanczos",
					},
					"out_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to save the extracted inset bitmap (.png)",
					},
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Metadata key for this artifact. Defaults to out_path.",
					},
				},
				"required": []string{"path", "out_path"},
			},
		},
		{
			Name:        "inset_finalize",
			Description: "Composite a previously extracted inset artifact onto a destination image (possibly different from its source), using the stored metadata to draw the source indicator and connection lines. Placement is NOT clamped: the inset may hang off-canvas.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProps(map[string]interface{}{
					"key":       map[string]interface{}{"type": "string", "description": "Metadata key of the extracted artifact"},
					"dest_path": map[string]interface{}{"type": "string", "description": "Absolute path to the destination image"},
					"pos_x":     map[string]interface{}{"type": "integer", "description": "Inset top-left X on the destination (may be negative)"},
					"pos_y":     map[string]interface{}{"type": "integer", "description": "Inset top-left Y on the destination (may be negative)"},
					"out_path":  map[string]interface{}{"type": "string", "description": "Where to save the composited image (.png/.jpg)"},
				}, styleProperties()),
				"required": []string{"key", "dest_path", "pos_x", "pos_y"},
			},
		},

		// Metadata Store
		{
			Name:        "inset_metadata_set",
			Description: "Attach string key/value properties to an extracted inset artifact.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": map[string]interface{}{"type": "string", "description": "Artifact key"},
					"properties": map[string]interface{}{
						"type":        "object",
						"description": "String properties to merge into the bag",
					},
				},
				"required": []string{"key", "properties"},
			},
		},
		{
			Name:        "inset_metadata_get",
			Description: "Read the property bag attached to an extracted inset artifact.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": map[string]interface{}{"type": "string", "description": "Artifact key"},
				},
				"required": []string{"key"},
			},
		},
	}
}

func mergeProps(base, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
