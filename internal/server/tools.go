package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Property schemas shared by several tools.
var (
	projectProperty = map[string]interface{}{
		"type":        "string",
		"description": "Project slug on the transformation service. Defaults to the server's configured project.",
	}
	baseURLProperty = map[string]interface{}{
		"type":        "string",
		"description": "Base URL for resolving a relative image reference in this call only",
	}
	formatProperty = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"webp", "png"},
		"description": "Output format. Default webp",
	}
)

func breakpointsProperty(what string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "integer"},
		"description": "Replaces the default " + what + " widths",
	}
}

// responsiveProperties are the inputs shared by the responsive tools.
func responsiveProperties() map[string]interface{} {
	return map[string]interface{}{
		"project": projectProperty,
		"src": map[string]interface{}{
			"type":        "string",
			"description": "Original image URL, absolute or relative",
		},
		"base_url": baseURLProperty,
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Intended display width in pixels",
		},
		"sizes": map[string]interface{}{
			"type":        "string",
			"description": "sizes attribute the image will be rendered with, e.g. \"(min-width: 768px) 50vw, 100vw\"",
		},
		"format": formatProperty,
		"responsive": map[string]interface{}{
			"type":        "boolean",
			"description": "Set to false for a single URL without srcSet. Default true",
			"default":     true,
		},
		"device_breakpoints": breakpointsProperty("device"),
		"image_breakpoints":  breakpointsProperty("icon and thumbnail"),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	tagProperties := responsiveProperties()
	tagProperties["alt"] = map[string]interface{}{
		"type":        "string",
		"description": "Alternative text",
	}
	tagProperties["loading"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"lazy", "eager"},
		"description": "Loading mode. Default lazy",
	}
	tagProperties["placeholder"] = map[string]interface{}{
		"type":        "string",
		"description": "Hex background colour shown while loading, e.g. #e0d8c8",
	}

	return []Tool{
		// URL Building
		{
			Name:        "image_url_build",
			Description: "Build a transformation URL for an image, optionally resized and converted to webp or png. Relative image URLs are resolved against the base URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"project": projectProperty,
					"url": map[string]interface{}{
						"type":        "string",
						"description": "Original image URL, absolute or relative",
					},
					"base_url": baseURLProperty,
					"format":   formatProperty,
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Output width in whole pixels. 0 or absent keeps the original width",
					},
				},
				"required": []string{"url"},
			},
		},
		{
			Name:        "image_responsive_attributes",
			Description: "Generate src, srcSet, sizes and width attributes for a responsive image, and report which breakpoint strategy was used.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": responsiveProperties(),
				"required":   []string{"src"},
			},
		},
		{
			Name:        "image_img_tag",
			Description: "Render a complete <img> element for a responsive image.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": tagProperties,
				"required":   []string{"src"},
			},
		},

		// URL Resolution
		{
			Name:        "image_url_resolve",
			Description: "Resolve an image reference to an absolute URL using the per-call base URL, the configured base URL, or the page origin, in that order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "Image reference to resolve",
					},
					"base_url": baseURLProperty,
				},
				"required": []string{"url"},
			},
		},
		{
			Name:        "image_url_is_relative",
			Description: "Check whether an image reference needs a base URL (anything but http://, https://, // and data: URLs).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "Image reference to check",
					},
				},
				"required": []string{"url"},
			},
		},

		// Configuration
		{
			Name:        "image_config_get",
			Description: "Return the current base URL configuration.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_config_set",
			Description: "Replace the configuration. Omitting base_url clears it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_url": map[string]interface{}{
						"type":        "string",
						"description": "Base URL for relative image references",
					},
				},
			},
		},
		{
			Name:        "image_config_reset",
			Description: "Clear the configuration.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
