package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-url-tools-mcp/internal/config"
	"github.com/ironsheep/image-url-tools-mcp/internal/markup"
	"github.com/ironsheep/image-url-tools-mcp/internal/resolver"
	"github.com/ironsheep/image-url-tools-mcp/internal/responsive"
	"github.com/ironsheep/image-url-tools-mcp/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_url_build").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills omitted project, format and breakpoints from the host config
//  3. Calls the transform/responsive/resolver/config operation
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// URL Building
	case "image_url_build":
		return s.handleImageURLBuild(args)
	case "image_responsive_attributes":
		return s.handleImageResponsiveAttributes(args)
	case "image_img_tag":
		return s.handleImageImgTag(args)

	// URL Resolution
	case "image_url_resolve":
		return s.handleImageURLResolve(args)
	case "image_url_is_relative":
		return s.handleImageURLIsRelative(args)

	// Configuration
	case "image_config_get":
		return s.store.Get(), nil
	case "image_config_set":
		return s.handleImageConfigSet(args)
	case "image_config_reset":
		s.store.Reset()
		return s.store.Get(), nil

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

// decodeArgs unmarshals args into v. Tools without required arguments may
// be called with no arguments at all.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

func (s *Server) project(p string) string {
	if p != "" {
		return p
	}
	return s.host.Project
}

func (s *Server) format(f string) string {
	if f != "" {
		return f
	}
	return s.host.Format
}

// === URL Building Handlers ===

type imageURLBuildArgs struct {
	Project string  `json:"project"`
	URL     string  `json:"url"`
	BaseURL string  `json:"base_url"`
	Format  string  `json:"format"`
	Width   float64 `json:"width"`
}

// ImageURLResult is the result of image_url_build.
type ImageURLResult struct {
	URL string `json:"url"`

	// SourceFormat is guessed from the original URL's extension.
	SourceFormat string `json:"source_format"`
}

func (s *Server) handleImageURLBuild(args json.RawMessage) (interface{}, error) {
	var a imageURLBuildArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	u, err := s.builder.Build(s.project(a.Project), a.URL, transform.Options{
		BaseURL: a.BaseURL,
		Format:  s.format(a.Format),
		Width:   a.Width,
	})
	if err != nil {
		return nil, err
	}
	return &ImageURLResult{URL: u, SourceFormat: transform.SourceFormat(a.URL)}, nil
}

type imageResponsiveArgs struct {
	Project           string `json:"project"`
	Src               string `json:"src"`
	BaseURL           string `json:"base_url"`
	Width             int    `json:"width"`
	Sizes             string `json:"sizes"`
	Format            string `json:"format"`
	Responsive        *bool  `json:"responsive"`
	DeviceBreakpoints []int  `json:"device_breakpoints"`
	ImageBreakpoints  []int  `json:"image_breakpoints"`
}

func (s *Server) responsiveOptions(a *imageResponsiveArgs) responsive.Options {
	opts := responsive.Options{
		BaseURL:           a.BaseURL,
		Width:             a.Width,
		Sizes:             a.Sizes,
		Format:            s.format(a.Format),
		Responsive:        a.Responsive,
		DeviceBreakpoints: a.DeviceBreakpoints,
		ImageBreakpoints:  a.ImageBreakpoints,
	}
	if opts.DeviceBreakpoints == nil && len(s.host.DeviceBreakpoints) > 0 {
		opts.DeviceBreakpoints = s.host.DeviceBreakpoints
	}
	if opts.ImageBreakpoints == nil && len(s.host.ImageBreakpoints) > 0 {
		opts.ImageBreakpoints = s.host.ImageBreakpoints
	}
	return opts
}

// ResponsiveResult is the result of image_responsive_attributes.
type ResponsiveResult struct {
	Strategy string `json:"strategy"`
	*responsive.Attributes
}

func (s *Server) responsiveAttributes(a *imageResponsiveArgs) (*ResponsiveResult, error) {
	opts := s.responsiveOptions(a)
	attrs, err := s.generator.Attributes(s.project(a.Project), a.Src, opts)
	if err != nil {
		return nil, err
	}
	return &ResponsiveResult{Strategy: responsive.Strategy(opts), Attributes: attrs}, nil
}

func (s *Server) handleImageResponsiveAttributes(args json.RawMessage) (interface{}, error) {
	var a imageResponsiveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.responsiveAttributes(&a)
}

type imageImgTagArgs struct {
	imageResponsiveArgs
	Alt         string `json:"alt"`
	Loading     string `json:"loading"`
	Placeholder string `json:"placeholder"`
}

// ImgTagResult is the result of image_img_tag.
type ImgTagResult struct {
	HTML       string            `json:"html"`
	Attributes *ResponsiveResult `json:"attributes"`
}

func (s *Server) handleImageImgTag(args json.RawMessage) (interface{}, error) {
	var a imageImgTagArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	res, err := s.responsiveAttributes(&a.imageResponsiveArgs)
	if err != nil {
		return nil, err
	}
	tag, err := markup.RenderImgTag(res.Attributes, markup.TagOptions{
		Alt:         a.Alt,
		Loading:     a.Loading,
		Placeholder: a.Placeholder,
	})
	if err != nil {
		return nil, err
	}
	return &ImgTagResult{HTML: tag, Attributes: res}, nil
}

// === URL Resolution Handlers ===

type imageURLArgs struct {
	URL     string `json:"url"`
	BaseURL string `json:"base_url"`
}

// ResolveResult is the result of image_url_resolve and image_url_is_relative.
type ResolveResult struct {
	URL      string `json:"url,omitempty"`
	Relative bool   `json:"relative"`
}

func (s *Server) handleImageURLResolve(args json.RawMessage) (interface{}, error) {
	var a imageURLArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	u, err := s.resolver.Resolve(a.URL, a.BaseURL)
	if err != nil {
		return nil, err
	}
	return &ResolveResult{URL: u, Relative: resolver.IsRelativeURL(a.URL)}, nil
}

func (s *Server) handleImageURLIsRelative(args json.RawMessage) (interface{}, error) {
	var a imageURLArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return &ResolveResult{Relative: resolver.IsRelativeURL(a.URL)}, nil
}

// === Configuration Handlers ===

func (s *Server) handleImageConfigSet(args json.RawMessage) (interface{}, error) {
	var a struct {
		BaseURL string `json:"base_url"`
	}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	s.store.Configure(config.Config{BaseURL: a.BaseURL})
	return s.store.Get(), nil
}
