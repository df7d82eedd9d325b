package server

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
	"github.com/ironsheep/magnifier-mcp/internal/imaging"
	"github.com/ironsheep/magnifier-mcp/internal/inset"
)

// Zoom limits enforced by the shell before the pipeline runs. The engine
// itself imposes no upper bound; the shell caps the resampled output so an
// extreme zoom cannot allocate an unbounded buffer.
const (
	minZoom     = 1.5
	maxZoom     = 10.0
	maxInsetDim = 8000

	// previewMaxEdge bounds the base64 preview returned in tool responses.
	previewMaxEdge = 1024
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "inset_render").
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
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Inset Pipeline
	case "inset_render":
		return s.handleInsetRender(args)
	case "inset_extract":
		return s.handleInsetExtract(args)
	case "inset_finalize":
		return s.handleInsetFinalize(args)

	// Metadata Store
	case "inset_metadata_set":
		return s.handleMetadataSet(args)
	case "inset_metadata_get":
		return s.handleMetadataGet(args)

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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Shared Argument Helpers ===

// selectionArgs is the shape/geometry subset shared by render and extract.
type selectionArgs struct {
	Shape   string `json:"shape"`
	X0      int    `json:"x0"`
	Y0      int    `json:"y0"`
	X1      int    `json:"x1"`
	Y1      int    `json:"y1"`
	CenterX int    `json:"center_x"`
	CenterY int    `json:"center_y"`
	Diamtr  int    `json:"diameter"`
}

func (a selectionArgs) shape() (engine.Shape, error) {
	switch a.Shape {
	case "", "rectangle":
		return engine.Rectangular, nil
	case "circle":
		return engine.Circular, nil
	}
	return engine.Rectangular, fmt.Errorf("unknown shape: %q", a.Shape)
}

// selectionSize returns the pre-zoom dimensions of the selection.
func (a selectionArgs) selectionSize(shape engine.Shape) (int, int) {
	if shape == engine.Circular {
		return a.Diamtr, a.Diamtr
	}
	return a.X1 - a.X0, a.Y1 - a.Y0
}

// styleArgs is the border/annotation subset shared by render and finalize.
type styleArgs struct {
	BorderWidth   *int     `json:"border_width"`
	BorderColor   string   `json:"border_color"`
	BorderOpacity *float64 `json:"border_opacity"`
	Opacity       *float64 `json:"opacity"`
	DrawIndicator *bool    `json:"draw_indicator"`
	ConnectLines  *bool    `json:"connect_lines"`
	LineColor     string   `json:"line_color"`
	LineThickness float64  `json:"line_thickness"`
}

// resolvedStyle is styleArgs after defaulting and color parsing.
type resolvedStyle struct {
	borderWidth   int
	borderColor   engine.Color
	opacity       float64
	drawIndicator bool
	connectLines  bool
	lineColor     engine.Color
	lineThickness float64
}

// resolve applies defaults and parses colors.
func (a styleArgs) resolve() (resolvedStyle, error) {
	st := resolvedStyle{
		borderWidth:   3,
		opacity:       1.0,
		drawIndicator: a.DrawIndicator == nil || *a.DrawIndicator,
		connectLines:  a.ConnectLines == nil || *a.ConnectLines,
		lineThickness: a.LineThickness,
	}
	if a.BorderWidth != nil {
		st.borderWidth = *a.BorderWidth
	}
	if a.Opacity != nil {
		st.opacity = *a.Opacity
	}
	if st.lineThickness <= 0 {
		st.lineThickness = 2
	}

	borderOpacity := 1.0
	if a.BorderOpacity != nil {
		borderOpacity = *a.BorderOpacity
	}

	var err error
	st.borderColor, err = imaging.ParseColor(a.BorderColor, borderOpacity, engine.NewColor(1, 1, 1))
	if err != nil {
		return st, err
	}
	st.lineColor, err = imaging.ParseColor(a.LineColor, 1.0, st.borderColor.WithAlpha(1.0))
	return st, err
}

// clampZoom validates a requested zoom factor against the shell's limits:
// defaults to 2.0, clamps into [minZoom, maxZoom], then caps the factor so
// max(regionW, regionH) * zoom stays within maxInsetDim. The cap wins over
// the minimum.
func clampZoom(zoom float64, regionW, regionH int) float64 {
	if zoom == 0 {
		zoom = 2.0
	}
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	longest := regionW
	if regionH > longest {
		longest = regionH
	}
	if longest > 0 && float64(longest)*zoom > maxInsetDim {
		zoom = float64(maxInsetDim) / float64(longest)
	}
	return zoom
}

// === Inset Pipeline Handlers ===

type insetRenderArgs struct {
	selectionArgs
	styleArgs
	Path     string  `json:"path"`
	Zoom     float64 `json:"zoom"`
	Method   string  `json:"method"`
	Position string  `json:"position"`
	PosX     *int    `json:"pos_x"`
	PosY     *int    `json:"pos_y"`
	Margin   *int    `json:"margin"`
	OutPath  string  `json:"out_path"`
}

// InsetRenderResult reports a completed single-shot render.
type InsetRenderResult struct {
	SourceRect engine.Rect           `json:"source_rect"`
	InsetRect  engine.Rect           `json:"inset_rect"`
	Zoom       float64               `json:"zoom"` // zoom actually applied, after clamping
	SavedTo    string                `json:"saved_to,omitempty"`
	Preview    *imaging.EncodedImage `json:"preview"`
}

func (s *Server) handleInsetRender(args json.RawMessage) (interface{}, error) {
	var a insetRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	shape, err := a.shape()
	if err != nil {
		return nil, err
	}
	method := engine.Lanczos
	if a.Method != "" {
		if method, err = engine.ParseMethod(a.Method); err != nil {
			return nil, err
		}
	}
	style, err := a.resolve()
	if err != nil {
		return nil, err
	}

	srcImg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	dst := engine.FromImage(srcImg)

	w, h := a.selectionSize(shape)
	zoom := clampZoom(a.Zoom, w, h)

	preset := engine.PresetTopRight
	if a.Position != "" {
		preset = engine.ParsePreset(a.Position)
	}
	margin := 10
	if a.Margin != nil {
		margin = *a.Margin
	}
	var custom *engine.Position
	if a.PosX != nil && a.PosY != nil {
		custom = &engine.Position{X: *a.PosX, Y: *a.PosY}
	}

	res, err := inset.Render(dst, inset.Options{
		Shape:         shape,
		Rect:          engine.Rect{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: a.Y1},
		CenterX:       a.CenterX,
		CenterY:       a.CenterY,
		Diameter:      a.Diamtr,
		Zoom:          zoom,
		Method:        method,
		BorderWidth:   style.borderWidth,
		BorderColor:   style.borderColor,
		Opacity:       style.opacity,
		Preset:        preset,
		Margin:        margin,
		Custom:        custom,
		DrawIndicator: style.drawIndicator,
		ConnectLines:  style.connectLines,
		LineColor:     style.lineColor,
		LineThickness: style.lineThickness,
	})
	if err != nil {
		return nil, err
	}

	out := engine.ToImage(dst)
	result := &InsetRenderResult{
		SourceRect: res.SourceRect,
		InsetRect:  res.InsetRect,
		Zoom:       zoom,
	}
	if a.OutPath != "" {
		if err := imaging.Save(out, a.OutPath); err != nil {
			return nil, err
		}
		result.SavedTo = a.OutPath
	}
	if result.Preview, err = imaging.Preview(out, previewMaxEdge); err != nil {
		return nil, err
	}
	return result, nil
}

type insetExtractArgs struct {
	selectionArgs
	Path    string  `json:"path"`
	Zoom    float64 `json:"zoom"`
	Method  string  `json:"method"`
	OutPath string  `json:"out_path"`
	Key     string  `json:"key"`
}

// InsetExtractResult reports a saved inset artifact and its metadata key.
type InsetExtractResult struct {
	Key        string      `json:"key"`
	SourceRect engine.Rect `json:"source_rect"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Zoom       float64     `json:"zoom"`
	SavedTo    string      `json:"saved_to"`
}

func (s *Server) handleInsetExtract(args json.RawMessage) (interface{}, error) {
	var a insetExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutPath == "" {
		return nil, fmt.Errorf("out_path is required")
	}

	shape, err := a.shape()
	if err != nil {
		return nil, err
	}
	method := engine.Lanczos
	if a.Method != "" {
		if method, err = engine.ParseMethod(a.Method); err != nil {
			return nil, err
		}
	}

	srcImg, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	src := engine.FromImage(srcImg)

	var reg *engine.Region
	var srcRect engine.Rect
	switch shape {
	case engine.Circular:
		reg, srcRect, err = engine.ExtractCircle(src, a.CenterX, a.CenterY, a.Diamtr)
	default:
		srcRect = engine.Rect{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: a.Y1}
		reg, err = engine.ExtractRect(src, srcRect)
	}
	if err != nil {
		return nil, err
	}

	zoom := clampZoom(a.Zoom, reg.Width, reg.Height)
	scaled := engine.ScaleRegion(reg,
		int(float64(reg.Width)*zoom+0.5), int(float64(reg.Height)*zoom+0.5), method)

	artifact := engine.ToImage(&engine.Image{Ch: scaled.Ch, Width: scaled.Width, Height: scaled.Height})
	if err := imaging.Save(artifact, a.OutPath); err != nil {
		return nil, err
	}

	key := a.Key
	if key == "" {
		key = a.OutPath
	}
	s.meta.Set(key, map[string]string{
		MetaSourceRect:  formatRect(srcRect),
		MetaShape:       shape.String(),
		MetaZoom:        strconv.FormatFloat(zoom, 'f', -1, 64),
		MetaSourceImage: imaging.Identity(a.Path),
		MetaArtifact:    a.OutPath,
	})

	return &InsetExtractResult{
		Key:        key,
		SourceRect: srcRect,
		Width:      scaled.Width,
		Height:     scaled.Height,
		Zoom:       zoom,
		SavedTo:    a.OutPath,
	}, nil
}

type insetFinalizeArgs struct {
	styleArgs
	Key      string `json:"key"`
	DestPath string `json:"dest_path"`
	PosX     int    `json:"pos_x"`
	PosY     int    `json:"pos_y"`
	OutPath  string `json:"out_path"`
}

// InsetFinalizeResult reports a completed finalize composite.
type InsetFinalizeResult struct {
	SourceRect  engine.Rect           `json:"source_rect"`
	InsetRect   engine.Rect           `json:"inset_rect"`
	SourceImage string                `json:"source_image"`
	SavedTo     string                `json:"saved_to,omitempty"`
	Preview     *imaging.EncodedImage `json:"preview"`
}

func (s *Server) handleInsetFinalize(args json.RawMessage) (interface{}, error) {
	var a insetFinalizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	props, ok := s.meta.Get(a.Key)
	if !ok {
		return nil, fmt.Errorf("no metadata stored under key %q", a.Key)
	}
	srcRect, err := parseRect(props[MetaSourceRect])
	if err != nil {
		return nil, fmt.Errorf("stored %s: %w", MetaSourceRect, err)
	}
	shape := engine.Rectangular
	if props[MetaShape] == engine.Circular.String() {
		shape = engine.Circular
	}
	artifactPath := props[MetaArtifact]
	if artifactPath == "" {
		return nil, fmt.Errorf("metadata for %q has no %s", a.Key, MetaArtifact)
	}

	style, err := a.resolve()
	if err != nil {
		return nil, err
	}

	artifactImg, err := s.cache.Load(artifactPath)
	if err != nil {
		return nil, err
	}
	reg := engine.RegionFromImage(engine.FromImage(artifactImg), shape)

	destImg, err := s.cache.Load(a.DestPath)
	if err != nil {
		return nil, err
	}
	dst := engine.FromImage(destImg)

	res := inset.Finalize(dst, reg, inset.FinalizeOptions{
		SourceRect:    srcRect,
		Shape:         shape,
		BorderWidth:   style.borderWidth,
		BorderColor:   style.borderColor,
		Opacity:       style.opacity,
		Position:      engine.Position{X: a.PosX, Y: a.PosY},
		DrawIndicator: style.drawIndicator,
		ConnectLines:  style.connectLines,
		LineColor:     style.lineColor,
		LineThickness: style.lineThickness,
	})

	out := engine.ToImage(dst)
	result := &InsetFinalizeResult{
		SourceRect:  res.SourceRect,
		InsetRect:   res.InsetRect,
		SourceImage: props[MetaSourceImage],
	}
	if a.OutPath != "" {
		if err := imaging.Save(out, a.OutPath); err != nil {
			return nil, err
		}
		result.SavedTo = a.OutPath
	}
	if result.Preview, err = imaging.Preview(out, previewMaxEdge); err != nil {
		return nil, err
	}
	return result, nil
}

// === Metadata Handlers ===

type metadataSetArgs struct {
	Key        string            `json:"key"`
	Properties map[string]string `json:"properties"`
}

func (s *Server) handleMetadataSet(args json.RawMessage) (interface{}, error) {
	var a metadataSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Key == "" {
		return nil, fmt.Errorf("key is required")
	}
	s.meta.Set(a.Key, a.Properties)
	props, _ := s.meta.Get(a.Key)
	return map[string]interface{}{"key": a.Key, "properties": props}, nil
}

type metadataGetArgs struct {
	Key string `json:"key"`
}

func (s *Server) handleMetadataGet(args json.RawMessage) (interface{}, error) {
	var a metadataGetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	props, ok := s.meta.Get(a.Key)
	if !ok {
		return nil, fmt.Errorf("no metadata stored under key %q", a.Key)
	}
	return map[string]interface{}{"key": a.Key, "properties": props}, nil
}

func formatRect(r engine.Rect) string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X0, r.Y0, r.X1, r.Y1)
}

func parseRect(s string) (engine.Rect, error) {
	var r engine.Rect
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &r.X0, &r.Y0, &r.X1, &r.Y1); err != nil {
		return engine.Rect{}, fmt.Errorf("malformed rect %q", s)
	}
	return r, nil
}
