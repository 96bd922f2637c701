package server

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ironsheep/munsell-tools-mcp/internal/convert"
	"github.com/ironsheep/munsell-tools-mcp/internal/munsell"
	"github.com/ironsheep/munsell-tools-mcp/internal/picker"
	"github.com/ironsheep/munsell-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "munsell_parse", "munsell_swatch").
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
	// Notation
	case "munsell_parse":
		return s.handleParse(args)
	case "munsell_compose":
		return s.handleCompose(args)

	// Hue circle
	case "munsell_degree":
		return s.handleDegree(args)
	case "munsell_undegree":
		return s.handleUndegree(args)
	case "munsell_hue_circle":
		return s.handleHueCircle(args)

	// sRGB conversion
	case "munsell_to_srgb":
		return s.handleToSRGB(args)
	case "munsell_from_srgb":
		return s.handleFromSRGB(args)

	// Rendering
	case "munsell_swatch":
		return s.handleSwatch(args)
	case "munsell_value_scale":
		return s.handleValueScale(args)
	case "munsell_hue_page":
		return s.handleHuePage(args)

	// Image picking
	case "munsell_sample":
		return s.handleSample(args)
	case "munsell_dominant":
		return s.handleDominant(args)

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

// colorDescription is the full field breakdown returned by the notation tools.
type colorDescription struct {
	Code      string   `json:"code"`
	Neutral   bool     `json:"neutral"`
	Family    string   `json:"family,omitempty"`
	Step      float64  `json:"step,omitempty"`
	Value     float64  `json:"value"`
	Chroma    float64  `json:"chroma,omitempty"`
	Degree    *float64 `json:"degree,omitempty"` // hue circle position; chromatic only
	NearBlack bool     `json:"near_black"`
	NearWhite bool     `json:"near_white"`
	Hex       string   `json:"hex"` // approximate sRGB preview
}

func describe(c munsell.Color) *colorDescription {
	d := &colorDescription{
		Code:      c.Code(),
		Neutral:   c.IsNeutral(),
		Family:    c.Family(),
		Step:      c.Step(),
		Value:     c.Value(),
		Chroma:    c.Chroma(),
		NearBlack: c.IsNearBlack(),
		NearWhite: c.IsNearWhite(),
		Hex:       convert.ToHex(c),
	}
	if c.IsChromatic() {
		deg := c.Degree()
		d.Degree = &deg
	}
	return d
}

// === Notation Handlers ===

type parseArgs struct {
	Spec string `json:"spec"`
}

func (s *Server) handleParse(args json.RawMessage) (interface{}, error) {
	var a parseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := munsell.Parse(a.Spec)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

type composeArgs struct {
	Hue    string      `json:"hue"`
	Value  interface{} `json:"value"`  // number or numeric string
	Chroma interface{} `json:"chroma"` // number or numeric string; optional for neutral
}

func (s *Server) handleCompose(args json.RawMessage) (interface{}, error) {
	var a composeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := munsell.New(a.Hue, fieldString(a.Value), fieldString(a.Chroma))
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

// fieldString renders an optional numeric-or-string JSON field; absent
// fields stay "" so the constructor can report them as undefined.
func fieldString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// === Hue Circle Handlers ===

type degreeArgs struct {
	Hue string `json:"hue"`
}

type degreeResult struct {
	Hue    string  `json:"hue"`
	Degree float64 `json:"degree"`
}

// handleDegree exposes the Degree conversion. Degree treats bad input as a
// usage-contract panic, so the tool boundary recovers and reports it.
func (s *Server) handleDegree(args json.RawMessage) (result interface{}, err error) {
	var a degreeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return &degreeResult{Hue: a.Hue, Degree: munsell.Degree(a.Hue)}, nil
}

type undegreeArgs struct {
	Degree float64 `json:"degree"`
}

func (s *Server) handleUndegree(args json.RawMessage) (result interface{}, err error) {
	var a undegreeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return &degreeResult{Hue: munsell.Undegree(a.Degree), Degree: a.Degree}, nil
}

type hueCircleEntry struct {
	Family      string  `json:"family"`
	Index       int     `json:"index"`
	StartDegree float64 `json:"start_degree"` // degree of step 0 (exclusive)
	MidDegree   float64 `json:"mid_degree"`   // degree of the 5-step hue
}

func (s *Server) handleHueCircle(json.RawMessage) (interface{}, error) {
	entries := make([]hueCircleEntry, len(munsell.Families))
	for i, f := range munsell.Families {
		entries[i] = hueCircleEntry{
			Family:      f,
			Index:       i,
			StartDegree: float64(i) * 10,
			MidDegree:   float64(i)*10 + 5,
		}
	}
	return map[string]interface{}{"families": entries}, nil
}

// === sRGB Conversion Handlers ===

type rgbTriple struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type srgbResult struct {
	Code string    `json:"code"`
	Hex  string    `json:"hex"`
	RGB  rgbTriple `json:"rgb"`
}

func (s *Server) handleToSRGB(args json.RawMessage) (interface{}, error) {
	var a parseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := munsell.Parse(a.Spec)
	if err != nil {
		return nil, err
	}
	r, g, b := convert.ToRGB(c)
	return &srgbResult{Code: c.Code(), Hex: convert.ToHex(c), RGB: rgbTriple{r, g, b}}, nil
}

type fromSRGBArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleFromSRGB(args json.RawMessage) (interface{}, error) {
	var a fromSRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := convert.FromHex(a.Hex)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

// === Rendering Handlers ===

type swatchArgs struct {
	Spec string `json:"spec"`
	Size int    `json:"size"`
}

func (s *Server) handleSwatch(args json.RawMessage) (interface{}, error) {
	var a swatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = 128
	}
	c, err := munsell.Parse(a.Spec)
	if err != nil {
		return nil, err
	}
	return swatch.Render(c, a.Size)
}

type valueScaleArgs struct {
	Spec  string `json:"spec"`
	Patch int    `json:"patch"`
}

func (s *Server) handleValueScale(args json.RawMessage) (interface{}, error) {
	var a valueScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Patch == 0 {
		a.Patch = 24
	}
	c, err := munsell.Parse(a.Spec)
	if err != nil {
		return nil, err
	}
	return swatch.ValueScale(c, a.Patch)
}

type huePageArgs struct {
	Hue       string  `json:"hue"`
	MaxChroma float64 `json:"max_chroma"`
	Patch     int     `json:"patch"`
	Scale     float64 `json:"scale"`
}

func (s *Server) handleHuePage(args json.RawMessage) (interface{}, error) {
	var a huePageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxChroma == 0 {
		a.MaxChroma = 12
	}
	if a.Patch == 0 {
		a.Patch = 24
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return swatch.HuePage(a.Hue, a.MaxChroma, a.Patch, a.Scale)
}

// === Image Picking Handlers ===

type sampleArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSample(args json.RawMessage) (interface{}, error) {
	var a sampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return picker.At(img, a.X, a.Y)
}

type dominantArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleDominant(args json.RawMessage) (interface{}, error) {
	var a dominantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *picker.Region
	if a.Region != nil {
		region = &picker.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	entries, err := picker.Dominant(img, a.Count, region)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"colors": entries}, nil
}
