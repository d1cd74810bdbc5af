// Package warppath implements the path data model of the liquify warp
// engine: warp descriptors, nodes, paths and documents (spec §3, §4.2).
//
// Grounded on the teacher's path.go tagged-variant PathElement design
// ("use a tagged variant with a shared header; do not emulate
// inheritance", per the design notes), generalized from drawing
// commands to warp-carrying nodes.
package warppath

// Kind identifies the geometric role of a Node, mirroring the
// MoveTo/LineTo/CurveTo/ClosePath tagged variant of spec §3.
type Kind uint8

const (
	MoveTo Kind = iota
	LineTo
	CurveTo
	ClosePath
)

// String renders the Kind name, for diagnostics (the blob codec
// writes Kind as its numeric value).
func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	case ClosePath:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

// NodeType controls how a node's adjoining control points relate
// (spec §3, Node.node_type and §4.3).
type NodeType uint8

const (
	Cusp NodeType = iota
	Smooth
	Symmetrical
	AutoSmooth
)

func (t NodeType) String() string {
	switch t {
	case Cusp:
		return "Cusp"
	case Smooth:
		return "Smooth"
	case Symmetrical:
		return "Symmetrical"
	case AutoSmooth:
		return "AutoSmooth"
	default:
		return "Unknown"
	}
}

// WarpType selects the stamp's vector-field shape (spec §3, §4.5).
type WarpType uint8

const (
	Linear WarpType = iota
	RadialGrow
	RadialShrink
)

func (t WarpType) String() string {
	switch t {
	case Linear:
		return "Linear"
	case RadialGrow:
		return "RadialGrow"
	case RadialShrink:
		return "RadialShrink"
	default:
		return "Unknown"
	}
}

// Cycle advances a NodeType through the fixed cycle used by the edit
// state machine's ctrl+click handler (spec §4.7):
// Cusp -> Smooth -> Symmetrical -> AutoSmooth -> Cusp.
func (t NodeType) Cycle() NodeType {
	return (t + 1) % 4
}

// Cycle advances a WarpType through Linear -> RadialGrow ->
// RadialShrink -> Linear, per the edit state machine's ctrl+click on
// the strength handle (spec §4.7).
func (t WarpType) Cycle() WarpType {
	return (t + 1) % 3
}
