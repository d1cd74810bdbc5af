package warppath

import "github.com/inkwarp/liquify/geom"

// Node is one element of a Path (spec §3). Kind selects the
// geometric role; NodeType controls control-point coupling; Ctrl1/
// Ctrl2 are only meaningful when Kind == CurveTo. Selected/Hovered
// are transient UI tags that never influence displacement output.
type Node struct {
	Kind     Kind
	NodeType NodeType
	Selected bool
	Hovered  bool

	Warp WarpDescriptor

	// Ctrl1, Ctrl2 are the CurveTo control points, in the same 2-D
	// frame as anchors. Meaningless (and untouched) for other kinds.
	Ctrl1, Ctrl2 geom.Vec2
}

// NewMoveTo builds a MoveTo node at the given warp descriptor's anchor.
func NewMoveTo(warp WarpDescriptor) *Node {
	return &Node{Kind: MoveTo, NodeType: Cusp, Warp: warp}
}

// NewLineTo builds a LineTo node.
func NewLineTo(warp WarpDescriptor) *Node {
	return &Node{Kind: LineTo, NodeType: Cusp, Warp: warp}
}

// NewCurveTo builds a CurveTo node with the given control points.
func NewCurveTo(warp WarpDescriptor, ctrl1, ctrl2 geom.Vec2) *Node {
	return &Node{Kind: CurveTo, NodeType: Cusp, Warp: warp, Ctrl1: ctrl1, Ctrl2: ctrl2}
}

// NewClosePath builds a ClosePath node.
func NewClosePath(warp WarpDescriptor) *Node {
	return &Node{Kind: ClosePath, NodeType: Cusp, Warp: warp}
}

// Point returns the node's anchor point.
func (n *Node) Point() geom.Vec2 {
	return n.Warp.Point
}

// Clone returns a deep copy of the node (Node itself has no pointer
// fields beyond the receiver, but Clone is provided so callers never
// need to reason about aliasing when cloning a Document, spec §5).
func (n *Node) Clone() *Node {
	clone := *n
	return &clone
}
