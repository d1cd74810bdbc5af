package warppath

import "fmt"

// Path is an ordered, non-empty sequence of Nodes whose first Node is
// always a MoveTo (spec §3). Nodes are addressed by pointer identity
// rather than by back-references between nodes and their host list
// (spec §9's "Back-references in paths" design note).
type Path struct {
	nodes []*Node
}

// NewPath constructs a Path starting with the given MoveTo node.
// It panics if head is not a MoveTo: a Path without a MoveTo head is
// a corrupt invariant, not a recoverable runtime error (spec §3).
func NewPath(head *Node) *Path {
	if head.Kind != MoveTo {
		panic("warppath: a Path's first Node must be a MoveTo")
	}
	return &Path{nodes: []*Node{head}}
}

// Nodes returns the path's nodes in order. The returned slice is
// owned by Path; callers must not mutate its length.
func (p *Path) Nodes() []*Node {
	return p.nodes
}

// Len returns the number of nodes in the path.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Head returns the path's first node (always a MoveTo).
func (p *Path) Head() *Node {
	return p.nodes[0]
}

func (p *Path) indexOf(n *Node) int {
	for i, cur := range p.nodes {
		if cur == n {
			return i
		}
	}
	return -1
}

// Append adds a node to the tail of the path. This is the common-case
// O(1) insertion referenced by spec §4.2.
func (p *Path) Append(n *Node) {
	p.nodes = append(p.nodes, n)
}

// InsertNode inserts newNode immediately after `after` in the path.
// Inserting after the current tail is O(1); inserting elsewhere
// shifts the tail of the slice (spec §4.2 only guarantees O(1) at the
// tail, the common case for interactive path drawing).
func (p *Path) InsertNode(after *Node, newNode *Node) error {
	idx := p.indexOf(after)
	if idx < 0 {
		return fmt.Errorf("warppath: InsertNode: node not found in path")
	}
	if idx == len(p.nodes)-1 {
		p.nodes = append(p.nodes, newNode)
		return nil
	}
	p.nodes = append(p.nodes, nil)
	copy(p.nodes[idx+2:], p.nodes[idx+1:])
	p.nodes[idx+1] = newNode
	return nil
}

// DeleteNode removes node from the path.
//
// If node is the head and the path has a successor, the head's
// identity (Kind, NodeType, Control1/Control2, WarpType) is retained
// but its Point/Radius/Strength are overwritten with the successor's,
// and the successor is spliced out — matching the original
// implementation's delete_node, which keeps the first list link but
// copies the second node's point/radius/strength into it before
// freeing the second node. Otherwise, node is simply spliced out.
//
// Deleting the sole remaining node of a path is rejected: a Path must
// never become empty (spec §3 invariant).
func (p *Path) DeleteNode(node *Node) error {
	idx := p.indexOf(node)
	if idx < 0 {
		return fmt.Errorf("warppath: DeleteNode: node not found in path")
	}

	if idx == 0 {
		if len(p.nodes) == 1 {
			return fmt.Errorf("warppath: DeleteNode: cannot delete the only node of a path")
		}
		successor := p.nodes[1]
		node.Warp.Point = successor.Warp.Point
		node.Warp.Radius = successor.Warp.Radius
		node.Warp.Strength = successor.Warp.Strength
		p.nodes = append(p.nodes[:1], p.nodes[2:]...)
		return nil
	}

	p.nodes = append(p.nodes[:idx], p.nodes[idx+1:]...)
	return nil
}

// Pair is a (previous, current) node pair yielded by IteratePairs. For
// the path's head, Prev is nil.
type Pair struct {
	Prev, Current *Node
}

// IteratePairs returns the sequence of (prev, current) node pairs
// along the path, in order. The head yields a sentinel pair with a
// nil Prev (spec §4.2).
func (p *Path) IteratePairs() []Pair {
	pairs := make([]Pair, len(p.nodes))
	var prev *Node
	for i, n := range p.nodes {
		pairs[i] = Pair{Prev: prev, Current: n}
		prev = n
	}
	return pairs
}

// Clone returns a deep copy of the path (new Node pointers, same
// values), used to snapshot a Document before handing it to the pure
// pixel-producing operations (spec §5).
func (p *Path) Clone() *Path {
	clone := &Path{nodes: make([]*Node, len(p.nodes))}
	for i, n := range p.nodes {
		clone.nodes[i] = n.Clone()
	}
	return clone
}
