// Package edit implements the interactive editing state machine that
// sits in front of the warp engine: tool switching, hit testing,
// dragging handles, and the node/segment mutations a pointer-driven
// host triggers (spec §4.7).
package edit

import (
	"math"
	"sync"

	"github.com/inkwarp/liquify/config"
	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// Tool selects which gesture a press/release pair performs.
type Tool int

const (
	NodeTool Tool = iota
	PointTool
	LineTool
	CurveTool
)

// State is the edit state machine's current mode (spec §4.7).
type State int

const (
	Idle State = iota
	PlacingLineEnd
	PlacingCurveEnd
	Dragging
)

// DefaultHitTolerance is the default pointer-to-handle distance, in
// raw-frame pixels, within which a press counts as a hit.
const DefaultHitTolerance = 8.0

// DefaultDragThreshold is the minimum pointer movement, in raw-frame
// pixels, since button-down before a press counts as a drag rather
// than a click (spec §4.7).
const DefaultDragThreshold = 2.0

// Session is the mutable editing state layered over a Document: the
// active tool, any in-progress drag, and the hit-test tolerances.
// Safe for concurrent use; structural mutations to Doc are taken
// under mu, matching the single-writer contract of spec §5.
type Session struct {
	mu  sync.Mutex
	Doc *warppath.Document

	Store         *config.Store
	HitTolerance  float64
	DragThreshold float64

	tool  Tool
	state State

	dragPath    *warppath.Path
	dragNode    *warppath.Node
	dragHandle  HandleKind
	dragStart   geom.Vec2
	dragMoved   bool
	activePath  *warppath.Path
}

// NewSession returns a Session over doc, using store for new-node
// defaults.
func NewSession(doc *warppath.Document, store *config.Store) *Session {
	return &Session{
		Doc:           doc,
		Store:         store,
		HitTolerance:  DefaultHitTolerance,
		DragThreshold: DefaultDragThreshold,
		tool:          NodeTool,
		state:         Idle,
	}
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// SetTool switches the active tool, abandoning any in-progress drag.
func (s *Session) SetTool(t Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tool = t
	s.state = Idle
	s.dragNode = nil
}

// State returns the state machine's current mode.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot clones the document under the session's write lock, for
// handing to the pure pixel-producing pipeline (spec §5).
func (s *Session) Snapshot() *warppath.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Doc.Clone()
}

func (s *Session) defaultStrength() float64 {
	if s.Store != nil {
		return s.Store.LastStrength()
	}
	return config.DefaultStrength
}

func (s *Session) defaultRadius() float64 {
	if s.Store != nil {
		return s.Store.LastRadius()
	}
	return config.DefaultRadius
}

// Press handles a button-1 press at pos, dispatching on the active
// tool (spec §4.7).
func (s *Session) Press(pos geom.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.tool {
	case NodeTool:
		s.pressNodeTool(pos)
	case PointTool:
		s.pressPointTool(pos)
	case LineTool:
		s.pressLineTool(pos)
	case CurveTool:
		s.pressCurveTool(pos)
	}
}

func (s *Session) pressNodeTool(pos geom.Vec2) {
	hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, true)
	if !ok {
		return
	}
	s.beginDrag(hit.Path, hit.Node, hit.Handle, pos)
}

func (s *Session) pressPointTool(pos geom.Vec2) {
	if hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false); ok {
		s.beginDrag(hit.Path, hit.Node, hit.Handle, pos)
		return
	}

	warp := warppath.NewWarpDescriptor(pos, s.defaultStrength(), s.defaultRadius(), warppath.Linear)
	node := warppath.NewMoveTo(warp)
	path := warppath.NewPath(node)
	s.Doc.AddPath(path)
	s.beginDrag(path, node, HandleStrength, pos)
}

func (s *Session) pressLineTool(pos geom.Vec2) {
	if hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false); ok && hit.Handle == HandleCenter {
		s.activePath = hit.Path
		s.state = PlacingLineEnd
		return
	}

	warp := warppath.NewWarpDescriptor(pos, s.defaultStrength(), s.defaultRadius(), warppath.Linear)
	node := warppath.NewMoveTo(warp)
	path := warppath.NewPath(node)
	s.Doc.AddPath(path)
	s.activePath = path
	s.state = PlacingLineEnd
}

func (s *Session) pressCurveTool(pos geom.Vec2) {
	if hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false); ok && hit.Handle == HandleCenter {
		s.activePath = hit.Path
		s.state = PlacingCurveEnd
		return
	}

	warp := warppath.NewWarpDescriptor(pos, s.defaultStrength(), s.defaultRadius(), warppath.Linear)
	node := warppath.NewMoveTo(warp)
	path := warppath.NewPath(node)
	s.Doc.AddPath(path)
	s.activePath = path
	s.state = PlacingCurveEnd
}

// Release handles a button-1 release at pos.
func (s *Session) Release(pos geom.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case PlacingLineEnd:
		s.releaseLineEnd(pos)
	case PlacingCurveEnd:
		s.releaseCurveEnd(pos)
	case Dragging:
		s.endDrag()
	}
}

func (s *Session) releaseLineEnd(pos geom.Vec2) {
	if s.activePath == nil {
		s.state = Idle
		return
	}
	tail := s.activePath.Nodes()[s.activePath.Len()-1]
	warp := warppath.NewWarpDescriptor(pos, s.defaultStrength(), s.defaultRadius(), tail.Warp.Type)
	node := warppath.NewLineTo(warp)
	s.activePath.Append(node)
	s.beginDrag(s.activePath, node, HandleCenter, pos)
}

func (s *Session) releaseCurveEnd(pos geom.Vec2) {
	if s.activePath == nil {
		s.state = Idle
		return
	}
	tail := s.activePath.Nodes()[s.activePath.Len()-1]
	start := tail.Point()
	ctrl1 := start.Lerp(pos, 1.0/3.0)
	ctrl2 := start.Lerp(pos, 2.0/3.0)
	warp := warppath.NewWarpDescriptor(pos, s.defaultStrength(), s.defaultRadius(), tail.Warp.Type)
	node := warppath.NewCurveTo(warp, ctrl1, ctrl2)
	s.activePath.Append(node)
	s.beginDrag(s.activePath, node, HandleCtrl2, pos)
}

func (s *Session) beginDrag(path *warppath.Path, node *warppath.Node, handle HandleKind, pos geom.Vec2) {
	s.dragPath = path
	s.dragNode = node
	s.dragHandle = handle
	s.dragStart = pos
	s.dragMoved = false
	s.state = Dragging
}

// Motion handles pointer movement at pos while a drag is in progress.
// Movement below DragThreshold since button-down is not yet
// considered a drag (spec §4.7's "a hit is a drag only when...").
func (s *Session) Motion(pos geom.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Dragging || s.dragNode == nil {
		return
	}
	if pos.Distance(s.dragStart) >= s.DragThreshold {
		s.dragMoved = true
	}
	s.applyHandleMotion(pos)
}

func (s *Session) applyHandleMotion(pos geom.Vec2) {
	n := s.dragNode
	switch s.dragHandle {
	case HandleCenter:
		delta := pos.Sub(n.Point())
		s.translateNode(n, delta)
	case HandleStrength:
		n.Warp.Strength = pos
	case HandleRadius:
		n.Warp.Radius = pos
	case HandleCtrl1:
		n.Ctrl1 = pos
		s.mirrorCtrl(n, true)
	case HandleCtrl2:
		n.Ctrl2 = pos
		s.mirrorCtrl(n, false)
	}
}

// translateNode moves a node's anchor (and its strength/radius
// handles by the same delta) and, if the node is part of an
// adjoining CurveTo segment, translates the attached control point
// too (spec §4.7's Dragging(Center) rule).
func (s *Session) translateNode(n *warppath.Node, delta geom.Vec2) {
	n.Warp = n.Warp.Translate(delta)

	if n.Kind == warppath.CurveTo {
		n.Ctrl2 = n.Ctrl2.Add(delta)
	}

	if s.dragPath == nil {
		return
	}
	nodes := s.dragPath.Nodes()
	for i, cur := range nodes {
		if cur != n {
			continue
		}
		if i+1 < len(nodes) && nodes[i+1].Kind == warppath.CurveTo {
			nodes[i+1].Ctrl1 = nodes[i+1].Ctrl1.Add(delta)
		}
		return
	}
}

// mirrorCtrl applies the Smooth/Symmetrical mirroring rule across the
// shared anchor between a CurveTo node's own Ctrl1 (near its
// predecessor) and the previous node's Ctrl2 (near the same anchor),
// per spec §4.7's Dragging(CtrlPoint) rule. movedIsCtrl1 selects which
// side of the pair was just dragged.
func (s *Session) mirrorCtrl(n *warppath.Node, movedIsCtrl1 bool) {
	if s.dragPath == nil {
		return
	}
	nodes := s.dragPath.Nodes()
	idx := -1
	for i, cur := range nodes {
		if cur == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	if movedIsCtrl1 {
		// n.Ctrl1 sits near its predecessor's anchor; the mirrored
		// control is the predecessor's Ctrl2, sharing that anchor.
		if idx == 0 {
			return
		}
		prev := nodes[idx-1]
		if prev.Kind != warppath.CurveTo {
			return
		}
		anchor := prev.Point()
		mirrorAt(prev.NodeType, anchor, n.Ctrl1, &prev.Ctrl2)
		return
	}

	// n.Ctrl2 sits near n's own anchor; the mirrored control is the
	// successor's Ctrl1, sharing that anchor.
	if idx+1 >= len(nodes) {
		return
	}
	next := nodes[idx+1]
	if next.Kind != warppath.CurveTo {
		return
	}
	anchor := n.Point()
	mirrorAt(n.NodeType, anchor, n.Ctrl2, &next.Ctrl1)
}

// mirrorAt rewrites *mirror so it sits opposite moved across anchor,
// according to nodeType: Symmetrical keeps the same length, Smooth
// keeps the mirror's own length but aligns direction, anything else
// is left untouched.
func mirrorAt(nodeType warppath.NodeType, anchor, moved geom.Vec2, mirror *geom.Vec2) {
	dir := anchor.Sub(moved)
	length := dir.Length()
	if length == 0 {
		return
	}
	switch nodeType {
	case warppath.Symmetrical:
		*mirror = anchor.Add(dir)
	case warppath.Smooth:
		mirrorLength := mirror.Sub(anchor).Length()
		unit := dir.Mul(1 / length)
		*mirror = anchor.Add(unit.Mul(mirrorLength))
	}
}

func (s *Session) endDrag() {
	if s.dragNode != nil && s.tool == CurveTool {
		if s.dragMoved {
			s.dragNode.NodeType = warppath.Symmetrical
		} else {
			s.dragNode.NodeType = warppath.Cusp
		}
	}
	s.state = Idle
	s.dragNode = nil
	s.dragPath = nil
}

// Button3 handles a button-3 (secondary) press at pos: delete the hit
// node, delete the hit path, or toggle to the node tool on background
// (spec §4.7).
func (s *Session) Button3(pos geom.Vec2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false); ok && hit.Handle == HandleCenter {
		return hit.Path.DeleteNode(hit.Node)
	}
	if hit, ok := HitTestSegments(s.Doc, pos, s.HitTolerance); ok {
		s.Doc.RemovePath(hit.Path)
		return nil
	}
	s.tool = NodeTool
	return nil
}

// CycleNodeType handles ctrl+click on an anchor, cycling node_type
// through {Cusp, Smooth, Symmetrical, AutoSmooth} (spec §4.7).
func (s *Session) CycleNodeType(pos geom.Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false)
	if !ok || hit.Handle != HandleCenter {
		return false
	}
	hit.Node.NodeType = hit.Node.NodeType.Cycle()
	return true
}

// CycleWarpType handles ctrl+click on a strength handle, cycling
// warp_type through {Linear, RadialGrow, RadialShrink} (spec §4.7).
func (s *Session) CycleWarpType(pos geom.Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hit, ok := HitTestNodes(s.Doc, pos, s.HitTolerance, false)
	if !ok || hit.Handle != HandleStrength {
		return false
	}
	hit.Node.Warp.Type = hit.Node.Warp.Type.Cycle()
	return true
}

// InsertNodeOnSegment handles ctrl+click on a path segment: splits a
// curve with Casteljau subdivision or a line linearly, both at the
// clicked point's parameter along the segment,
// inserting a new node of the same kind as the segment's end node
// (spec §4.7).
func (s *Session) InsertNodeOnSegment(pos geom.Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hit, ok := HitTestSegments(s.Doc, pos, s.HitTolerance)
	if !ok {
		return false
	}

	t := clamp01(hit.T)
	strengthMag := math.Max(hit.Prev.Warp.StrengthVector().Length(), hit.Cur.Warp.StrengthVector().Length())
	radiusMag := geom.Mix(hit.Prev.Warp.RadiusMagnitude(), hit.Cur.Warp.RadiusMagnitude(), t)

	if hit.Cur.Kind == warppath.CurveTo {
		c := geom.NewCubicBez(hit.Prev.Point(), hit.Cur.Ctrl1, hit.Cur.Ctrl2, hit.Cur.Point())
		left, right := c.Split(t)

		newNode := warppath.NewCurveTo(
			warppath.NewWarpDescriptor(left.P3, strengthMag, radiusMag, hit.Cur.Warp.Type),
			left.P1, left.P2,
		)
		hit.Cur.Ctrl1 = right.P1
		hit.Cur.Ctrl2 = right.P2

		_ = hit.Path.InsertNode(hit.Prev, newNode)
		return true
	}

	anchor := hit.Prev.Point().Lerp(hit.Cur.Point(), t)
	newNode := warppath.NewLineTo(warppath.NewWarpDescriptor(anchor, strengthMag, radiusMag, hit.Cur.Warp.Type))
	_ = hit.Path.InsertNode(hit.Prev, newNode)
	return true
}

// ConvertSegment handles ctrl+alt+click on a path segment, converting
// a line to a curve (controls placed at thirds) or a curve to a line
// (spec §4.7).
func (s *Session) ConvertSegment(pos geom.Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	hit, ok := HitTestSegments(s.Doc, pos, s.HitTolerance)
	if !ok {
		return false
	}

	if hit.Cur.Kind == warppath.CurveTo {
		hit.Cur.Kind = warppath.LineTo
		hit.Cur.Ctrl1 = geom.Vec2{}
		hit.Cur.Ctrl2 = geom.Vec2{}
		return true
	}

	start := hit.Prev.Point()
	end := hit.Cur.Point()
	hit.Cur.Kind = warppath.CurveTo
	hit.Cur.Ctrl1 = start.Lerp(end, 1.0/3.0)
	hit.Cur.Ctrl2 = start.Lerp(end, 2.0/3.0)
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
