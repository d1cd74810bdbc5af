package warppath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

func TestNewPathPanicsWithoutMoveToHead(t *testing.T) {
	assert.Panics(t, func() {
		warppath.NewPath(warppath.NewLineTo(warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)))
	})
}

func TestAppendAndIteratePairs(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	b := warppath.NewWarpDescriptor(geom.Pt(10, 0), 50, 100, warppath.Linear)
	p := warppath.NewPath(warppath.NewMoveTo(a))
	p.Append(warppath.NewLineTo(b))

	pairs := p.IteratePairs()
	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[0].Prev)
	assert.Equal(t, p.Head(), pairs[0].Current)
	assert.Equal(t, p.Head(), pairs[1].Prev)
}

func TestInsertNodeAtTail(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	p := warppath.NewPath(warppath.NewMoveTo(a))

	tail := warppath.NewLineTo(warppath.NewWarpDescriptor(geom.Pt(10, 0), 50, 100, warppath.Linear))
	require.NoError(t, p.InsertNode(p.Head(), tail))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, tail, p.Nodes()[1])
}

func TestInsertNodeMidPath(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	c := warppath.NewWarpDescriptor(geom.Pt(20, 0), 50, 100, warppath.Linear)
	p := warppath.NewPath(warppath.NewMoveTo(a))
	tail := warppath.NewLineTo(c)
	p.Append(tail)

	mid := warppath.NewLineTo(warppath.NewWarpDescriptor(geom.Pt(10, 0), 50, 100, warppath.Linear))
	require.NoError(t, p.InsertNode(p.Head(), mid))

	require.Equal(t, 3, p.Len())
	assert.Equal(t, mid, p.Nodes()[1])
	assert.Equal(t, tail, p.Nodes()[2])
}

// TestDeleteHeadNodeHealsToSuccessor implements S5: a path of MoveTo
// at A followed by LineTo at B, with the MoveTo deleted, leaves a
// single node that is still a MoveTo (the surviving list slot keeps
// its original kind) but whose anchor and radius magnitude equal B's.
func TestDeleteHeadNodeHealsToSuccessor(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	b := warppath.NewWarpDescriptor(geom.Pt(30, 0), 60, 150, warppath.Linear)

	p := warppath.NewPath(warppath.NewMoveTo(a))
	p.Append(warppath.NewLineTo(b))

	head := p.Head()
	require.NoError(t, p.DeleteNode(head))

	require.Equal(t, 1, p.Len())
	surviving := p.Head()
	assert.Equal(t, warppath.MoveTo, surviving.Kind)
	assert.Equal(t, b.Point, surviving.Warp.Point)
	assert.InDelta(t, b.RadiusMagnitude(), surviving.Warp.RadiusMagnitude(), 1e-9)
}

func TestDeleteMiddleNodeSplicesOut(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	b := warppath.NewWarpDescriptor(geom.Pt(10, 0), 50, 100, warppath.Linear)
	c := warppath.NewWarpDescriptor(geom.Pt(20, 0), 50, 100, warppath.Linear)

	p := warppath.NewPath(warppath.NewMoveTo(a))
	mid := warppath.NewLineTo(b)
	tail := warppath.NewLineTo(c)
	p.Append(mid)
	p.Append(tail)

	require.NoError(t, p.DeleteNode(mid))
	require.Equal(t, 2, p.Len())
	assert.Equal(t, p.Head(), p.Nodes()[0])
	assert.Equal(t, tail, p.Nodes()[1])
}

func TestDeleteSoleNodeRejected(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	p := warppath.NewPath(warppath.NewMoveTo(a))
	err := p.DeleteNode(p.Head())
	assert.Error(t, err)
	assert.Equal(t, 1, p.Len())
}

func TestPathCloneIsIndependent(t *testing.T) {
	a := warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)
	p := warppath.NewPath(warppath.NewMoveTo(a))
	clone := p.Clone()

	clone.Head().Warp.Point = geom.Pt(99, 99)
	assert.NotEqual(t, clone.Head().Warp.Point, p.Head().Warp.Point)
}
