package warppath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

func TestDocumentStats(t *testing.T) {
	doc := warppath.NewDocument()
	p1 := warppath.NewPath(warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)))
	p1.Append(warppath.NewLineTo(warppath.NewWarpDescriptor(geom.Pt(10, 0), 50, 100, warppath.Linear)))
	p2 := warppath.NewPath(warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(5, 5), 50, 100, warppath.Linear)))

	doc.AddPath(p1)
	doc.AddPath(p2)

	stats := doc.Stats()
	assert.Equal(t, 2, stats.PathCount)
	assert.Equal(t, 3, stats.NodeCount)
}

func TestDocumentRemovePath(t *testing.T) {
	doc := warppath.NewDocument()
	p1 := warppath.NewPath(warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)))
	p2 := warppath.NewPath(warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(1, 1), 50, 100, warppath.Linear)))
	doc.AddPath(p1)
	doc.AddPath(p2)

	doc.RemovePath(p1)
	assert.Len(t, doc.Paths, 1)
	assert.Equal(t, p2, doc.Paths[0])
}

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := warppath.NewDocument()
	p1 := warppath.NewPath(warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(0, 0), 50, 100, warppath.Linear)))
	doc.AddPath(p1)

	clone := doc.Clone()
	clone.Paths[0].Head().Warp.Point = geom.Pt(42, 42)

	assert.NotEqual(t, clone.Paths[0].Head().Warp.Point, doc.Paths[0].Head().Warp.Point)
}
