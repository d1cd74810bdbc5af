package liquify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwarp/liquify"
	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/resample"
	"github.com/inkwarp/liquify/warppath"
)

func straightLineDocument() *warppath.Document {
	doc := warppath.NewDocument()
	head := warppath.NewMoveTo(warppath.NewWarpDescriptor(geom.Pt(10, 32), 40, 20, warppath.RadialGrow))
	tail := warppath.NewLineTo(warppath.NewWarpDescriptor(geom.Pt(54, 32), 40, 20, warppath.RadialGrow))
	p := warppath.NewPath(head)
	p.Append(tail)
	doc.AddPath(p)
	return doc
}

func TestBuildAndApplyGlobalDistortionMapEndToEnd(t *testing.T) {
	doc := straightLineDocument()
	m, stats, err := liquify.BuildGlobalDistortionMap(doc, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SkippedDegenerate)
	assert.False(t, m.Extent.Empty())

	src := resample.NewImage(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, uint8(x*4), uint8(y*4), 128, 255)
		}
	}
	dst := resample.NewImage(64, 64)
	for i := range dst.Pix() {
		dst.Pix()[i] = src.Pix()[i]
	}

	err = liquify.ApplyGlobalDistortionMap(dst, src, m, resample.Bicubic, nil, nil)
	require.NoError(t, err)

	changed := false
	for i := range dst.Pix() {
		if dst.Pix()[i] != src.Pix()[i] {
			changed = true
			break
		}
	}
	assert.True(t, changed)
}

func TestBuildGlobalDistortionMapRespectsCancellation(t *testing.T) {
	doc := straightLineDocument()
	cancel := &liquify.Cancel{}
	cancel.Set()

	_, _, err := liquify.BuildGlobalDistortionMap(doc, nil, cancel)
	assert.ErrorIs(t, err, liquify.ErrCancelled)
}

func TestApplyGlobalDistortionMapLeavesEmptyMapUntouched(t *testing.T) {
	doc := warppath.NewDocument()
	m, _, err := liquify.BuildGlobalDistortionMap(doc, nil, nil)
	require.NoError(t, err)

	src := resample.NewImage(8, 8)
	src.SetRGBA(3, 3, 10, 20, 30, 255)
	dst := resample.NewImage(8, 8)
	for i := range dst.Pix() {
		dst.Pix()[i] = src.Pix()[i]
	}

	err = liquify.ApplyGlobalDistortionMap(dst, src, m, resample.Bilinear, nil, nil)
	require.NoError(t, err)

	for i := range dst.Pix() {
		assert.Equal(t, src.Pix()[i], dst.Pix()[i])
	}
}
