// Package serialize implements the host parameter blob contract: a
// compact byte layout for a warppath.Document that a pipeline can
// persist alongside its other editing state (spec §6).
package serialize

import (
	"encoding/binary"
	"math"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// BlobVersion is the only blob_version this package will encode or
// accept on decode.
const BlobVersion uint32 = 1

const (
	headerSize     = 8 + 4   // u64 blob_size, u32 blob_version
	pathHeaderSize = 8       // u64 path_size_including_this_field
	nodeHeaderSize = 8 + 4*4 // u64 size, u32 kind/node_type/selected/hovered
	warpSize       = 16*3 + 8*2 + 4
	pointSize      = 16
)

func nodePayloadSize(kind warppath.Kind) int {
	switch kind {
	case warppath.CurveTo:
		return pointSize * 2
	default:
		return 0
	}
}

// Encode writes doc as a version-1 parameter blob.
func Encode(doc *warppath.Document) []byte {
	var buf []byte
	buf = appendU64(buf, 0) // placeholder for blob_size
	buf = appendU32(buf, BlobVersion)

	for _, p := range doc.Paths {
		buf = encodePath(buf, p)
	}

	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(buf)))
	return buf
}

func encodePath(buf []byte, p *warppath.Path) []byte {
	start := len(buf)
	buf = appendU64(buf, 0) // placeholder for path_size

	for _, n := range p.Nodes() {
		buf = encodeNode(buf, n)
	}

	binary.LittleEndian.PutUint64(buf[start:start+8], uint64(len(buf)-start))
	return buf
}

func encodeNode(buf []byte, n *warppath.Node) []byte {
	start := len(buf)
	buf = appendU64(buf, 0) // placeholder for node size
	buf = appendU32(buf, uint32(n.Kind))
	buf = appendU32(buf, uint32(n.NodeType))
	buf = appendBool(buf, n.Selected)
	buf = appendBool(buf, n.Hovered)
	buf = appendWarp(buf, n.Warp)

	if n.Kind == warppath.CurveTo {
		buf = appendVec2(buf, n.Ctrl1)
		buf = appendVec2(buf, n.Ctrl2)
	}

	binary.LittleEndian.PutUint64(buf[start:start+8], uint64(len(buf)-start))
	return buf
}

func appendWarp(buf []byte, w warppath.WarpDescriptor) []byte {
	buf = appendVec2(buf, w.Point)
	buf = appendVec2(buf, w.Strength)
	buf = appendVec2(buf, w.Radius)
	buf = appendF64(buf, w.Control1)
	buf = appendF64(buf, w.Control2)
	buf = appendU32(buf, uint32(w.Type))
	return buf
}

func appendVec2(buf []byte, v geom.Vec2) []byte {
	buf = appendF64(buf, v.X)
	buf = appendF64(buf, v.Y)
	return buf
}

func appendU64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func appendF64(buf []byte, v float64) []byte {
	return appendU64(buf, math.Float64bits(v))
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return appendU32(buf, 1)
	}
	return appendU32(buf, 0)
}
