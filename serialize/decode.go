package serialize

import (
	"encoding/binary"
	"math"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// Decode parses a version-1 parameter blob into a Document. A path
// whose declared node record size disagrees with what its kind
// requires is skipped entirely, per spec §6's malformed-blob
// disposition; the rest of the blob still decodes.
func Decode(data []byte) (*warppath.Document, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	blobSize := binary.LittleEndian.Uint64(data[0:8])
	if blobSize < headerSize || blobSize > uint64(len(data)) {
		return nil, ErrTruncated
	}
	version := binary.LittleEndian.Uint32(data[8:12])
	if version != BlobVersion {
		return nil, ErrVersionMismatch
	}
	data = data[:blobSize]

	doc := warppath.NewDocument()
	offset := headerSize
	for offset < len(data) {
		if offset+pathHeaderSize > len(data) {
			return nil, ErrTruncated
		}
		pathSize := binary.LittleEndian.Uint64(data[offset : offset+8])
		pathEnd := offset + int(pathSize)
		if pathSize < pathHeaderSize || pathEnd > len(data) {
			return nil, ErrTruncated
		}

		p := decodePath(data[offset+pathHeaderSize : pathEnd])
		if p != nil {
			doc.AddPath(p)
		}
		offset = pathEnd
	}
	return doc, nil
}

// decodePath parses the node records of a single path. A record with
// a size field that doesn't match its declared kind drops the whole
// path (nil is returned), as does a first record that is not a MoveTo.
func decodePath(data []byte) *warppath.Path {
	var path *warppath.Path
	offset := 0
	for offset < len(data) {
		if offset+nodeHeaderSize > len(data) {
			break
		}
		size := int(binary.LittleEndian.Uint64(data[offset : offset+8]))
		end := offset + size
		if size < nodeHeaderSize || end > len(data) {
			break
		}

		n, ok := decodeNode(data[offset:end])
		if !ok {
			return nil
		}
		if path == nil {
			if n.Kind == warppath.MoveTo {
				path = warppath.NewPath(n)
			}
		} else {
			path.Append(n)
		}
		offset = end
	}
	return path
}

func decodeNode(data []byte) (*warppath.Node, bool) {
	size := int(binary.LittleEndian.Uint64(data[0:8]))
	kind := warppath.Kind(binary.LittleEndian.Uint32(data[8:12]))
	if size != nodeHeaderSize+warpSize+nodePayloadSize(kind) {
		return nil, false
	}

	n := &warppath.Node{
		Kind:     kind,
		NodeType: warppath.NodeType(binary.LittleEndian.Uint32(data[12:16])),
		Selected: binary.LittleEndian.Uint32(data[16:20]) != 0,
		Hovered:  binary.LittleEndian.Uint32(data[20:24]) != 0,
	}

	offset := nodeHeaderSize
	n.Warp, offset = decodeWarp(data, offset)

	if kind == warppath.CurveTo {
		n.Ctrl1, offset = decodeVec2(data, offset)
		n.Ctrl2, offset = decodeVec2(data, offset)
	}
	_ = offset

	return n, true
}

func decodeWarp(data []byte, offset int) (warppath.WarpDescriptor, int) {
	var w warppath.WarpDescriptor
	w.Point, offset = decodeVec2(data, offset)
	w.Strength, offset = decodeVec2(data, offset)
	w.Radius, offset = decodeVec2(data, offset)
	w.Control1, offset = decodeF64(data, offset)
	w.Control2, offset = decodeF64(data, offset)
	w.Type = warppath.WarpType(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	return w, offset
}

func decodeVec2(data []byte, offset int) (geom.Vec2, int) {
	x, offset := decodeF64(data, offset)
	y, offset := decodeF64(data, offset)
	return geom.Pt(x, y), offset
}

func decodeF64(data []byte, offset int) (float64, int) {
	bits := binary.LittleEndian.Uint64(data[offset : offset+8])
	return math.Float64frombits(bits), offset + 8
}
