package warppath

// Document is the complete, serializable edit state of spec §3: an
// ordered collection of Paths. Document order is significant — it is
// the order stamps are composited in (spec §5).
type Document struct {
	Paths []*Path
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AddPath appends a path to the document.
func (d *Document) AddPath(p *Path) {
	d.Paths = append(d.Paths, p)
}

// RemovePath removes a path from the document by pointer identity. It
// is a no-op if p is not found.
func (d *Document) RemovePath(p *Path) {
	for i, cur := range d.Paths {
		if cur == p {
			d.Paths = append(d.Paths[:i], d.Paths[i+1:]...)
			return
		}
	}
}

// Stats summarizes the document's path/node counts, grounded on the
// original implementation's update_warp_count (used by the host to
// drive a warp-count indicator in its UI chrome).
type Stats struct {
	PathCount int
	NodeCount int
}

// Stats computes path and node counts over the whole document.
func (d *Document) Stats() Stats {
	s := Stats{PathCount: len(d.Paths)}
	for _, p := range d.Paths {
		s.NodeCount += p.Len()
	}
	return s
}

// Clone returns a deep copy of the document: new Paths holding new
// Nodes, safe to hand to a concurrent pixel-producing pipeline while
// the original is mutated by further edits (spec §5).
func (d *Document) Clone() *Document {
	clone := &Document{Paths: make([]*Path, len(d.Paths))}
	for i, p := range d.Paths {
		clone.Paths[i] = p.Clone()
	}
	return clone
}
