package warppath

import "github.com/inkwarp/liquify/geom"

// Builder provides a fluent interface for constructing a Path,
// grounded on the teacher's path_builder.go chaining convention. All
// methods return the builder for chaining.
type Builder struct {
	path *Path
}

// BuildPath starts a new path builder at the given MoveTo warp.
func BuildPath(head WarpDescriptor) *Builder {
	return &Builder{path: NewPath(NewMoveTo(head))}
}

// LineTo appends a LineTo node.
func (b *Builder) LineTo(w WarpDescriptor) *Builder {
	b.path.Append(NewLineTo(w))
	return b
}

// CurveTo appends a CurveTo node with the given control points.
func (b *Builder) CurveTo(w WarpDescriptor, ctrl1, ctrl2 geom.Vec2) *Builder {
	b.path.Append(NewCurveTo(w, ctrl1, ctrl2))
	return b
}

// Close appends a ClosePath node.
func (b *Builder) Close(w WarpDescriptor) *Builder {
	b.path.Append(NewClosePath(w))
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *Path {
	return b.path
}
