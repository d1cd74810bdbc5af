package edit

import "github.com/inkwarp/liquify/geom"

// Transformer converts points between the document's raw frame and
// whatever frame a pointer position arrives in (pipeline or display).
// No function in this module calls a Transformer: Session, the hit
// tests and the map pipeline all take positions already in the raw
// frame, so a host converts pointer positions before passing them in.
type Transformer interface {
	Forward(points []geom.Vec2) []geom.Vec2
	Backward(points []geom.Vec2) []geom.Vec2
}

// IdentityTransformer performs no conversion, for hosts where the
// pointer already arrives in the raw frame.
type IdentityTransformer struct{}

func (IdentityTransformer) Forward(points []geom.Vec2) []geom.Vec2  { return points }
func (IdentityTransformer) Backward(points []geom.Vec2) []geom.Vec2 { return points }
