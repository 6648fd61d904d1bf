package component

import "github.com/jakecoffman/cp"

// Extent is the full width and height of an entity's box. It doubles as the
// drawn rectangle size.
type Extent struct {
	Width  float64
	Height float64
}

func (e *Extent) Size() cp.Vector {
	return cp.Vector{X: e.Width, Y: e.Height}
}

func (e *Extent) HalfWidth() float64 {
	return e.Width / 2
}

func (e *Extent) HalfHeight() float64 {
	return e.Height / 2
}

var ExtentComponent = NewComponent[Extent]()
