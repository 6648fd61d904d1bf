package component

import "github.com/jakecoffman/cp"

// Transform is a world-space center position, Y up. Z only orders drawing.
type Transform struct {
	X float64
	Y float64
	Z float64
}

func (t *Transform) Center() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
