package component

// Camera is an orthographic view centered on its entity's Transform.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
