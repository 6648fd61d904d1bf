package component

import "github.com/jakecoffman/cp"

// RigidBody stores Chipmunk2D runtime data for the rigid-body backend.
// Static obstacles share the space's static body.
type RigidBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Static   bool
	Mass     float64
	Friction float64
}

var RigidBodyComponent = NewComponent[RigidBody]()
