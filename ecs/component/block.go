package component

// BlockPhysics drives a falling block. FallSpeed is a magnitude in units per
// second; blocks only ever fall down.
type BlockPhysics struct {
	FallSpeed float64
	IsFalling bool
}

var BlockPhysicsComponent = NewComponent[BlockPhysics]()
