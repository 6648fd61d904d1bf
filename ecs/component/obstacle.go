package component

// ObstacleRole classifies how an entity takes part in collision queries.
type ObstacleRole int

const (
	// ObstacleNone entities are never collided against.
	ObstacleNone ObstacleRole = iota
	// ObstacleStatic entities are obstacles from spawn (floor, walls).
	ObstacleStatic
	// ObstacleGroundedDynamic marks a block that has landed. The promotion
	// from ObstacleNone is one-way.
	ObstacleGroundedDynamic
)

func (r ObstacleRole) String() string {
	switch r {
	case ObstacleStatic:
		return "static"
	case ObstacleGroundedDynamic:
		return "grounded_dynamic"
	default:
		return "none"
	}
}

// Collidable reports whether other entities can land on or push against r.
func (r ObstacleRole) Collidable() bool {
	return r == ObstacleStatic || r == ObstacleGroundedDynamic
}

type Obstacle struct {
	Role ObstacleRole
}

var ObstacleComponent = NewComponent[Obstacle]()
