package component

// PlayerCollision records what the player resolver saw on the last tick. It
// is diagnostic state; transitions read the resolver's return value directly.
type PlayerCollision struct {
	Contacts int
	Bottom   bool
	Top      bool
	// Wall: 0 = none, 1 = left, 2 = right
	Wall int
}

const (
	WallNone  = 0
	WallLeft  = 1
	WallRight = 2
)

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
