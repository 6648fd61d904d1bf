package component

// VerticalState is the player's vertical motion mode.
type VerticalState int

const (
	Grounded VerticalState = iota
	Jumping
	Falling
)

func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// PlayerPhysics holds the player's motion accumulators and tuning. Gravity is
// negative (Y up). JumpImpulse and FallSpeedReset are what JumpVelocity and
// FallSpeed return to on landing.
type PlayerPhysics struct {
	JumpVelocity  float64
	FallSpeed     float64
	Gravity       float64
	MovementSpeed float64
	State         VerticalState

	JumpImpulse    float64
	FallSpeedReset float64
	JumpNudge      float64
	FallBias       float64
}

// Land resets both vertical accumulators and grounds the player.
func (p *PlayerPhysics) Land() {
	p.JumpVelocity = p.JumpImpulse
	p.FallSpeed = p.FallSpeedReset
	p.State = Grounded
}

var PlayerPhysicsComponent = NewComponent[PlayerPhysics]()
