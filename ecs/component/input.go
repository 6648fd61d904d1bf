package component

// Input stores the held state of the logical keys for this tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Up    bool
	Down  bool
	MoveX float64
}

var InputComponent = NewComponent[Input]()
