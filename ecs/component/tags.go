package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ClockTag struct{}

var ClockTagComponent = NewComponent[ClockTag]()
