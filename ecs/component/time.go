package component

// Time is the singleton tick clock. DT is in seconds.
type Time struct {
	DT      float64
	Elapsed float64
	Tick    uint64
}

var TimeComponent = NewComponent[Time]()
