package common

// Logical window size used when the scene spec leaves it unset.
const (
	BaseWidth  = 500
	BaseHeight = 900
)

const DefaultTitle = "The Block Game"
