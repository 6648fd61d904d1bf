package collision

// Side names the face of box A through which box B penetrates.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}
