package component

import "image/color"

// Sprite draws the entity's Extent as a solid rectangle.
type Sprite struct {
	Color  color.Color
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
