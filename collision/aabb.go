// Package collision implements the axis-aligned box test used by the block
// and player resolvers. World space is Y up.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Box returns the bounding box for a center and full size.
func Box(center, size cp.Vector) cp.BB {
	return cp.NewBBForExtents(center, size.X/2, size.Y/2)
}

// contactEpsilon is the relative gap still treated as touching. A body
// snapped onto a surface can land a rounding step above it once its edges
// are rebuilt from center and half size.
const contactEpsilon = 1e-9

// Collide tests box A against box B. Touching edges count as contact with
// zero depth, which keeps a body resting exactly on a surface in contact.
// Gaps within contactEpsilon of the boxes' coordinate scale count as touching.
//
// The side is picked on the axis with the smaller overlap; equal overlaps
// resolve vertically. On that axis B's center strictly below (or left of) A's
// center gives Bottom (or Left), anything else gives Top (or Right).
func Collide(centerA, sizeA, centerB, sizeB cp.Vector) (Side, bool) {
	a := Box(centerA, sizeA)
	b := Box(centerB, sizeB)

	overlapX := math.Min(a.R, b.R) - math.Max(a.L, b.L)
	overlapY := math.Min(a.T, b.T) - math.Max(a.B, b.B)

	eps := contactEpsilon * scale(a, b)
	if overlapX < -eps || overlapY < -eps {
		return SideNone, false
	}
	overlapX = math.Max(overlapX, 0)
	overlapY = math.Max(overlapY, 0)

	if overlapY <= overlapX {
		if centerB.Y < centerA.Y {
			return SideBottom, true
		}
		return SideTop, true
	}
	if centerB.X < centerA.X {
		return SideLeft, true
	}
	return SideRight, true
}

// scale is the largest edge magnitude of either box, at least 1.
func scale(a, b cp.BB) float64 {
	m := 1.0
	for _, v := range []float64{a.L, a.R, a.B, a.T, b.L, b.R, b.B, b.T} {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
