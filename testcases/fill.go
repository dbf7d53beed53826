package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/multiline"
)

var fillCases = []TestCase{
	{
		Name:   "hexagon",
		Points: multiline.RegularConvexPolygonVertices(pt(32, 32), 26, 6, 0),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_nonzero",
		Points: star(pt(32, 32), 28),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Points: star(pt(32, 32), 28),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "triangle",
		Points: []vec.Vec2{pt(10, 54), pt(32, 10), pt(54, 54)},
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_disc",
		Points: multiline.RegularConvexPolygonVertices(pt(200, 200), 190, 96, 0),
		Width:  400,
		Height: 400,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "clipped",
		Points: multiline.RegularConvexPolygonVertices(pt(0, 64), 50, 5, math.Pi/10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// star returns the self-intersecting pentagram, which has a hole under
// the even-odd rule.
func star(center vec.Vec2, radius float64) []vec.Vec2 {
	v := multiline.RegularConvexPolygonVertices(center, radius, 5, -math.Pi/2)
	return []vec.Vec2{v[0], v[2], v[4], v[1], v[3]}
}
