package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
)

var thin = Stroke{Width: 1, Cap: graphics.LineCapButt}

var shapeCases = []TestCase{
	{
		Name: "dots",
		Points: build(nil, func(m *multiline.Multiline) {
			for i := range 6 {
				m.Dot(pt(8+float64(i)*9.5, 32))
			}
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapRound},
	},
	{
		Name: "cross",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Cross(pt(20, 20), 12).Cross2(pt(44, 44), 14, 4)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt},
	},
	{
		Name: "arrow",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Arrow(pt(6, 58), pt(58, 6), 12, math.Pi/8)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapRound},
	},
	{
		Name: "double_arrow",
		Points: build(nil, func(m *multiline.Multiline) {
			m.DoubleArrow(pt(6, 32), pt(58, 32), 10, math.Pi/6)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapSquare},
	},
	{
		Name: "triangle",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Triangle(pt(10, 54), pt(32, 10), pt(54, 54))
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapRound},
	},
	{
		Name: "rectangle_rotated",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Rectangle(pt(32, 32), 22, 12, math.Pi/6)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapSquare},
	},
	{
		Name: "rectangle_from_side",
		Points: build(nil, func(m *multiline.Multiline) {
			m.RectangleFromSide(pt(12, 12), pt(40, 10), 30)
		}),
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name: "polygons",
		Points: build(nil, func(m *multiline.Multiline) {
			for n := 3; n <= 8; n++ {
				m.RegularConvexPolygon(pt(32, 32), float64(4*n-6), n, 0)
			}
		}),
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name: "connection",
		Points: build(nil, func(m *multiline.Multiline) {
			a, b := pt(14, 14), pt(50, 50)
			m.RegularConvexPolygon(a, 8, 24, 0).
				RegularConvexPolygon(b, 8, 24, 0).
				Connection(a, 8, b, 8, multiline.ConnectionHeads{B: 8})
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1.5, Cap: graphics.LineCapRound},
	},
	{
		Name: "zero_length",
		Points: []vec.Vec2{
			pt(16, 32), pt(16, 32),
			pt(48, 32), pt(48, 32),
		},
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapRound},
	},
}
