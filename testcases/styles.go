package testcases

import (
	"math"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
)

var styleCases = []TestCase{
	{
		Name: "dotted_lines",
		Points: build(multiline.Dotted{SegmentLength: 4}, func(m *multiline.Multiline) {
			for i := range 5 {
				y := 8 + float64(i)*12
				m.Line(pt(4, y), pt(60, y-float64(i)*4))
			}
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1.5, Cap: graphics.LineCapButt},
	},
	{
		Name: "dotted_polygon",
		Points: build(multiline.Dotted{SegmentLength: 3}, func(m *multiline.Multiline) {
			m.RegularConvexPolygon(pt(32, 32), 26, 7, -math.Pi/2)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapRound},
	},
	{
		Name: "dotted_arrow",
		Points: build(multiline.Dotted{SegmentLength: 5}, func(m *multiline.Multiline) {
			m.Arrow(pt(8, 56), pt(56, 8), 14, math.Pi/7)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt},
	},
	{
		Name: "dots_spaced",
		Points: build(multiline.Dots{Spacing: 6}, func(m *multiline.Multiline) {
			m.Line(pt(6, 16), pt(58, 16)).
				Line(pt(6, 32), pt(58, 48))
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, Cap: graphics.LineCapRound},
	},
}
