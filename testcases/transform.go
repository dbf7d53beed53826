package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
)

var transformCases = []TestCase{
	{
		Name: "scale_2x",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Arrow(pt(0, 0), pt(20, 20), 6, math.Pi/8)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapRound},
		CTM:    matrix.Scale(2, 2).Translate(8, 8),
	},
	{
		Name: "rotate_30deg",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Rectangle(pt(0, 0), 20, 8, 0).Cross(pt(0, 0), 6)
		}),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapSquare},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name: "y_up",
		Points: build(nil, func(m *multiline.Multiline) {
			m.Axes(pt(0, 0), pt(1, 0), 10, 4, 10, 4, 6, math.Pi/8)
		}),
		Width:  64,
		Height: 64,
		Op:     thin,
		CTM:    matrix.Matrix{1, 0, 0, -1, 6, 58},
	},
	{
		Name:   "scaled_fill",
		Points: star(pt(0, 0), 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Scale(2.5, 2.5).Translate(32, 32),
	},
}
