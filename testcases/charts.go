package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/multiline"
)

var chartCases = []TestCase{
	{
		Name: "axes",
		Points: build(nil, func(m *multiline.Multiline) {
			// the y-axis is the x-axis turned by +90°, which points down
			m.Axes(pt(10, 10), pt(1, 0), 20, 4, 20, 4, 8, math.Pi/8)
		}),
		Width:  128,
		Height: 128,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapSquare},
	},
	{
		Name: "ruler",
		Points: build(nil, func(m *multiline.Multiline) {
			m.SegmentedLineBetween(pt(8, 20), pt(120, 20), 8).
				SegmentedArrowBetween(pt(8, 60), pt(120, 100), 15, 8, math.Pi/8).
				SegmentedLine(pt(8, 110), pt(1, 0), []float64{10, 20, 30, 40})
		}),
		Width:  128,
		Height: 128,
		Op:     thin,
	},
	{
		Name: "vectors",
		Points: build(nil, func(m *multiline.Multiline) {
			vs := []vec.Vec2{pt(40, 0), pt(20, 30), pt(-10, 40)}
			m.VectorsRelatively(pt(10, 10), vs, math.Pi/10).
				VectorsAbsolutely(pt(70, 60), vs, math.Pi/10)
		}),
		Width:  128,
		Height: 128,
		Op:     Stroke{Width: 1.5, Cap: graphics.LineCapRound},
	},
	{
		Name:   "candles",
		Points: candles(),
		Width:  128,
		Height: 128,
		Op:     thin,
	},
}

// candles draws a short price series as candlestick glyphs.
func candles() []vec.Vec2 {
	type bar struct{ low, open, close, high float64 }
	series := []bar{
		{30, 40, 60, 70},
		{50, 60, 55, 80},
		{45, 55, 75, 90},
		{70, 75, 72, 100},
		{60, 72, 65, 85},
		{40, 65, 50, 70},
	}
	return build(nil, func(m *multiline.Multiline) {
		for i, b := range series {
			x := 14 + float64(i)*20
			// y grows downwards, prices upwards
			bottom, top := pt(x, 120-b.low), pt(x, 120-b.high)
			lo, hi := min(b.open, b.close), max(b.open, b.close)
			m.CandleBar(bottom, lo-b.low, top, b.high-hi, 5)
		}
	})
}
