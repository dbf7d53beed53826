package multiline

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestBuilderChaining(t *testing.T) {
	m := New()
	m.Dot(pt(1, 1)).Line(pt(0, 0), pt(5, 0)).Triangle(pt(0, 0), pt(1, 0), pt(0, 1))
	if err := m.Err(); err != nil {
		t.Fatal(err)
	}

	var want []vec.Vec2
	want = AppendDot(want, pt(1, 1))
	want = AppendLine(want, nil, pt(0, 0), pt(5, 0))
	want = AppendTriangle(want, nil, pt(0, 0), pt(1, 0), pt(0, 1))
	diff(t, want, m.Points())
	if m.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(want))
	}
}

func TestBuilderMatchesAppendFunctions(t *testing.T) {
	style := Dotted{SegmentLength: 3}
	m := New(WithStyle(style))
	m.Arrow(pt(0, 0), pt(30, 0), 5, math.Pi/6).
		Rectangle(pt(10, 10), 4, 2, 0.3).
		RegularConvexPolygon(pt(0, 0), 10, 6, 0).
		CandleBar(pt(0, 0), 3, pt(0, 20), 3, 2).
		Connection(pt(0, 0), 5, pt(40, 30), 5, ConnectionHeads{B: 6})

	var want []vec.Vec2
	want = AppendArrow(want, style, pt(0, 0), pt(30, 0), 5, math.Pi/6)
	want = AppendRectangle(want, style, pt(10, 10), 4, 2, 0.3)
	want = AppendRegularConvexPolygon(want, style, pt(0, 0), 10, 6, 0)
	want = AppendCandleBar(want, style, pt(0, 0), 3, pt(0, 20), 3, 2)
	want = AppendConnection(want, style, pt(0, 0), 5, pt(40, 30), 5, ConnectionHeads{B: 6})

	if err := m.Err(); err != nil {
		t.Fatal(err)
	}
	diff(t, want, m.Points())
}

func TestBuilderClear(t *testing.T) {
	m := New()
	m.Cross(pt(3, 3), 2)
	first := m.Points()

	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", m.Len())
	}
	m.Clear()
	m.Cross(pt(3, 3), 2)
	diff(t, first, m.Points())
}

func TestBuilderStickyError(t *testing.T) {
	m := New()
	m.Line(pt(0, 0), pt(1, 0))
	before := m.Points()

	m.RegularConvexPolygon(pt(0, 0), 5, 2, 0)
	m.Arrow(pt(1, 1), pt(1, 1), 3, 0.5)
	m.Dot(pt(7, 7))

	err := m.Err()
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("Err() = %v, want ErrInvalidGeometry", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("Err() = %T, want *OpError", err)
	}
	if opErr.Op != "polygon" {
		t.Errorf("first failing operation %q, want %q", opErr.Op, "polygon")
	}

	// rejected operations append nothing; valid ones still work
	want := AppendDot(before, pt(7, 7))
	diff(t, want, m.Points())

	m.Clear()
	if m.Err() != nil {
		t.Errorf("Clear did not reset the error: %v", m.Err())
	}
}

func TestBuilderRejects(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		op   func(*Multiline)
	}{
		{"nan point", func(m *Multiline) { m.Dot(pt(nan, 0)) }},
		{"inf dots", func(m *Multiline) { m.Dots([]vec.Vec2{pt(0, 0), pt(math.Inf(1), 0)}) }},
		{"coincident arrow", func(m *Multiline) { m.Arrow(pt(2, 2), pt(2, 2), 5, 0.3) }},
		{"negative head", func(m *Multiline) { m.Arrow(pt(0, 0), pt(2, 2), -5, 0.3) }},
		{"zero direction", func(m *Multiline) { m.SegmentedLine(pt(0, 0), pt(0, 0), []float64{1}) }},
		{"negative distance", func(m *Multiline) { m.SegmentedLine(pt(0, 0), pt(1, 0), []float64{1, -1}) }},
		{"zero segments", func(m *Multiline) { m.SegmentedLineBetween(pt(0, 0), pt(5, 0), 0) }},
		{"zero unit", func(m *Multiline) { m.SegmentedArrowBetween(pt(0, 0), pt(5, 0), 0, 2, 0.3) }},
		{"zero vector", func(m *Multiline) { m.VectorsAbsolutely(pt(0, 0), []vec.Vec2{pt(1, 0), {}}, 0.3) }},
		{"negative unit count", func(m *Multiline) { m.Axes(pt(0, 0), pt(1, 0), 10, -1, 10, 2, 5, 0.3) }},
		{"negative rectangle", func(m *Multiline) { m.Rectangle(pt(0, 0), -1, 2, 0) }},
		{"zero side", func(m *Multiline) { m.RectangleFromSide(pt(0, 0), pt(0, 0), 2) }},
		{"digon", func(m *Multiline) { m.RegularConvexPolygon(pt(0, 0), 5, 2, 0) }},
		{"coincident candle", func(m *Multiline) { m.CandleBar(pt(0, 0), 1, pt(0, 0), 1, 1) }},
		{"coincident nodes", func(m *Multiline) { m.Connection(pt(0, 0), 1, pt(0, 0), 1, ConnectionHeads{}) }},
		{"negative offset", func(m *Multiline) { m.LineOffset(pt(0, 0), -1, pt(5, 0), 0) }},
		{"negative cross", func(m *Multiline) { m.Cross2(pt(0, 0), 5, -1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New()
			c.op(m)
			if !errors.Is(m.Err(), ErrInvalidGeometry) {
				t.Errorf("Err() = %v, want ErrInvalidGeometry", m.Err())
			}
			if m.Len() != 0 {
				t.Errorf("rejected operation appended %d points", m.Len())
			}
		})
	}
}

func TestBuilderPointsIsCopy(t *testing.T) {
	m := New()
	m.Line(pt(0, 0), pt(1, 1))
	p := m.Points()
	p[0] = pt(99, 99)
	if m.Points()[0] != pt(0, 0) {
		t.Error("modifying the result of Points changed the builder")
	}
}

func TestBuilderOptions(t *testing.T) {
	buf := make([]vec.Vec2, 5, 64)
	m := New(WithBuffer(buf))
	if m.Len() != 0 {
		t.Errorf("WithBuffer kept %d old points", m.Len())
	}
	m.Line(pt(0, 0), pt(1, 0))
	if buf[:1][0] != pt(0, 0) {
		t.Error("WithBuffer storage not used")
	}

	m = New(WithCapacity(100))
	if cap(m.points) < 100 {
		t.Errorf("capacity %d, want >= 100", cap(m.points))
	}

	if _, ok := New().Style().(Solid); !ok {
		t.Errorf("default style %T, want Solid", New().Style())
	}
	if _, ok := New(WithStyle(nil)).Style().(Solid); !ok {
		t.Error("WithStyle(nil) replaced the default style")
	}
}

func TestBuilderLogsRejection(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	New().Triangle(pt(0, 0), pt(math.NaN(), 0), pt(1, 1))
	out := buf.String()
	if !strings.Contains(out, "operation rejected") || !strings.Contains(out, "op=triangle") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestOpErrorMessage(t *testing.T) {
	m := New().Cross(pt(0, 0), -2)
	want := "multiline: cross: negative radius -2: invalid geometry parameter"
	if got := m.Err().Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
