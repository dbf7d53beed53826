package multiline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values with a small absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
