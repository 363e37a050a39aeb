package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numericalGradient computes df/dx using central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

const (
	epsilon   = 1e-6
	tolerance = 1e-4
)

// checkUnary compares the analytic gradient of op at x with finite differences.
func checkUnary(t *testing.T, op func(*autodiff.Node) *autodiff.Node, x float64) {
	t.Helper()

	in := autodiff.NewNode(x, "x")
	out := op(in)
	out.Backward()

	f := func(v float64) float64 { return op(autodiff.NewNode(v, "")).Value() }
	numerical := numericalGradient(f, x, epsilon)
	assert.InDelta(t, numerical, in.Grad(), tolerance, "x=%g", x)
}

func TestGradientCheck_Unary(t *testing.T) {
	tests := []struct {
		name   string
		op     func(*autodiff.Node) *autodiff.Node
		points []float64
	}{
		{"exp", autodiff.Exp, []float64{-2, -0.3, 0, 0.7, 1.5}},
		{"tanh", autodiff.Tanh, []float64{-2, -0.3, 0, 0.7, 1.5}},
		{"relu", autodiff.ReLU, []float64{-1.2, -0.1, 0.1, 2.3}},
		{"square", func(x *autodiff.Node) *autodiff.Node { return autodiff.Pow(x, 2) }, []float64{-1.5, 0.4, 3}},
		{"cube", func(x *autodiff.Node) *autodiff.Node { return autodiff.Pow(x, 3) }, []float64{-1.5, 0.4, 3}},
		{"reciprocal", func(x *autodiff.Node) *autodiff.Node { return autodiff.Pow(x, -1) }, []float64{-2, 0.5, 4}},
		{"sqrt", func(x *autodiff.Node) *autodiff.Node { return autodiff.Pow(x, 0.5) }, []float64{0.25, 1, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				checkUnary(t, tt.op, x)
			}
		})
	}
}

func TestGradientCheck_ReLUBoundary(t *testing.T) {
	x := autodiff.NewNode(0, "x")
	y := autodiff.ReLU(x)
	y.Backward()

	// Slope 1 at the boundary: matches the right-hand difference.
	rightHand := (autodiff.ReLU(autodiff.NewNode(epsilon, "")).Value() - y.Value()) / epsilon
	assert.Equal(t, 1.0, x.Grad())
	assert.InDelta(t, rightHand, x.Grad(), tolerance)
}

func TestGradientCheck_Binary(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b *autodiff.Node) *autodiff.Node
		a, b float64
	}{
		{"mul", autodiff.Mul, 0.24, 0.7},
		{"mul_negative", autodiff.Mul, -1.3, 2.1},
		{"add", func(a, b *autodiff.Node) *autodiff.Node { return autodiff.Add(a, b) }, 0.5, -4},
		{"div", autodiff.Div, 0.2, 0.6},
		{"div_negative", autodiff.Div, 3, -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autodiff.NewNode(tt.a, "a")
			b := autodiff.NewNode(tt.b, "b")
			tt.op(a, b).Backward()

			fa := func(v float64) float64 {
				return tt.op(autodiff.NewNode(v, ""), autodiff.NewNode(tt.b, "")).Value()
			}
			fb := func(v float64) float64 {
				return tt.op(autodiff.NewNode(tt.a, ""), autodiff.NewNode(v, "")).Value()
			}
			assert.InDelta(t, numericalGradient(fa, tt.a, epsilon), a.Grad(), tolerance)
			assert.InDelta(t, numericalGradient(fb, tt.b, epsilon), b.Grad(), tolerance)
		})
	}
}

func TestGradientCheck_NaryAdd(t *testing.T) {
	xs := []*autodiff.Node{
		autodiff.NewNode(1, "x0"),
		autodiff.NewNode(-2, "x1"),
		autodiff.NewNode(0.5, "x2"),
		autodiff.NewNode(4, "x3"),
	}
	y := autodiff.Add(xs...)
	require.Len(t, y.Children(), len(xs))
	assert.InDelta(t, 3.5, y.Value(), 1e-12)

	grads := y.Rule().Backward(2.5)
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, grads)

	y.Backward()
	for _, x := range xs {
		assert.Equal(t, 1.0, x.Grad())
	}
}

func TestGradientCheck_TanhNeuron(t *testing.T) {
	// h = tanh((a*b + d) * f)
	build := func(a float64) (*autodiff.Node, *autodiff.Node) {
		an := autodiff.NewNode(a, "A")
		c := autodiff.Mul(an, autodiff.NewNode(0.2, "B"))
		e := autodiff.Add(c, autodiff.NewNode(0.1, "D"))
		g := autodiff.Mul(e, autodiff.NewNode(0.8, "F"))
		return an, autodiff.Tanh(g)
	}

	a, h := build(0.6)
	h.Backward()

	f := func(v float64) float64 {
		_, out := build(v)
		return out.Value()
	}
	assert.InDelta(t, numericalGradient(f, 0.6, epsilon), a.Grad(), tolerance)
}

func TestRules_ChildOrder(t *testing.T) {
	a := autodiff.NewNode(2, "a")
	b := autodiff.NewNode(5, "b")
	m := autodiff.Mul(a, b)

	require.Equal(t, []*autodiff.Node{a, b}, m.Children())
	assert.Equal(t, []float64{15, 6}, m.Rule().Backward(3))

	p := autodiff.Pow(a, 3)
	assert.Equal(t, "**3", p.Op())
	assert.Equal(t, []float64{12}, p.Rule().Backward(1))
}
