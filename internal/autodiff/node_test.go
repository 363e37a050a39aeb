package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode_Leaf(t *testing.T) {
	n := autodiff.NewNode(1.5, "x")

	assert.Equal(t, 1.5, n.Value())
	assert.Equal(t, 0.0, n.Grad())
	assert.Empty(t, n.Children())
	assert.True(t, n.IsLeaf())
	assert.Equal(t, "x", n.Label())
	assert.Equal(t, "", n.Op())
	assert.Equal(t, "x", n.Tag())
	assert.Equal(t, []float64{2.5}, n.Rule().Backward(2.5))
}

func TestNode_TagFallsBackToOp(t *testing.T) {
	c := autodiff.Mul(autodiff.NewNode(2, ""), autodiff.NewNode(3, ""))
	assert.Equal(t, "*", c.Tag())

	c.SetLabel("C")
	assert.Equal(t, "C", c.Tag())
	assert.Equal(t, "*", c.Op())
}

func TestNode_GradSetters(t *testing.T) {
	n := autodiff.NewNode(1, "")
	n.SetGrad(3)
	assert.Equal(t, 3.0, n.Grad())
	n.ZeroGrad()
	assert.Equal(t, 0.0, n.Grad())
}

func TestNode_ArithmeticHelpersReturnPlainNumbers(t *testing.T) {
	a := autodiff.NewNode(3, "a")
	b := autodiff.NewNode(4, "b")

	assert.Equal(t, 12.0, a.MulValue(b))
	assert.Equal(t, 6.0, a.MulValue(autodiff.Const(2)))
	assert.Equal(t, 7.0, a.AddValue(b))
	assert.Equal(t, -1.0, a.SubValue(b))
	assert.Equal(t, 1.0, a.SubValue(autodiff.Const(2)))
	assert.Equal(t, 9.0, a.PowValue(2))
	assert.Equal(t, -3.0, a.NegValue())

	// Helpers must not touch the graph.
	assert.Equal(t, 0.0, a.Grad())
	assert.True(t, a.IsLeaf())
}

func TestNode_DivBuildsGraph(t *testing.T) {
	a := autodiff.NewNode(1, "a")
	b := autodiff.NewNode(4, "b")

	c := a.Div(b)
	require.Len(t, c.Children(), 2)
	assert.Same(t, a, c.Children()[0])
	assert.Equal(t, "**-1", c.Children()[1].Op())
	assert.InDelta(t, 0.25, c.Value(), 1e-12)
}

func TestNode_String(t *testing.T) {
	n := autodiff.NewNode(0.5, "A")
	assert.Equal(t, "Node A(value: 0.5, grad: 0)", n.String())
}

func TestNewResult_Validation(t *testing.T) {
	x := autodiff.NewNode(1, "x")

	assert.PanicsWithValue(t, "custom: nil backward rule", func() {
		autodiff.NewResult(1, "custom", nil, x)
	})
	assert.PanicsWithValue(t, "custom: nil input at position 1", func() {
		autodiff.NewResult(1, "custom", autodiff.IdentityRule{}, x, nil)
	})
}

func TestReconstruction_ProducesIndependentNodes(t *testing.T) {
	a := autodiff.NewNode(2, "a")
	b := autodiff.NewNode(5, "b")

	c1 := autodiff.Mul(a, b)
	c2 := autodiff.Mul(a, b)

	assert.Equal(t, c1.Value(), c2.Value())
	assert.NotSame(t, c1, c2)

	c1.Backward()
	assert.Equal(t, 1.0, c1.Grad())
	assert.Equal(t, 0.0, c2.Grad())
}

func TestPow_DomainErrorsPropagate(t *testing.T) {
	x := autodiff.NewNode(-2, "x")
	y := autodiff.Pow(x, 0.5)
	assert.True(t, math.IsNaN(y.Value()))

	y.Backward()
	assert.True(t, math.IsNaN(x.Grad()))

	z := autodiff.NewNode(0, "z")
	w := autodiff.Pow(z, -1)
	assert.True(t, math.IsInf(w.Value(), 1))
}
