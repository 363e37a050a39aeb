package examples_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/examples"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byLabel indexes the graph under root by label.
func byLabel(root *autodiff.Node) map[string]*autodiff.Node {
	nodes := make(map[string]*autodiff.Node)
	for _, n := range autodiff.TopologicalOrder(root) {
		if n.Label() != "" {
			nodes[n.Label()] = n
		}
	}
	return nodes
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "mlp", "neuron"}, examples.Names())

	b, err := examples.Lookup("a")
	require.NoError(t, err)
	assert.NotNil(t, b)

	_, err = examples.Lookup("zzz")
	assert.ErrorIs(t, err, examples.ErrUnknownExample)
}

func TestMultiplyChain(t *testing.T) {
	n := byLabel(examples.MultiplyChain(0))
	assert.InDelta(t, 0.04032, n["E"].Value(), 1e-12)
	assert.InDelta(t, 0.336, n["A"].Grad(), 1e-12)
	assert.InDelta(t, 0.0576, n["B"].Grad(), 1e-12)
}

func TestDivideReLU(t *testing.T) {
	n := byLabel(examples.DivideReLU(0))
	assert.InDelta(t, 0.3333, n["C"].Value(), 1e-4)
	assert.InDelta(t, 0.3333, n["D"].Value(), 1e-4)
	assert.InDelta(t, 1.6667, n["A"].Grad(), 1e-4)
	assert.InDelta(t, -0.5556, n["B"].Grad(), 1e-4)
}

func TestRepeatedBackward_Accumulates(t *testing.T) {
	n := byLabel(examples.RepeatedBackward(0))

	assert.Equal(t, 1.0, n["E"].Grad())
	assert.InDelta(t, 0.48, n["C"].Grad(), 1e-12)
	assert.InDelta(t, 0.84, n["A"].Grad(), 1e-12)
	assert.InDelta(t, 0.1728, n["B"].Grad(), 1e-12)
}

func TestTanhNeuron(t *testing.T) {
	n := byLabel(examples.TanhNeuron(0))
	h := n["H"]
	// g = (0.6*0.2 + 0.1) * 0.8 = 0.176
	assert.InDelta(t, 0.17420, h.Value(), 1e-4)
	local := 1 - h.Value()*h.Value()
	assert.InDelta(t, local, n["G"].Grad(), 1e-12)
	assert.InDelta(t, local*0.8*0.2, n["A"].Grad(), 1e-12)
}

func TestMLPExample(t *testing.T) {
	out := examples.MLP(3)
	assert.Equal(t, "out", out.Label())
	assert.Equal(t, 1.0, out.Grad())

	n := byLabel(out)
	for _, name := range []string{"x0", "x1", "x2"} {
		require.Contains(t, n, name)
	}
}

func TestTrain_LossDecreases(t *testing.T) {
	var losses []float64
	model, final, err := examples.Train(examples.TrainConfig{Epochs: 150, Seed: 2}, func(_ int, loss float64) {
		losses = append(losses, loss)
	})
	require.NoError(t, err)
	require.NotNil(t, model)
	require.Len(t, losses, 150)

	assert.Equal(t, losses[len(losses)-1], final)
	assert.Less(t, final, losses[0])
}

func TestTrain_InvalidSizes(t *testing.T) {
	_, _, err := examples.Train(examples.TrainConfig{Sizes: []int{0}}, nil)
	assert.Error(t, err)
}

func TestTrain_ReLUHidden(t *testing.T) {
	model, _, err := examples.Train(examples.TrainConfig{Epochs: 5, Seed: 3, Activation: nn.ReLU}, nil)
	require.NoError(t, err)
	assert.Contains(t, model.String(), "ReLUNeuron(3)")
	assert.Contains(t, model.String(), "LinearNeuron(4)")
}
