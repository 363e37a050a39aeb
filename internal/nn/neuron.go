package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Neuron computes act(w·x + b) over scalar inputs.
//
// Weights are initialized from U(-1, 1) and the bias to 0.
type Neuron struct {
	weights    []*Parameter
	bias       *Parameter
	activation Activation
}

// NewNeuron creates a Neuron with nin inputs.
func NewNeuron(nin int, activation Activation, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter("w", Uniform(rng, 1))
	}
	return &Neuron{
		weights:    weights,
		bias:       NewParameter("b", 0),
		activation: activation,
	}
}

// Forward builds the graph for one neuron output.
//
// Panics if len(x) does not match the number of weights.
func (n *Neuron) Forward(x []*autodiff.Node) *autodiff.Node {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("neuron: input size mismatch: got %d, want %d", len(x), len(n.weights)))
	}

	terms := make([]*autodiff.Node, 0, len(x)+1)
	for i, w := range n.weights {
		terms = append(terms, autodiff.Mul(w.Node(), x[i]))
	}
	terms = append(terms, n.bias.Node())

	return n.activation.Apply(autodiff.Add(terms...))
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets gradients of all parameters in the neuron.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// String returns e.g. "TanhNeuron(3)".
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.activation, len(n.weights))
}
