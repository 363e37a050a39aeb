package nn

import (
	"math/rand"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Layer is a set of independent Neurons reading the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a Layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, activation Activation, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, activation, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output Node per neuron.
func (l *Layer) Forward(x []*autodiff.Node) []*autodiff.Node {
	out := make([]*autodiff.Node, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters in the layer.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
