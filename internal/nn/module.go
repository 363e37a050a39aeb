// Package nn implements small neural network modules on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Parameters and ZeroGrad
//   - Parameter: a named trainable scalar
//   - Neuron, Layer, MLP: a fully connected multi-layer perceptron
//   - MSELoss: squared-error loss built from graph operations
//
// Every forward pass builds a fresh graph from the parameters' current
// Nodes, so a training step is: forward, loss.Backward(), optimizer step.
package nn

import "github.com/born-ml/minigrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed: a Layer holds Neurons, an MLP holds Layers, and
// each container reports the parameters of its children in order.
type Module interface {
	// Parameters returns all trainable parameters in construction order.
	Parameters() []*Parameter

	// ZeroGrad resets the gradient of every parameter to 0.
	ZeroGrad()
}

// zeroGrad resets the gradients of params.
func zeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// Nodes returns the current graph Node of every parameter of m.
func Nodes(m Module) []*autodiff.Node {
	params := m.Parameters()
	nodes := make([]*autodiff.Node, len(params))
	for i, p := range params {
		nodes[i] = p.Node()
	}
	return nodes
}
