package nn

import "github.com/born-ml/minigrad/internal/autodiff"

// Parameter represents a trainable scalar in a neural network.
//
// Node values are immutable, so a parameter update swaps in a fresh leaf
// Node. Modules read Node() on every forward pass and therefore always see
// the latest value.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	y := autodiff.Mul(w.Node(), x)
//	y.Backward()
//	fmt.Println(w.Grad()) // x.Value()
type Parameter struct {
	name string
	node *autodiff.Node
}

// NewParameter creates a new trainable parameter with the given initial value.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		name: name,
		node: autodiff.NewNode(value, name),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the leaf Node currently holding the parameter value.
func (p *Parameter) Node() *autodiff.Node {
	return p.node
}

// Value returns the current parameter value.
func (p *Parameter) Value() float64 {
	return p.node.Value()
}

// Grad returns the gradient accumulated on the current Node.
func (p *Parameter) Grad() float64 {
	return p.node.Grad()
}

// SetValue replaces the parameter's Node with a new leaf holding value.
// The new Node starts with a zero gradient.
func (p *Parameter) SetValue(value float64) {
	p.node = autodiff.NewNode(value, p.name)
}

// ZeroGrad clears the gradient.
//
// Gradients accumulate across Backward calls, so this should be called
// before each training iteration.
func (p *Parameter) ZeroGrad() {
	p.node.ZeroGrad()
}
