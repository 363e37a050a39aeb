// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Operations build a directed acyclic graph of Nodes as they execute. Each
// non-leaf Node carries a Rule that maps the gradient flowing into it to one
// gradient per child. Calling Backward on a terminal Node orders the reachable
// graph topologically and propagates gradients from the root to the leaves,
// accumulating them additively.
//
// Example:
//
//	a := autodiff.NewNode(0.24, "A")
//	b := autodiff.NewNode(0.7, "B")
//	c := autodiff.Mul(a, b)
//	e := autodiff.Mul(c, a)
//	e.Backward()
//	fmt.Println(a.Grad()) // 2*a*b = 0.336
package autodiff

import (
	"fmt"
	"math"
)

// Scalar is anything that can take part in plain-number arithmetic with a Node.
// Both *Node and Const implement it.
type Scalar interface {
	Float() float64
}

// Const is a raw number usable wherever a Scalar is expected.
type Const float64

// Float returns the constant as a float64.
func (c Const) Float() float64 {
	return float64(c)
}

// Node is a vertex of the computation graph.
//
// The value is fixed at construction. Only the gradient changes afterwards,
// either through Backward or through an explicit SetGrad/ZeroGrad.
// Children are shared by reference: one Node may be an input of many others.
type Node struct {
	value    float64
	grad     float64
	children []*Node
	label    string // user-assigned name, e.g. "A"
	op       string // producing operation, empty for leaves
	rule     Rule
}

// NewNode creates a leaf Node wrapping value.
func NewNode(value float64, label string) *Node {
	return &Node{
		value: value,
		label: label,
		rule:  IdentityRule{},
	}
}

// Value returns the scalar computed for this Node.
func (n *Node) Value() float64 {
	return n.value
}

// Float implements Scalar.
func (n *Node) Float() float64 {
	return n.value
}

// Grad returns the accumulated gradient.
func (n *Node) Grad() float64 {
	return n.grad
}

// SetGrad overwrites the accumulated gradient.
func (n *Node) SetGrad(g float64) {
	n.grad = g
}

// ZeroGrad resets the accumulated gradient to 0.
func (n *Node) ZeroGrad() {
	n.grad = 0
}

// Children returns the inputs this Node was computed from, in rule order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// IsLeaf reports whether the Node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Label returns the user-assigned name.
func (n *Node) Label() string {
	return n.label
}

// SetLabel assigns a display name. Labels carry no semantic weight.
func (n *Node) SetLabel(label string) {
	n.label = label
}

// Op returns the symbol of the producing operation ("*", "+", "exp", ...).
// It is empty for leaves.
func (n *Node) Op() string {
	return n.op
}

// Tag returns the diagnostic tag: the label if one is set, otherwise the op.
func (n *Node) Tag() string {
	if n.label != "" {
		return n.label
	}
	return n.op
}

// Rule returns the backward rule bound to this Node.
func (n *Node) Rule() Rule {
	return n.rule
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node %s(value: %g, grad: %g)", n.Tag(), n.value, n.grad)
}

// The helpers below operate on raw numbers and never extend the graph.
// They exist for rule bodies and local-derivative formulas.

// MulValue returns value * other.
func (n *Node) MulValue(other Scalar) float64 {
	return n.value * other.Float()
}

// AddValue returns value + other.
func (n *Node) AddValue(other Scalar) float64 {
	return n.value + other.Float()
}

// SubValue returns value - other.
func (n *Node) SubValue(other Scalar) float64 {
	return n.value + (-other.Float())
}

// PowValue returns value ** p.
func (n *Node) PowValue(p float64) float64 {
	return math.Pow(n.value, p)
}

// NegValue returns -value.
func (n *Node) NegValue() float64 {
	return n.value * -1
}

// Div returns a new graph Node for n / other.
//
// Unlike the other helpers this one extends the graph: it is the same
// multiply/power composition as the package-level Div.
func (n *Node) Div(other *Node) *Node {
	return Div(n, other)
}
