package autodiff

import "fmt"

// Rule is the backward half of a differentiable operation.
//
// Each operation has its own Rule type carrying exactly the context captured
// during the forward step. Backward receives the gradient flowing into the
// operation's output and returns one gradient per child, in child order.
//
// Example for MulRule:
//
//	children: [a, b]
//	grad:     dL/d(a*b)
//	returns:  [grad * b, grad * a]
type Rule interface {
	Backward(grad float64) []float64
}

// IdentityRule is bound to leaves. It passes the gradient through unchanged.
type IdentityRule struct{}

// Backward returns [grad].
func (IdentityRule) Backward(grad float64) []float64 {
	return []float64{grad}
}

// NewResult creates the output Node of an operation.
//
// This is the entry point for every built-in operation and for custom ones.
// The rule must return len(children) gradients; a mismatch is detected
// during Backward.
func NewResult(value float64, op string, rule Rule, children ...*Node) *Node {
	if rule == nil {
		panic(fmt.Sprintf("%s: nil backward rule", op))
	}
	for i, c := range children {
		if c == nil {
			panic(fmt.Sprintf("%s: nil input at position %d", op, i))
		}
	}
	return &Node{
		value:    value,
		children: children,
		op:       op,
		rule:     rule,
	}
}
