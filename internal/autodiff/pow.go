package autodiff

import (
	"fmt"
	"math"
)

// PowRule is the backward rule of Pow: output = x ** p.
//
// Backward pass:
//   - d(x^p)/dx = p * x^(p-1)
//   - p is a constant and receives no gradient
//
// Undefined powers (negative base with a fractional exponent, zero base with
// a negative one) yield NaN or Inf exactly as math.Pow does.
type PowRule struct {
	x *Node
	p float64
}

// Backward computes the input gradient for x ** p.
func (r PowRule) Backward(grad float64) []float64 {
	local := r.p * r.x.PowValue(r.p-1)
	return []float64{grad * local}
}

// Pow returns a new Node for x ** p with children [x].
func Pow(x *Node, p float64) *Node {
	return NewResult(math.Pow(x.value, p), fmt.Sprintf("**%g", p), PowRule{x: x, p: p}, x)
}
