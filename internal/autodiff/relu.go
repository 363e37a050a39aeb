package autodiff

import "math"

// ReLURule is the backward rule of ReLU: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x >= 0, else 0
//
// The boundary x = 0 takes slope 1.
type ReLURule struct {
	x *Node
}

// Backward computes the input gradient for ReLU.
func (r ReLURule) Backward(grad float64) []float64 {
	if r.x.value >= 0 {
		return []float64{grad}
	}
	return []float64{0}
}

// ReLU returns a new Node for max(0, x) with children [x].
func ReLU(x *Node) *Node {
	return NewResult(math.Max(0, x.value), "relu", ReLURule{x: x}, x)
}
