package autodiff

import "math"

// TanhRule is the backward rule of Tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_x = grad * (1 - output²).
type TanhRule struct {
	result float64
}

// Backward computes the input gradient for tanh.
func (r TanhRule) Backward(grad float64) []float64 {
	local := 1 - r.result*r.result
	return []float64{grad * local}
}

// Tanh returns a new Node for tanh(x) with children [x].
func Tanh(x *Node) *Node {
	out := math.Tanh(x.value)
	return NewResult(out, "tanh", TanhRule{result: out}, x)
}
