package autodiff

import "math"

// ExpRule is the backward rule of Exp: output = e^x.
//
// Since d(e^x)/dx = e^x, the forward result is reused:
// grad_x = grad * output.
type ExpRule struct {
	result float64
}

// Backward computes the input gradient for exp.
func (r ExpRule) Backward(grad float64) []float64 {
	return []float64{grad * r.result}
}

// Exp returns a new Node for e^x with children [x].
func Exp(x *Node) *Node {
	out := math.Exp(x.value)
	return NewResult(out, "exp", ExpRule{result: out}, x)
}
