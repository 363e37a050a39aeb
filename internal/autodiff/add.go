package autodiff

// AddRule is the backward rule of Add: output = x1 + x2 + ... + xn.
//
// The local derivative is 1 for every term, so the upstream gradient is
// broadcast unchanged to each summand.
type AddRule struct {
	n int // number of summands
}

// Backward returns n copies of grad.
func (r AddRule) Backward(grad float64) []float64 {
	grads := make([]float64, r.n)
	for i := range grads {
		grads[i] = grad
	}
	return grads
}

// Add returns a new Node for the sum of xs with children xs, in order.
//
// A Node may appear more than once in xs; it then receives one gradient
// contribution per occurrence. Add with no arguments yields a childless 0.
func Add(xs ...*Node) *Node {
	sum := 0.0
	for _, x := range xs {
		sum = x.AddValue(Const(sum))
	}
	children := make([]*Node, len(xs))
	copy(children, xs)
	return NewResult(sum, "+", AddRule{n: len(xs)}, children...)
}
