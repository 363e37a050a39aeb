package autodiff

// MulRule is the backward rule of Mul: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = grad * b
//   - d(a*b)/db = a, so grad_b = grad * a
type MulRule struct {
	a, b *Node
}

// Backward computes input gradients for multiplication.
func (r MulRule) Backward(grad float64) []float64 {
	return []float64{
		r.b.MulValue(Const(grad)),
		r.a.MulValue(Const(grad)),
	}
}

// Mul returns a new Node for a * b with children [a, b].
func Mul(a, b *Node) *Node {
	return NewResult(a.MulValue(b), "*", MulRule{a: a, b: b}, a, b)
}
