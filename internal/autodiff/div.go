package autodiff

// Div returns a new Node for a / b.
//
// It is composed as Mul(a, Pow(b, -1)), so the graph gains an intermediate
// "**-1" Node and the gradients follow from the multiply and power rules:
//   - grad_a = grad / b
//   - grad_b = -grad * a / b²
func Div(a, b *Node) *Node {
	return Mul(a, Pow(b, -1))
}
