package autodiff

import "fmt"

// frame is one entry of the explicit DFS stack used by TopologicalOrder.
type frame struct {
	node *Node
	next int // index of the next child to visit
}

// TopologicalOrder returns every Node reachable from root, each exactly once,
// after all of its children (depth-first post-order).
//
// Nodes are keyed by identity, so two Nodes with equal values are distinct.
// The traversal uses an explicit stack, so long chains do not grow the
// goroutine stack. The graph must be acyclic.
func TopologicalOrder(root *Node) []*Node {
	if root == nil {
		return nil
	}

	topo := make([]*Node, 0, 16)
	visited := map[*Node]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, frame{node: child})
			continue
		}
		topo = append(topo, top.node)
		stack = stack[:len(stack)-1]
	}

	return topo
}

// Backward computes the gradient of n with respect to every Node reachable
// from it.
//
// Algorithm:
//  1. Order the reachable graph topologically (children before parents)
//  2. Seed n's gradient with 1
//  3. Walk the order in reverse; for each non-leaf, apply its rule to its
//     gradient and add the results to its children
//
// Gradients are never reset here. Calling Backward twice accumulates twice;
// zero the gradients first when per-call isolation is needed.
//
// Panics if a rule returns a different number of gradients than its Node
// has children.
func (n *Node) Backward() {
	topo := TopologicalOrder(n)

	n.grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		propagate(topo[i])
	}
}

// propagate pushes node's gradient into its children.
func propagate(node *Node) {
	if len(node.children) == 0 {
		return
	}

	grads := node.rule.Backward(node.grad)
	if len(grads) != len(node.children) {
		panic(fmt.Sprintf("backward: %q rule returned %d gradients for %d children",
			node.Tag(), len(grads), len(node.children)))
	}

	for j, child := range node.children {
		child.grad += grads[j]
	}
}

// ZeroGrads resets the gradient of every Node reachable from root.
func ZeroGrads(root *Node) {
	for _, node := range TopologicalOrder(root) {
		node.grad = 0
	}
}
