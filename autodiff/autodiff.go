// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Operations build a computation graph eagerly; Backward on any Node
// propagates gradients to every Node it depends on.
//
// Example:
//
//	import "github.com/born-ml/minigrad/autodiff"
//
//	func main() {
//	    a := autodiff.NewNode(0.2, "A")
//	    b := autodiff.NewNode(0.6, "B")
//	    d := autodiff.ReLU(autodiff.Div(a, b))
//	    d.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 1.6667 -0.5556
//	}
package autodiff

import "github.com/born-ml/minigrad/internal/autodiff"

// Node is a vertex of the computation graph.
type Node = autodiff.Node

// Rule is the backward rule bound to a non-leaf Node.
type Rule = autodiff.Rule

// Scalar is anything usable in plain-number Node arithmetic.
type Scalar = autodiff.Scalar

// Const is a raw number usable as a Scalar.
type Const = autodiff.Const

// Backward rules of the built-in operations.
type (
	IdentityRule = autodiff.IdentityRule
	MulRule      = autodiff.MulRule
	AddRule      = autodiff.AddRule
	PowRule      = autodiff.PowRule
	ExpRule      = autodiff.ExpRule
	TanhRule     = autodiff.TanhRule
	ReLURule     = autodiff.ReLURule
)

// NewNode creates a leaf Node.
func NewNode(value float64, label string) *Node {
	return autodiff.NewNode(value, label)
}

// NewResult creates the output Node of a custom operation.
//
// Example:
//
//	type squareRule struct{ x *autodiff.Node }
//
//	func (r squareRule) Backward(g float64) []float64 {
//	    return []float64{g * 2 * r.x.Value()}
//	}
//
//	y := autodiff.NewResult(x.PowValue(2), "sq", squareRule{x}, x)
func NewResult(value float64, op string, rule Rule, children ...*Node) *Node {
	return autodiff.NewResult(value, op, rule, children...)
}

// Mul returns a * b.
func Mul(a, b *Node) *Node { return autodiff.Mul(a, b) }

// Add returns the sum of xs.
func Add(xs ...*Node) *Node { return autodiff.Add(xs...) }

// Pow returns x ** p for a constant p.
func Pow(x *Node, p float64) *Node { return autodiff.Pow(x, p) }

// Exp returns e ** x.
func Exp(x *Node) *Node { return autodiff.Exp(x) }

// Tanh returns tanh(x).
func Tanh(x *Node) *Node { return autodiff.Tanh(x) }

// ReLU returns max(0, x).
func ReLU(x *Node) *Node { return autodiff.ReLU(x) }

// Div returns a / b as Mul(a, Pow(b, -1)).
func Div(a, b *Node) *Node { return autodiff.Div(a, b) }

// TopologicalOrder returns the Nodes reachable from root, children first.
func TopologicalOrder(root *Node) []*Node {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrads resets every gradient reachable from root.
func ZeroGrads(root *Node) {
	autodiff.ZeroGrads(root)
}
