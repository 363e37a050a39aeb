// Package examples builds the demonstration graphs shipped with the CLI.
//
// Every example constructs its graph, runs Backward on the root and returns
// the root so callers can inspect or render it.
package examples

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// ErrUnknownExample is returned by Lookup for unregistered names.
var ErrUnknownExample = errors.New("unknown example")

// Builder constructs an example graph from a seed and returns its root
// after Backward.
type Builder func(seed int64) *autodiff.Node

var registry = map[string]Builder{
	"a":      MultiplyChain,
	"b":      DivideReLU,
	"c":      RepeatedBackward,
	"neuron": TanhNeuron,
	"mlp":    MLP,
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownExample, name, Names())
	}
	return b, nil
}

// Names returns the registered example names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func label(n *autodiff.Node, name string) *autodiff.Node {
	n.SetLabel(name)
	return n
}

// MultiplyChain builds e = (a*b)*a with a=0.24, b=0.7.
func MultiplyChain(int64) *autodiff.Node {
	a := autodiff.NewNode(0.24, "A")
	b := autodiff.NewNode(0.7, "B")
	c := label(autodiff.Mul(a, b), "C")
	e := label(autodiff.Mul(c, a), "E")
	e.Backward()
	return e
}

// TanhNeuron builds h = tanh((a*b + d) * f).
func TanhNeuron(int64) *autodiff.Node {
	a := autodiff.NewNode(0.6, "A")
	b := autodiff.NewNode(0.2, "B")
	c := label(autodiff.Mul(a, b), "C")
	d := autodiff.NewNode(0.1, "D")
	e := label(autodiff.Add(c, d), "E")
	f := autodiff.NewNode(0.8, "F")
	g := label(autodiff.Mul(e, f), "G")
	h := label(autodiff.Tanh(g), "H")
	h.Backward()
	return h
}

// DivideReLU builds d = relu(a / b) with a=0.2, b=0.6.
func DivideReLU(int64) *autodiff.Node {
	a := autodiff.NewNode(0.2, "A")
	b := autodiff.NewNode(0.6, "B")
	c := label(autodiff.Div(a, b), "C")
	d := label(autodiff.ReLU(c), "D")
	d.Backward()
	return d
}

// RepeatedBackward is MultiplyChain with Backward called twice and no
// zeroing in between. The root is re-seeded to 1, but intermediate Nodes
// propagate their accumulated gradients, so A ends at 0.84 rather than
// twice 0.336.
func RepeatedBackward(seed int64) *autodiff.Node {
	e := MultiplyChain(seed)
	e.Backward()
	return e
}

// MLP feeds three random inputs through a 3-4-1 perceptron.
func MLP(seed int64) *autodiff.Node {
	//nolint:gosec // example inputs are not security-critical
	rng := rand.New(rand.NewSource(seed))
	x := make([]*autodiff.Node, 3)
	for i := range x {
		x[i] = autodiff.NewNode(rng.Float64(), fmt.Sprintf("x%d", i))
	}

	model, err := nn.NewMLP(nn.MLPConfig{Inputs: 3, Sizes: []int{4, 1}, Seed: seed})
	if err != nil {
		panic(fmt.Sprintf("examples: %v", err))
	}
	out := label(model.Forward(x)[0], "out")
	out.Backward()
	return out
}
