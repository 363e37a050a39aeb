// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks.
//
// # Basic Usage
//
//	model, err := nn.NewMLP(nn.MLPConfig{Inputs: 3, Sizes: []int{4, 4, 1}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := model.Forward(x)[0]
//	loss := nn.MSELoss([]*autodiff.Node{out}, []float64{1})
//	model.ZeroGrad()
//	loss.Backward()
package nn

import (
	"math/rand"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and initial value.
func NewParameter(name string, value float64) *Parameter {
	return nn.NewParameter(name, value)
}

// Activation selects a Neuron's non-linearity.
type Activation = nn.Activation

// Activations.
const (
	Tanh   = nn.Tanh
	ReLU   = nn.ReLU
	Linear = nn.Linear
)

// ParseActivation maps "linear", "tanh" or "relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, activation Activation, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, activation, rng)
}

// Layer is a set of neurons sharing inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, activation Activation, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, activation, rng)
}

// MLP is a multi-layer perceptron with a linear output layer.
type MLP = nn.MLP

// MLPConfig holds configuration for an MLP.
type MLPConfig = nn.MLPConfig

// ErrInvalidConfig is returned for malformed model configurations.
var ErrInvalidConfig = nn.ErrInvalidConfig

// NewMLP creates a new MLP.
func NewMLP(config MLPConfig) (*MLP, error) {
	return nn.NewMLP(config)
}

// MSELoss returns mean((prediction - target)²) as a graph Node.
func MSELoss(predictions []*autodiff.Node, targets []float64) *autodiff.Node {
	return nn.MSELoss(predictions, targets)
}

// Nodes returns the current Node of every parameter of m.
func Nodes(m Module) []*autodiff.Node {
	return nn.Nodes(m)
}
