package nn

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// ErrInvalidConfig is returned for malformed model configurations.
var ErrInvalidConfig = errors.New("invalid model config")

// MLPConfig holds configuration for an MLP.
type MLPConfig struct {
	Inputs     int        // Number of scalar inputs
	Sizes      []int      // Neurons per layer; the last entry is the output width
	Activation Activation // Hidden-layer activation (default: Tanh)
	Seed       int64      // Seed for weight initialization
}

// MLP is a multi-layer perceptron. Hidden layers use the configured
// activation; the output layer is linear.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a new MLP.
//
// Example:
//
//	model, err := nn.NewMLP(nn.MLPConfig{Inputs: 3, Sizes: []int{4, 4, 1}})
func NewMLP(config MLPConfig) (*MLP, error) {
	if config.Inputs <= 0 {
		return nil, fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidConfig, config.Inputs)
	}
	if len(config.Sizes) == 0 {
		return nil, fmt.Errorf("%w: at least one layer size is required", ErrInvalidConfig)
	}
	for i, sz := range config.Sizes {
		if sz <= 0 {
			return nil, fmt.Errorf("%w: layer %d size must be positive, got %d", ErrInvalidConfig, i, sz)
		}
	}
	//nolint:gosec // weight initialization is not security-critical
	rng := rand.New(rand.NewSource(config.Seed))

	sizes := append([]int{config.Inputs}, config.Sizes...)
	layers := make([]*Layer, len(config.Sizes))
	for i := range layers {
		act := config.Activation
		if i == len(layers)-1 {
			act = Linear
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], act, rng)
	}

	return &MLP{layers: layers}, nil
}

// Forward runs x through every layer and returns the output layer's Nodes.
func (m *MLP) Forward(x []*autodiff.Node) []*autodiff.Node {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Parameters returns the parameters of all layers in order.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters in the model.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
