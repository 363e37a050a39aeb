package nn

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Activation selects the non-linearity applied by a Neuron.
type Activation int

// The zero value is Tanh, the default hidden-layer non-linearity.
const (
	// Tanh applies the hyperbolic tangent.
	Tanh Activation = iota
	// ReLU applies max(0, x).
	ReLU
	// Linear applies no non-linearity.
	Linear
)

// Apply returns the activated Node for x.
func (a Activation) Apply(x *autodiff.Node) *autodiff.Node {
	switch a {
	case Linear:
		return x
	case Tanh:
		return autodiff.Tanh(x)
	case ReLU:
		return autodiff.ReLU(x)
	default:
		panic(fmt.Sprintf("activation: unknown kind %d", int(a)))
	}
}

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Linear:
		return "Linear"
	case Tanh:
		return "Tanh"
	case ReLU:
		return "ReLU"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a name ("linear", "tanh", "relu") to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "linear", "Linear":
		return Linear, nil
	case "tanh", "Tanh":
		return Tanh, nil
	case "relu", "ReLU":
		return ReLU, nil
	default:
		return 0, fmt.Errorf("%w: unknown activation %q", ErrInvalidConfig, name)
	}
}
