// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read the gradient accumulated on each parameter's Node by
// loss.Backward() and install a new leaf Node holding the updated value.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := nn.MSELoss(predict(model, xs), ys)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import "github.com/born-ml/minigrad/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward accumulates, so this should be called before each backward
	// pass unless accumulation across losses is intended.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// zeroGrad clears the gradient of every parameter.
func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
