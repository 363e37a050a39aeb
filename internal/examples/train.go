package examples

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
)

// Dataset is the four-sample binary task used by the training demo.
var Dataset = struct {
	Inputs  [][]float64
	Targets []float64
}{
	Inputs: [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	},
	Targets: []float64{1.0, -1.0, -1.0, 1.0},
}

// TrainConfig holds configuration for the training demo.
type TrainConfig struct {
	Epochs   int     // Number of full passes (default: 100)
	LR       float64 // SGD learning rate (default: 0.05)
	Momentum float64 // SGD momentum
	Seed     int64   // Weight initialization seed
	Sizes    []int   // Layer sizes (default: [4, 4, 1])

	Activation nn.Activation // Hidden-layer activation (default: Tanh)
}

// EpochFunc observes the loss after each epoch.
type EpochFunc func(epoch int, loss float64)

// Train fits an MLP to Dataset with MSE loss and SGD and returns the model
// together with the final loss.
func Train(config TrainConfig, onEpoch EpochFunc) (*nn.MLP, float64, error) {
	if config.Epochs == 0 {
		config.Epochs = 100
	}
	if config.LR == 0 {
		config.LR = 0.05
	}
	if len(config.Sizes) == 0 {
		config.Sizes = []int{4, 4, 1}
	}

	model, err := nn.NewMLP(nn.MLPConfig{
		Inputs:     len(Dataset.Inputs[0]),
		Sizes:      config.Sizes,
		Activation: config.Activation,
		Seed:       config.Seed,
	})
	if err != nil {
		return nil, 0, err
	}

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: config.LR, Momentum: config.Momentum})

	var last float64
	for epoch := 1; epoch <= config.Epochs; epoch++ {
		opt.ZeroGrad()
		loss := nn.MSELoss(Predict(model, Dataset.Inputs), Dataset.Targets)
		loss.Backward()
		opt.Step()

		last = loss.Value()
		if onEpoch != nil {
			onEpoch(epoch, last)
		}
	}

	return model, last, nil
}

// Predict runs every sample through model and returns the first output of each.
func Predict(model *nn.MLP, inputs [][]float64) []*autodiff.Node {
	preds := make([]*autodiff.Node, len(inputs))
	for i, sample := range inputs {
		x := make([]*autodiff.Node, len(sample))
		for j, v := range sample {
			x[j] = autodiff.NewNode(v, "x")
		}
		preds[i] = model.Forward(x)[0]
	}
	return preds
}
