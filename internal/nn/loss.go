package nn

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// MSELoss computes the mean squared error of predictions against targets.
//
// Loss = mean((prediction - target)²)
//
// The result is a graph Node, so loss.Backward() reaches every parameter
// that contributed to the predictions.
//
// Panics if the slices are empty or have different lengths.
func MSELoss(predictions []*autodiff.Node, targets []float64) *autodiff.Node {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSELoss: got %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSELoss: no predictions")
	}

	squares := make([]*autodiff.Node, len(predictions))
	for i, p := range predictions {
		neg := autodiff.NewNode(-targets[i], "target")
		squares[i] = autodiff.Pow(autodiff.Add(p, neg), 2)
	}

	scale := autodiff.NewNode(1/float64(len(squares)), "1/n")
	return autodiff.Mul(autodiff.Add(squares...), scale)
}
