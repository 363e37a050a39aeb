// Package main provides the minigrad CLI.
//
// It builds one of the bundled example graphs, runs the backward pass and
// prints every node, or trains a small MLP with SGD.
//
// Usage:
//
//	minigrad -example a
//	minigrad -example b -dot graph.dot
//	minigrad -train -epochs 200 -lr 0.05
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/born-ml/minigrad/internal/examples"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/viz"
)

const version = "v0.1.0"

func main() {
	example := flag.String("example", "a", "Example graph to build ("+strings.Join(examples.Names(), ", ")+")")
	dotPath := flag.String("dot", "", "Write the graph as Graphviz DOT to this file")
	train := flag.Bool("train", false, "Train an MLP on the demo dataset instead of building an example")
	epochs := flag.Int("epochs", 100, "Number of training epochs")
	lr := flag.Float64("lr", 0.05, "Learning rate for SGD")
	momentum := flag.Float64("momentum", 0, "SGD momentum")
	activation := flag.String("activation", "tanh", "Hidden-layer activation for training (tanh, relu, linear)")
	seed := flag.Int64("seed", 1, "Random seed for weights and example inputs")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Printf("minigrad %s\n", version)
		return
	}

	if *train {
		act, err := nn.ParseActivation(*activation)
		if err != nil {
			log.Fatalf("Invalid activation: %v", err)
		}
		runTraining(*epochs, *lr, *momentum, act, *seed)
		return
	}

	build, err := examples.Lookup(*example)
	if err != nil {
		log.Fatalf("Failed to find example: %v", err)
	}
	root := build(*seed)

	fmt.Printf("Example %q: root %s\n\n", *example, root)
	if err := viz.Trace(os.Stdout, root); err != nil {
		log.Fatalf("Failed to print graph: %v", err)
	}

	if *dotPath != "" {
		if err := viz.WriteDOT(*dotPath, root, viz.DOTConfig{}); err != nil {
			log.Fatalf("Failed to write graph: %v", err)
		}
		fmt.Printf("\nWrote %s (render with: dot -Tpng %s -o graph.png)\n", *dotPath, *dotPath)
	}
}

func runTraining(epochs int, lr, momentum float64, activation nn.Activation, seed int64) {
	fmt.Printf("Training MLP for %d epochs (lr=%g, momentum=%g, activation=%s)\n", epochs, lr, momentum, activation)

	logEvery := epochs / 10
	if logEvery == 0 {
		logEvery = 1
	}

	model, final, err := examples.Train(examples.TrainConfig{
		Epochs:     epochs,
		LR:         lr,
		Momentum:   momentum,
		Seed:       seed,
		Activation: activation,
	}, func(epoch int, loss float64) {
		if epoch%logEvery == 0 || epoch == 1 {
			fmt.Printf("  epoch %4d  loss %.6f\n", epoch, loss)
		}
	})
	if err != nil {
		log.Fatalf("Failed to train: %v", err)
	}

	fmt.Printf("\n%s\n", model)
	fmt.Printf("Final loss: %.6f\n", final)
	printPredictions(model)
}

func printPredictions(model *nn.MLP) {
	preds := examples.Predict(model, examples.Dataset.Inputs)
	for i, p := range preds {
		fmt.Printf("  target %+.1f  prediction %+.4f\n", examples.Dataset.Targets[i], p.Value())
	}
}
