// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders computation graphs as Graphviz DOT or plain text.
package viz

import (
	"io"

	"github.com/emicklei/dot"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/viz"
)

// DOTConfig controls DOT rendering.
type DOTConfig = viz.DOTConfig

// Graph builds the Graphviz graph for everything reachable from root.
func Graph(root *autodiff.Node, config DOTConfig) *dot.Graph {
	return viz.Graph(root, config)
}

// DOT returns Graphviz source for the graph reachable from root.
func DOT(root *autodiff.Node, config DOTConfig) string {
	return viz.DOT(root, config)
}

// WriteDOT writes Graphviz source to path.
func WriteDOT(path string, root *autodiff.Node, config DOTConfig) error {
	return viz.WriteDOT(path, root, config)
}

// Trace writes a text table of the graph, root first.
func Trace(w io.Writer, root *autodiff.Node) error {
	return viz.Trace(w, root)
}
