package viz

import (
	"fmt"
	"os"

	"github.com/emicklei/dot"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// DOTConfig controls DOT rendering.
type DOTConfig struct {
	RankDir string // Graphviz rankdir (default: "LR")
	Format  string // fmt verb for value and grad (default: "%.4f")
}

func (c DOTConfig) withDefaults() DOTConfig {
	if c.RankDir == "" {
		c.RankDir = "LR"
	}
	if c.Format == "" {
		c.Format = "%.4f"
	}
	return c
}

// Graph builds the Graphviz graph for everything reachable from root.
func Graph(root *autodiff.Node, config DOTConfig) *dot.Graph {
	config = config.withDefaults()

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", config.RankDir)

	topo := autodiff.TopologicalOrder(root)
	ids := make(map[*autodiff.Node]dot.Node, len(topo))

	// Children precede parents in topo, so every child exists before its edges.
	for i, n := range topo {
		id := fmt.Sprintf("n%d", i)
		label := fmt.Sprintf("{ %s | value "+config.Format+" | grad "+config.Format+" }",
			n.Tag(), n.Value(), n.Grad())
		rec := g.Node(id).Attr("shape", "record").Label(label)
		ids[n] = rec

		if n.IsLeaf() {
			continue
		}
		op := g.Node(id + "op").Label(n.Op())
		g.Edge(op, rec)
		for _, child := range n.Children() {
			g.Edge(ids[child], op)
		}
	}

	return g
}

// DOT returns the Graphviz source for the graph reachable from root.
func DOT(root *autodiff.Node, config DOTConfig) string {
	return Graph(root, config).String()
}

// WriteDOT writes the Graphviz source to path.
func WriteDOT(path string, root *autodiff.Node, config DOTConfig) error {
	if err := os.WriteFile(path, []byte(DOT(root, config)), 0o600); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
