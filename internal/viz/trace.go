package viz

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/minigrad/internal/autodiff"
)

// Trace writes one row per reachable Node, root first, in the order Backward
// visits them.
func Trace(w io.Writer, root *autodiff.Node) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TAG\tOP\tVALUE\tGRAD\tCHILDREN"); err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	topo := autodiff.TopologicalOrder(root)
	for i := len(topo) - 1; i >= 0; i-- {
		n := topo[i]
		op := n.Op()
		if op == "" {
			op = "-"
		}
		children := make([]string, len(n.Children()))
		for j, c := range n.Children() {
			children[j] = display(c)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.6f\t[%s]\n",
			display(n), op, n.Value(), n.Grad(), strings.Join(children, " ")); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}

// display returns a printable name for n.
func display(n *autodiff.Node) string {
	if tag := n.Tag(); tag != "" {
		return tag
	}
	return "?"
}
