// Package viz renders computation graphs for inspection.
//
// Rendering is read-only: it reads tags, values, gradients and children and
// never mutates a Node.
//
//   - DOT: Graphviz source with one record per Node and one pseudo-node per
//     operation, edges running child -> op -> result
//   - Trace: a plain-text table of the graph in backward order
package viz
