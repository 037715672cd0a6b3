package graph

import (
	"fmt"
	"io"

	"github.com/goki/ki/indent"
)

// WriteDebug writes a human-readable, indented dump of the graph's
// operators (in topological order, once edges are inferred) and its
// tensor store, in the style of the teacher's WriteWtsJSON debug
// writers: a flat list of sections, each indented one level deeper than
// its heading.
func (g *Graph) WriteDebug(w io.Writer) error {
	if _, err := w.Write(indent.TabBytes(0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "graph:\n"); err != nil {
		return err
	}

	if _, err := w.Write(indent.TabBytes(1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ops:\n"); err != nil {
		return err
	}
	for _, name := range g.TopoSort() {
		o := g.opMap[name]
		if _, err := w.Write(indent.TabBytes(2)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: kind=%s inputs=%v outputs=%v\n", o.Name, o.Kind, o.Inputs, o.Outputs); err != nil {
			return err
		}
	}

	if _, err := w.Write(indent.TabBytes(1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "tensors:\n"); err != nil {
		return err
	}
	for name, t := range g.tensorMap {
		if _, err := w.Write(indent.TabBytes(2)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: type=%s shape=%v\n", name, t.Type, t.Shape); err != nil {
			return err
		}
	}
	return nil
}
