package graph

import (
	"context"

	"github.com/ariaghora/gosonnx/gpuexec"
)

// SortedOperators returns the graph's operators in topological order,
// adapted to gpuexec.OperatorView. It assumes InferEdges has already
// run; Run calls it in the right order itself.
func (g *Graph) SortedOperators() []gpuexec.OperatorView {
	order := g.TopoSort()
	views := make([]gpuexec.OperatorView, 0, len(order))
	for _, name := range order {
		o := g.opMap[name]
		views = append(views, gpuexec.OperatorView{
			Name:    o.Name,
			Kind:    o.Kind,
			Attrs:   o.Attrs,
			Inputs:  o.Inputs,
			Outputs: o.Outputs,
			Extra:   o.ExtraAttrs,
		})
	}
	return views
}

// Run infers edges, runs the activation-fusion optimizer, and hands the
// graph to a freshly constructed GPU executor. It corresponds to the
// original project's Graph::run: compile() then GPUExecutor::execute().
func (g *Graph) Run(ctx context.Context) error {
	if !g.compiled {
		g.InferEdges()
	}
	if err := NewOptimizer().Optimize(g); err != nil {
		return err
	}
	exec, err := gpuexec.New()
	if err != nil {
		return err
	}
	return exec.Run(ctx, g)
}
