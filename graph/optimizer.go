package graph

import (
	"fmt"

	"github.com/ariaghora/gosonnx/op"
)

// Optimizer performs the single activation-fusion pass described by the
// component design: an activation operator with exactly one predecessor
// that is itself an activable kind (Gemm, Conv, ConvTranspose,
// BatchNormalization) and whose only successor is that activation is
// folded into that predecessor by annotating it and splicing the
// activation node out of the graph.
type Optimizer struct{}

// NewOptimizer returns a ready-to-use Optimizer; it holds no state.
func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// Optimize requires the graph's edges to already be inferred (Predecessors/
// Successors populated). It walks operators in topological order and
// fuses eligible activations in a single pass; an operator mutated into
// a fused form is not revisited.
func (opt *Optimizer) Optimize(g *Graph) error {
	sorted := g.TopoSort()
	fused := make(map[string]bool, len(sorted))

	for _, name := range sorted {
		if fused[name] {
			continue
		}
		cur, ok := g.opMap[name]
		if !ok {
			return fmt.Errorf("optimizer: operator %q not found during fusion pass", name)
		}
		if !cur.Kind.IsActivation() {
			continue
		}
		if len(cur.Predecessors) != 1 {
			continue
		}
		anchorName := cur.Predecessors[0]
		anchor, ok := g.opMap[anchorName]
		if !ok {
			return fmt.Errorf("optimizer: anchor %q not found during fusion pass", anchorName)
		}
		if !anchor.Kind.Activable() {
			continue
		}
		if len(anchor.Successors) != 1 {
			continue
		}

		anchor.ExtraAttrs = append(anchor.ExtraAttrs, op.ExtraAttr{
			Key:   "activation",
			Value: cur.Kind.String(),
		})
		setFusedActivation(anchor, cur)

		if cur.Kind == op.HardSigmoid {
			hs := cur.Attrs.(op.HardSigmoidAttrs)
			anchor.ExtraAttrs = append(anchor.ExtraAttrs,
				op.ExtraAttr{Key: "hard_sigmoid_alpha", Value: fmt.Sprintf("%v", hs.Alpha)},
				op.ExtraAttr{Key: "hard_sigmoid_beta", Value: fmt.Sprintf("%v", hs.Beta)},
			)
		}

		// Splice cur out: successors that pointed to cur now point to
		// anchor; anchor's successor list becomes cur's; anchor's
		// output names become cur's so downstream name binding is
		// preserved.
		for _, succName := range cur.Successors {
			succ, ok := g.opMap[succName]
			if !ok {
				return fmt.Errorf("optimizer: successor %q not found during fusion pass", succName)
			}
			succ.Predecessors = replaceName(succ.Predecessors, name, anchorName)
		}
		anchor.Successors = cur.Successors
		anchor.Outputs = cur.Outputs

		delete(g.opMap, name)
		fused[name] = true
	}
	return nil
}

func setFusedActivation(anchor, activation *Op) {
	name := activation.Kind.String()
	var hsAlpha, hsBeta float32
	if activation.Kind == op.HardSigmoid {
		hs := activation.Attrs.(op.HardSigmoidAttrs)
		hsAlpha, hsBeta = hs.Alpha, hs.Beta
	}
	switch a := anchor.Attrs.(type) {
	case op.GemmAttrs:
		a.FusedActivation, a.FusedHSAlpha, a.FusedHSBeta = name, hsAlpha, hsBeta
		anchor.Attrs = a
	case op.ConvAttrs:
		a.FusedActivation, a.FusedHSAlpha, a.FusedHSBeta = name, hsAlpha, hsBeta
		anchor.Attrs = a
	case op.ConvTransposeAttrs:
		a.FusedActivation, a.FusedHSAlpha, a.FusedHSBeta = name, hsAlpha, hsBeta
		anchor.Attrs = a
	case op.BatchNormAttrs:
		a.FusedActivation, a.FusedHSAlpha, a.FusedHSBeta = name, hsAlpha, hsBeta
		anchor.Attrs = a
	}
}

func replaceName(names []string, old, new string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == old {
			out[i] = new
		} else {
			out[i] = n
		}
	}
	return out
}
