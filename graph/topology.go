package graph

// InferEdges connects every ordered pair (A, B) of distinct operators:
// if every name in A's outputs is also one of B's inputs, and A's own
// name is not itself one of B's inputs, then B is appended to A's
// successors and A to B's predecessors. Iteration order over the
// operator store is the tie-break, so the resulting neighbor lists are
// order-sensitive — the first entry of Predecessors is the fusion
// anchor the optimizer consults.
//
// InferEdges does not dedupe against pre-existing edges; a second call
// appends every edge again. Run calls it only while the graph's
// compiled flag is unset, so edges are inferred once per Graph.
func (g *Graph) InferEdges() {
	names := make([]string, 0, len(g.opMap))
	for n := range g.opMap {
		names = append(names, n)
	}
	for _, from := range names {
		for _, to := range names {
			if from == to {
				continue
			}
			fromOp := g.opMap[from]
			toOp := g.opMap[to]
			if !allContained(fromOp.Outputs, toOp.Inputs) {
				continue
			}
			if contains(toOp.Inputs, from) {
				continue
			}
			fromOp.Successors = append(fromOp.Successors, to)
			toOp.Predecessors = append(toOp.Predecessors, from)
		}
	}
	g.compiled = true
}

func allContained(outputs, inputs []string) bool {
	for _, o := range outputs {
		if !contains(inputs, o) {
			return false
		}
	}
	return true
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// TerminalOutputs collects the output tensor names of every operator
// with no successors.
func (g *Graph) TerminalOutputs() []string {
	var outs []string
	for _, o := range g.opMap {
		if len(o.Successors) == 0 {
			outs = append(outs, o.Outputs...)
		}
	}
	return outs
}

// TopoSort performs a DFS from every sink (operator with an empty
// successor list), recursing into predecessors first and emitting the
// current operator afterward; already-emitted operators are skipped via
// a linear scan, matching the reference implementation's own
// complexity for graphs of the scale this engine targets.
func (g *Graph) TopoSort() []string {
	terminals := make([]string, 0)
	for name, o := range g.opMap {
		if len(o.Successors) == 0 {
			terminals = append(terminals, name)
		}
	}
	var sorted []string
	for _, t := range terminals {
		topoVisit(g.opMap, &sorted, t)
	}
	return sorted
}

func topoVisit(opMap map[string]*Op, sorted *[]string, root string) {
	if contains(*sorted, root) {
		return
	}
	o, ok := opMap[root]
	if !ok {
		return
	}
	for _, pred := range o.Predecessors {
		topoVisit(opMap, sorted, pred)
	}
	*sorted = append(*sorted, root)
}
