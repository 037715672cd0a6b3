// Package graph implements the tensor/operator store, topology
// inference, activation fusion, and the public query surface on top of
// it: Graph is the owner of everything needed to build, optimize, and
// run an inference.
package graph

import (
	"github.com/ariaghora/gosonnx/gerr"
	"github.com/ariaghora/gosonnx/op"
	"github.com/ariaghora/gosonnx/tensor"
)

// Op is one node of the dataflow graph: a typed attribute variant
// (Kind/Attrs), its ordered input/output tensor names, and — after
// topology inference — its predecessor/successor operator names.
type Op struct {
	Name       string
	Kind       op.Kind
	Attrs      any
	Inputs     []string
	Outputs    []string
	Predecessors []string
	Successors   []string
	ExtraAttrs   []op.ExtraAttr
}

func newOp(name string, kind op.Kind, attrs any, inputs, outputs []string) *Op {
	return &Op{
		Name:    name,
		Kind:    kind,
		Attrs:   attrs,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// view adapts an *Op into the minimal shape op.Compile needs.
func (o *Op) view() op.OpView {
	return op.OpView{
		Name:       o.Name,
		Inputs:     o.Inputs,
		Outputs:    o.Outputs,
		ExtraAttrs: o.ExtraAttrs,
	}
}

// Graph owns the tensor store, the operator store, the set of terminal
// output tensor names, the decoded output map populated after a run,
// and any caller-marked optional outputs.
type Graph struct {
	tensorMap       map[string]tensor.Tensor
	opMap           map[string]*Op
	outputTensorMap map[string]tensor.Tensor
	optionalOutputs []string
	compiled        bool
}

// New returns an empty Graph ready for NewOp/NewTensor* calls.
func New() *Graph {
	return &Graph{
		tensorMap:       make(map[string]tensor.Tensor),
		opMap:           make(map[string]*Op),
		outputTensorMap: make(map[string]tensor.Tensor),
	}
}

// NewTensorF32 registers a named f32 tensor, validating values against
// shape when present.
func (g *Graph) NewTensorF32(name string, values []float32, shape []int64) error {
	t, err := tensor.NewF32(values, shape)
	if err != nil {
		return err
	}
	g.tensorMap[name] = t
	return nil
}

// NewTensorI64 registers a named i64 tensor, validating values against
// shape when present.
func (g *Graph) NewTensorI64(name string, values []int64, shape []int64) error {
	t, err := tensor.NewI64(values, shape)
	if err != nil {
		return err
	}
	g.tensorMap[name] = t
	return nil
}

// NewTensorF64 registers a named f64 tensor.
func (g *Graph) NewTensorF64(name string, values []float64, shape []int64) error {
	t, err := tensor.NewF64(values, shape)
	if err != nil {
		return err
	}
	g.tensorMap[name] = t
	return nil
}

// NewOp registers a named operator of the given kind. inputs/outputs
// name tensors that must already exist (or will exist by the time Run
// is called). Predecessor/successor lists start empty and are filled
// exactly once by topology inference inside Run.
func (g *Graph) NewOp(inputNames, outputNames []string, opName string, kind op.Kind, attrs any) error {
	g.opMap[opName] = newOp(opName, kind, attrs, inputNames, outputNames)
	return nil
}

// GetOutput returns a decoded output tensor by name, populated after a
// successful Run.
func (g *Graph) GetOutput(name string) (tensor.Tensor, bool) {
	t, ok := g.outputTensorMap[name]
	return t, ok
}

// SetTensor replaces an existing tensor's value, requiring the new
// tensor's shape to equal the prior one's.
func (g *Graph) SetTensor(name string, t tensor.Tensor) error {
	old, ok := g.tensorMap[name]
	if !ok {
		return &gerr.TensorNotFound{Name: name}
	}
	if !shapeEqual(old.Shape, t.Shape) {
		return &gerr.ShapeMismatchError{}
	}
	g.tensorMap[name] = t
	return nil
}

// AddOptionalOutput marks an existing internal tensor name so its
// storage is also copied out during readback, even though it is not a
// terminal operator output.
func (g *Graph) AddOptionalOutput(name string) error {
	if _, ok := g.tensorMap[name]; !ok {
		return &gerr.TensorNotFound{Name: name}
	}
	g.optionalOutputs = append(g.optionalOutputs, name)
	return nil
}

func shapeEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TensorShape implements op.GraphView.
func (g *Graph) TensorShape(name string) ([]int64, error) {
	t, ok := g.tensorMap[name]
	if !ok {
		return nil, &gerr.TensorNotFound{Name: name}
	}
	return t.Shape, nil
}

// TensorTypeGLSL implements op.GraphView.
func (g *Graph) TensorTypeGLSL(name string) (string, error) {
	t, ok := g.tensorMap[name]
	if !ok {
		return "", &gerr.TensorNotFound{Name: name}
	}
	return t.TypeGLSL(), nil
}

// Tensor returns the named tensor and whether it exists.
func (g *Graph) Tensor(name string) (tensor.Tensor, bool) {
	t, ok := g.tensorMap[name]
	return t, ok
}

// TensorNames lists every tensor currently in the store.
func (g *Graph) TensorNames() []string {
	names := make([]string, 0, len(g.tensorMap))
	for n := range g.tensorMap {
		names = append(names, n)
	}
	return names
}

// SetOutputTensor records a decoded output after readback.
func (g *Graph) SetOutputTensor(name string, t tensor.Tensor) {
	g.outputTensorMap[name] = t
}

// OptionalOutputs lists caller-marked extra readback targets.
func (g *Graph) OptionalOutputs() []string {
	return g.optionalOutputs
}

// Ops exposes the operator store for topology/optimizer passes.
func (g *Graph) Ops() map[string]*Op {
	return g.opMap
}
