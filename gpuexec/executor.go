// Package gpuexec is the GPU executor: device/queue acquisition,
// storage- and staging-buffer allocation keyed by tensor name,
// topological scheduling of compute passes with per-pass bind groups,
// and asynchronous readback of terminal outputs. It is the Go
// counterpart of the teacher's axon.GPU wiring, rebuilt against
// github.com/gogpu/wgpu instead of Vulkan since this spec's buffer and
// mapping model is WebGPU-shaped.
package gpuexec

import (
	"context"
	"fmt"

	"github.com/gogpu/wgpu"

	"github.com/ariaghora/gosonnx/gerr"
	"github.com/ariaghora/gosonnx/op"
	"github.com/ariaghora/gosonnx/shader"
	"github.com/ariaghora/gosonnx/tensor"
)

// maxStorageBufferBindingSize matches the component design's default
// device-limit override.
const maxStorageBufferBindingSize = 256 * 1024 * 1024

// OperatorView is everything the executor needs about one operator to
// compile its shader and record its dispatch, independent of the
// graph package's Predecessor/Successor bookkeeping.
type OperatorView struct {
	Name    string
	Kind    op.Kind
	Attrs   any
	Inputs  []string
	Outputs []string
	Extra   []op.ExtraAttr
}

// ExecGraph is the minimal read/write surface the executor needs from
// a graph.Graph, expressed as an interface so this package never
// imports graph (which imports op; graph importing gpuexec to wire Run
// would otherwise be a cycle).
type ExecGraph interface {
	TensorNames() []string
	Tensor(name string) (tensor.Tensor, bool)
	SetOutputTensor(name string, t tensor.Tensor)
	SortedOperators() []OperatorView
	TerminalOutputs() []string
	TensorShape(name string) ([]int64, error)
	TensorTypeGLSL(name string) (string, error)
}

// Executor owns the device/queue for the duration of one Run and the
// storage/staging buffers keyed by tensor name.
type Executor struct {
	engine *shader.Engine

	device wgpu.Device
	queue  wgpu.Queue

	storageBufs map[string]wgpu.Buffer
	stagingBufs map[string]wgpu.Buffer
}

// New builds an Executor with a freshly parsed shader template engine.
// A new Executor is created per Run, matching the component design's
// "ephemeral per run" resource policy.
func New() (*Executor, error) {
	engine, err := shader.NewEngine()
	if err != nil {
		return nil, err
	}
	return &Executor{
		engine:      engine,
		storageBufs: make(map[string]wgpu.Buffer),
		stagingBufs: make(map[string]wgpu.Buffer),
	}, nil
}

// Run executes g's already topologically-sorted, already-fused operator
// list on the GPU and populates g's output map for every terminal
// output plus any caller-marked optional outputs.
func (e *Executor) Run(ctx context.Context, g ExecGraph) error {
	device, queue, err := e.acquireDevice(ctx)
	if err != nil {
		return err
	}
	e.device, e.queue = device, queue

	if err := e.allocateStorageBuffers(g); err != nil {
		return err
	}

	terminals := g.TerminalOutputs()
	readbackTargets := append(append([]string{}, terminals...), extraOptionalOutputs(g)...)
	if err := e.allocateStagingBuffers(g, readbackTargets); err != nil {
		return err
	}

	encoder := device.CreateCommandEncoder(wgpu.CommandEncoderDescriptor{})

	for _, ov := range g.SortedOperators() {
		if err := e.recordPass(device, encoder, ov, g); err != nil {
			return err
		}
	}

	for _, name := range readbackTargets {
		encoder.CopyBufferToBuffer(e.storageBufs[name], 0, e.stagingBufs[name], 0, e.stagingBufs[name].Size())
	}

	queue.Submit([]wgpu.CommandBuffer{encoder.Finish()})
	device.Poll(wgpu.MaintainWait)

	// Request-all-then-await-all ordering is required: awaiting one
	// mapping before requesting the others would deadlock, since the
	// device is not polled again until every request is in flight.
	completions := make(map[string]<-chan error, len(readbackTargets))
	for _, name := range readbackTargets {
		completions[name] = e.stagingBufs[name].MapAsync(wgpu.MapModeRead, 0, e.stagingBufs[name].Size())
	}
	device.Poll(wgpu.MaintainWait)

	for _, name := range readbackTargets {
		if err := <-completions[name]; err != nil {
			return &gerr.Error{Msg: fmt.Sprintf("mapping %q: %s", name, err.Error())}
		}
		t, _ := g.Tensor(name)
		data := e.stagingBufs[name].GetMappedRange(0, e.stagingBufs[name].Size())
		decoded := decodeTensor(t, data)
		e.stagingBufs[name].Unmap()
		g.SetOutputTensor(name, decoded)
	}

	return nil
}

func extraOptionalOutputs(g ExecGraph) []string {
	type optionalOutputsGraph interface {
		OptionalOutputs() []string
	}
	if og, ok := g.(optionalOutputsGraph); ok {
		return og.OptionalOutputs()
	}
	return nil
}

func (e *Executor) acquireDevice(ctx context.Context) (wgpu.Device, wgpu.Queue, error) {
	instance := wgpu.NewInstance()
	adapter, err := instance.RequestAdapter(ctx, wgpu.RequestAdapterOptions{})
	if err != nil {
		return wgpu.Device{}, wgpu.Queue{}, &gerr.Error{Msg: "gpu adapter request failed: " + err.Error()}
	}
	features := adapter.Features()
	device, queue, err := adapter.RequestDevice(ctx, wgpu.DeviceDescriptor{
		Features: features & wgpu.FeatureTimestampQuery,
		Limits: wgpu.Limits{
			MaxStorageBufferBindingSize: maxStorageBufferBindingSize,
		},
	})
	if err != nil {
		return wgpu.Device{}, wgpu.Queue{}, &gerr.Error{Msg: "gpu device request failed: " + err.Error()}
	}
	return device, queue, nil
}

func (e *Executor) allocateStorageBuffers(g ExecGraph) error {
	for _, name := range g.TensorNames() {
		t, _ := g.Tensor(name)
		buf := e.device.CreateBufferInit(wgpu.BufferInitDescriptor{
			Label:    name + ".storage",
			Contents: tensorBytes(t),
			Usage:    wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		})
		e.storageBufs[name] = buf
	}
	return nil
}

func (e *Executor) allocateStagingBuffers(g ExecGraph, names []string) error {
	for _, name := range names {
		t, ok := g.Tensor(name)
		if !ok {
			return &gerr.TensorNotFound{Name: name}
		}
		buf := e.device.CreateBuffer(wgpu.BufferDescriptor{
			Label:            name + ".staging",
			Size:             uint64(t.ByteSize()),
			Usage:            wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		e.stagingBufs[name] = buf
	}
	return nil
}

func (e *Executor) recordPass(device wgpu.Device, encoder wgpu.CommandEncoder, ov OperatorView, g ExecGraph) error {
	opView := op.OpView{Name: ov.Name, Inputs: ov.Inputs, Outputs: ov.Outputs, ExtraAttrs: ov.Extra}
	tmplCtx, err := op.Compile(ov.Kind, ov.Attrs, opView, g)
	if err != nil {
		return err
	}
	wg, err := op.WorkgroupSize(ov.Kind, ov.Attrs, opView, g)
	if err != nil {
		return err
	}
	source, err := e.engine.Render(ov.Kind.String(), tmplCtx)
	if err != nil {
		return err
	}

	module := device.CreateShaderModule(wgpu.ShaderModuleDescriptor{Source: wgpu.ShaderSourceGLSL(source)})
	pipeline := device.CreateComputePipeline(wgpu.ComputePipelineDescriptor{
		Module:     module,
		EntryPoint: "main",
	})

	var entries []wgpu.BindGroupEntry
	binding := uint32(0)
	for _, in := range ov.Inputs {
		entries = append(entries, wgpu.BindGroupEntry{Binding: binding, Buffer: e.storageBufs[in]})
		binding++
	}
	for _, out := range ov.Outputs {
		entries = append(entries, wgpu.BindGroupEntry{Binding: binding, Buffer: e.storageBufs[out]})
		binding++
	}
	bindGroup := device.CreateBindGroup(wgpu.BindGroupDescriptor{
		Layout:  pipeline.GetBindGroupLayout(0),
		Entries: entries,
	})

	pass := encoder.BeginComputePass(wgpu.ComputePassDescriptor{})
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.InsertDebugMarker(ov.Name)
	pass.DispatchWorkgroups(wg[0], wg[1], wg[2])
	pass.End()
	return nil
}

func tensorBytes(t tensor.Tensor) []byte {
	n := t.ByteSize()
	buf := make([]byte, n)
	switch t.Type {
	case tensor.F32:
		for i, v := range t.F32Vals {
			putF32(buf[i*4:], v)
		}
	case tensor.F64:
		for i, v := range t.F64Vals {
			putF64(buf[i*8:], v)
		}
	case tensor.I64:
		for i, v := range t.I64Vals {
			putI64(buf[i*8:], v)
		}
	}
	return buf
}

func decodeTensor(t tensor.Tensor, data []byte) tensor.Tensor {
	n := int(tensor.NumElements(t.Shape))
	out := t
	switch t.Type {
	case tensor.F32:
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = getF32(data[i*4:])
		}
		out.F32Vals = vals
	case tensor.F64:
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = getF64(data[i*8:])
		}
		out.F64Vals = vals
	case tensor.I64:
		vals := make([]int64, n)
		for i := range vals {
			vals[i] = getI64(data[i*8:])
		}
		out.I64Vals = vals
	}
	return out
}
