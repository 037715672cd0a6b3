// Command gosonnx loads a model graph and a JSON file of named input
// tensors, runs it on the GPU, and prints the requested output tensors.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ariaghora/gosonnx/gerr"
	"github.com/ariaghora/gosonnx/onnximport"
	"github.com/ariaghora/gosonnx/onnxproto"
	"github.com/ariaghora/gosonnx/tensor"
)

func main() {
	modelPath := flag.String("model", "", "path to a model graph file, JSON-encoded as an onnxproto.ModelProto")
	inputsPath := flag.String("inputs", "", "path to a JSON file of named input tensors {name: {shape, values}}")
	outputsFlag := flag.String("outputs", "", "comma-separated output tensor names to print (default: all graph outputs)")
	flag.Parse()

	if *modelPath == "" {
		log.Fatalf("gosonnx: -model is required")
	}

	g, err := onnximport.Load(*modelPath, decodeJSONModel)
	if err != nil {
		log.Fatalf("gosonnx: loading model: %v", err)
	}

	if *inputsPath != "" {
		if err := applyInputs(g, *inputsPath); err != nil {
			log.Fatalf("gosonnx: applying inputs: %v", err)
		}
	}

	ctx := context.Background()
	if err := g.Run(ctx); err != nil {
		log.Fatalf("gosonnx: run failed: %v", err)
	}

	var names []string
	if *outputsFlag != "" {
		names = strings.Split(*outputsFlag, ",")
	} else {
		names = g.TerminalOutputs()
	}
	for _, name := range names {
		out, ok := g.GetOutput(name)
		if !ok {
			log.Printf("gosonnx: no output named %q", name)
			continue
		}
		printTensor(name, out)
	}
}

// decodeJSONModel is the Decoder this CLI plugs into onnximport.Load: it
// treats -model as a JSON-encoded onnxproto.ModelProto rather than a
// real ONNX protobuf file, since decoding the binary wire format is an
// external collaborator's job, not this package's. A production
// deployment swaps this for a real protobuf-backed Decoder without
// touching onnximport or graph.
func decodeJSONModel(data []byte) (*onnxproto.ModelProto, error) {
	var m onnxproto.ModelProto
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &gerr.Error{Msg: fmt.Sprintf("decoding model json: %s", err.Error())}
	}
	return &m, nil
}

type namedTensor struct {
	Shape   []int64   `json:"shape"`
	Values  []float32 `json:"values,omitempty"`
	IntVals []int64   `json:"int_values,omitempty"`
}

func applyInputs(g interface{ SetTensor(string, tensor.Tensor) error }, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var named map[string]namedTensor
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}
	for name, nt := range named {
		var t tensor.Tensor
		var err error
		if nt.IntVals != nil {
			t, err = tensor.NewI64(nt.IntVals, nt.Shape)
		} else {
			t, err = tensor.NewF32(nt.Values, nt.Shape)
		}
		if err != nil {
			return err
		}
		if err := g.SetTensor(name, t); err != nil {
			return err
		}
	}
	return nil
}

func printTensor(name string, t tensor.Tensor) {
	switch t.Type {
	case tensor.F32:
		fmt.Printf("%s %v %v\n", name, t.Shape, t.F32Vals)
	case tensor.F64:
		fmt.Printf("%s %v %v\n", name, t.Shape, t.F64Vals)
	case tensor.I64:
		fmt.Printf("%s %v %v\n", name, t.Shape, t.I64Vals)
	}
}
