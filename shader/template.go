// Package shader implements the text-templating layer that turns a
// per-operator-kind template plus a variable context into concrete
// GLSL compute shader source. Base snippets for elementwise unary and
// binary patterns are always available to every per-kind template via
// Go's text/template {{template "name" .}} inclusion, mirroring the
// include/extend semantics the component design calls for.
package shader

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/ariaghora/gosonnx/gerr"
)

//go:embed templates/*.glsl
var embeddedTemplates embed.FS

const (
	baseUnaryTemplate  = "_unary_elementwise"
	baseBinaryTemplate = "_binary_elementwise"
)

// Engine owns the parsed template set. It is built once per process
// from the embedded template directory; the directory is immutable
// data baked into the binary at build time.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses every embedded *.glsl template into one shared
// *template.Template namespace, named by file name, so per-kind
// templates can {{template "_binary_elementwise.glsl" .}} the shared
// bases.
func NewEngine() (*Engine, error) {
	t, err := template.ParseFS(embeddedTemplates, "templates/*.glsl")
	if err != nil {
		return nil, &gerr.ShaderCompileError{Msg: err.Error()}
	}
	return &Engine{tmpl: t}, nil
}

// Render materializes the named per-kind template (the operator kind's
// String() form) against ctx. A missing template or an execution error
// is a fatal ShaderCompileError carrying the underlying message.
func (e *Engine) Render(kindName string, ctx map[string]any) (string, error) {
	name := kindName + ".glsl"
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", &gerr.ShaderCompileError{
			Msg: fmt.Sprintf("rendering %s: %s", name, err.Error()),
		}
	}
	return buf.String(), nil
}
