// Package attr provides typed lookups over a parsed ONNX node's
// attribute list, used by the importer while building per-kind
// attribute records.
package attr

import (
	"github.com/ariaghora/gosonnx/gerr"
	"github.com/ariaghora/gosonnx/onnxproto"
)

// List is the attribute set of a single ONNX node, indexed by name for
// repeated lookups during importer construction.
type List struct {
	byName map[string]*onnxproto.AttributeProto
}

// NewList indexes a NodeProto's attribute slice by name. Later entries
// with a duplicate name overwrite earlier ones.
func NewList(attrs []*onnxproto.AttributeProto) List {
	m := make(map[string]*onnxproto.AttributeProto, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a
	}
	return List{byName: m}
}

// Float returns a required float attribute.
func (l List) Float(name string) (float32, error) {
	a, ok := l.byName[name]
	if !ok {
		return 0, &gerr.AttributeNotFound{Name: name}
	}
	return a.F, nil
}

// FloatOr returns a float attribute, or a fallback if it is absent.
func (l List) FloatOr(name string, fallback float32) float32 {
	if a, ok := l.byName[name]; ok {
		return a.F
	}
	return fallback
}

// Int returns a required integer attribute.
func (l List) Int(name string) (int64, error) {
	a, ok := l.byName[name]
	if !ok {
		return 0, &gerr.AttributeNotFound{Name: name}
	}
	return a.I, nil
}

// IntOr returns an integer attribute, or a fallback if it is absent.
func (l List) IntOr(name string, fallback int64) int64 {
	if a, ok := l.byName[name]; ok {
		return a.I
	}
	return fallback
}

// Ints returns a required repeated-integer attribute (e.g. kernel_shape).
func (l List) Ints(name string) ([]int64, error) {
	a, ok := l.byName[name]
	if !ok {
		return nil, &gerr.AttributeNotFound{Name: name}
	}
	return a.Ints, nil
}

// IntsOr returns a repeated-integer attribute, or a fallback if absent.
func (l List) IntsOr(name string, fallback []int64) []int64 {
	if a, ok := l.byName[name]; ok {
		return a.Ints
	}
	return fallback
}

// String returns a required string attribute.
func (l List) String(name string) (string, error) {
	a, ok := l.byName[name]
	if !ok {
		return "", &gerr.AttributeNotFound{Name: name}
	}
	return string(a.S), nil
}

// StringOr returns a string attribute, or a fallback if absent.
func (l List) StringOr(name string, fallback string) string {
	if a, ok := l.byName[name]; ok {
		return string(a.S)
	}
	return fallback
}

// Has reports whether the named attribute is present at all.
func (l List) Has(name string) bool {
	_, ok := l.byName[name]
	return ok
}
