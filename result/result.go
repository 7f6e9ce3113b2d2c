// Package result translates result requests into circuit result types.
package result

import (
	"fmt"

	"github.com/sarchlab/qlower/circuit"
)

// Descriptor is a result request as the interpreter reports it.
type Descriptor struct {
	Type       string
	Targets    []int
	Observable []string
	States     []string
}

// Translator turns a descriptor into a result type.
type Translator interface {
	Translate(d Descriptor) (circuit.ResultType, error)
}

// TranslateFunc translates one type of result.
type TranslateFunc func(d Descriptor) (circuit.ResultType, error)

// Table dispatches descriptors by type.
type Table struct {
	typeToFunc map[string]TranslateFunc
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{typeToFunc: make(map[string]TranslateFunc)}
}

// Register binds a result type to its translation.
func (t *Table) Register(typ string, fn TranslateFunc) {
	t.typeToFunc[typ] = fn
}

// Translate looks up the descriptor type and runs its translation.
func (t *Table) Translate(d Descriptor) (circuit.ResultType, error) {
	fn, ok := t.typeToFunc[d.Type]
	if !ok {
		return circuit.ResultType{}, fmt.Errorf("%w: unknown result type %q",
			circuit.ErrLookup, d.Type)
	}
	return fn(d)
}
