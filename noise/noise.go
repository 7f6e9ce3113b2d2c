// Package noise translates noise-channel events into circuit instructions.
package noise

import (
	"fmt"
	"slices"

	"github.com/sarchlab/qlower/circuit"
)

// Channel is a noise event as the interpreter reports it.
type Channel struct {
	Kind          string
	Targets       []int
	Probabilities []float64
	// Matrices holds the Kraus operators of a "kraus" channel.
	Matrices [][][]complex128
}

// Translator turns a channel into instructions.
type Translator interface {
	Translate(ch Channel) ([]circuit.Instruction, error)
}

// TranslateFunc translates one kind of channel.
type TranslateFunc func(ch Channel) ([]circuit.Instruction, error)

// Operator is a noise channel applied as an instruction.
type Operator struct {
	kind          string
	qubits        int
	probabilities []float64
	matrices      [][][]complex128
}

// Name returns the channel kind.
func (o Operator) Name() string {
	return o.kind
}

// QubitCount returns the number of qubits the channel acts on.
func (o Operator) QubitCount() int {
	return o.qubits
}

// Parameters returns the channel probabilities.
func (o Operator) Parameters() []float64 {
	return slices.Clone(o.probabilities)
}

// Matrices returns the Kraus operators, if the channel was given explicitly.
func (o Operator) Matrices() [][][]complex128 {
	return cloneKraus(o.matrices)
}

// Clone returns an operator holding copies of the probabilities and the
// Kraus operators.
func (o Operator) Clone() circuit.Operator {
	o.probabilities = slices.Clone(o.probabilities)
	o.matrices = cloneKraus(o.matrices)
	return o
}

// Table dispatches channels by kind.
type Table struct {
	kindToFunc map[string]TranslateFunc
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{kindToFunc: make(map[string]TranslateFunc)}
}

// Register binds a kind to its translation.
func (t *Table) Register(kind string, fn TranslateFunc) {
	t.kindToFunc[kind] = fn
}

// Translate looks up the channel kind and runs its translation.
func (t *Table) Translate(ch Channel) ([]circuit.Instruction, error) {
	fn, ok := t.kindToFunc[ch.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown noise channel %q", circuit.ErrLookup, ch.Kind)
	}
	return fn(ch)
}
