// Package gates defines the table of built-in gates that gate lowering
// resolves names against.
package gates

import (
	"fmt"
	"slices"

	"github.com/sarchlab/qlower/circuit"
)

// Kind tags a constructor as taking angles or not.
type Kind int

const (
	// Fixed gates take no parameters.
	Fixed Kind = iota
	// Parametric gates take one or more angles.
	Parametric
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Parametric:
		return "parametric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gate is a built-in gate operator.
type Gate struct {
	name   string
	qubits int
	angles []float64
}

// Name returns the canonical gate name.
func (g Gate) Name() string {
	return g.name
}

// QubitCount returns the gate arity.
func (g Gate) QubitCount() int {
	return g.qubits
}

// Parameters returns the angles the gate was built with.
func (g Gate) Parameters() []float64 {
	return slices.Clone(g.angles)
}

// Constructor builds gates of one type.
type Constructor struct {
	Kind   Kind
	Name   string
	Qubits int
	Params int
}

// Build creates the gate. The parameters are kept as given.
func (c Constructor) Build(params []float64) (circuit.Operator, error) {
	if len(params) != c.Params {
		return nil, fmt.Errorf("%w: gate %s takes %d parameters, got %d",
			circuit.ErrInvariantViolation, c.Name, c.Params, len(params))
	}

	return Gate{
		name:   c.Name,
		qubits: c.Qubits,
		angles: slices.Clone(params),
	}, nil
}

func fixed(name string, qubits int) Constructor {
	return Constructor{Kind: Fixed, Name: name, Qubits: qubits}
}

func parametric(name string, qubits, params int) Constructor {
	return Constructor{Kind: Parametric, Name: name, Qubits: qubits, Params: params}
}
