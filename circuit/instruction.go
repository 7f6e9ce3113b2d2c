package circuit

import (
	"fmt"
	"math/bits"
	"slices"
)

// Operator is the operation applied by an instruction. Gates, explicit
// unitaries and noise channels all implement it.
type Operator interface {
	Name() string
	// QubitCount returns the number of qubits the operator acts on, or 0 when
	// the operator does not fix it.
	QubitCount() int
}

// Cloner is implemented by operators that hold mutable data. Appending an
// instruction stores a clone of such an operator.
type Cloner interface {
	Clone() Operator
}

// CloneMatrix returns a deep copy of m.
func CloneMatrix(m [][]complex128) [][]complex128 {
	if m == nil {
		return nil
	}

	out := make([][]complex128, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

// Unitary wraps an explicit matrix.
type Unitary struct {
	Matrix [][]complex128
}

// Clone returns a unitary holding a copy of the matrix.
func (u Unitary) Clone() Operator {
	return Unitary{Matrix: CloneMatrix(u.Matrix)}
}

// Name returns "unitary".
func (u Unitary) Name() string {
	return "unitary"
}

// QubitCount is derived from the matrix dimension. A dimension that is not a
// power of two yields 0.
func (u Unitary) QubitCount() int {
	dim := len(u.Matrix)
	if dim == 0 || dim&(dim-1) != 0 {
		return 0
	}
	return bits.TrailingZeros(uint(dim))
}

// Instruction is one applied operation.
type Instruction struct {
	Operator     Operator
	Target       []int
	Control      []int
	ControlState []int
	Power        float64
}

// Validate checks the structural invariants of the instruction.
func (i Instruction) Validate() error {
	if i.Operator == nil {
		return fmt.Errorf("%w: instruction has no operator", ErrInvariantViolation)
	}

	if len(i.Control) != len(i.ControlState) {
		return fmt.Errorf("%w: %d control qubits but %d control-state bits",
			ErrInvariantViolation, len(i.Control), len(i.ControlState))
	}

	for idx, b := range i.ControlState {
		if b != 0 && b != 1 {
			return fmt.Errorf("%w: control-state bit %d is %d, want 0 or 1",
				ErrInvariantViolation, idx, b)
		}
	}

	seen := make(map[int]bool, len(i.Target)+len(i.Control))
	for _, q := range i.Control {
		if q < 0 {
			return fmt.Errorf("%w: negative control qubit %d", ErrInvariantViolation, q)
		}
		seen[q] = true
	}

	for _, q := range i.Target {
		if q < 0 {
			return fmt.Errorf("%w: negative target qubit %d", ErrInvariantViolation, q)
		}
		if seen[q] {
			return fmt.Errorf("%w: qubit %d is both control and target",
				ErrInvariantViolation, q)
		}
	}

	return nil
}

func (i Instruction) clone() Instruction {
	i.Target = slices.Clone(i.Target)
	i.Control = slices.Clone(i.Control)
	i.ControlState = slices.Clone(i.ControlState)
	if c, ok := i.Operator.(Cloner); ok {
		i.Operator = c.Clone()
	}
	return i
}

func (i Instruction) String() string {
	if len(i.Control) == 0 {
		return fmt.Sprintf("%s%v^%g", i.Operator.Name(), i.Target, i.Power)
	}
	return fmt.Sprintf("%s%v ctrl%v state%v ^%g",
		i.Operator.Name(), i.Target, i.Control, i.ControlState, i.Power)
}
