package noise

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/sarchlab/qlower/circuit"
)

// Default returns a table with the standard channels.
func Default() *Table {
	t := NewTable()

	for _, kind := range []string{
		"bit_flip", "phase_flip", "depolarizing", "amplitude_damping", "phase_damping",
	} {
		t.Register(kind, probabilistic(kind, 1, 1))
	}

	t.Register("two_qubit_depolarizing", probabilistic("two_qubit_depolarizing", 2, 1))
	t.Register("two_qubit_dephasing", probabilistic("two_qubit_dephasing", 2, 1))
	t.Register("generalized_amplitude_damping",
		probabilistic("generalized_amplitude_damping", 1, 2))
	t.Register("pauli_channel", probabilistic("pauli_channel", 1, 3))
	t.Register("kraus", kraus)

	return t
}

func probabilistic(kind string, qubits, params int) TranslateFunc {
	return func(ch Channel) ([]circuit.Instruction, error) {
		if len(ch.Probabilities) != params {
			return nil, fmt.Errorf("%w: %s takes %d probabilities, got %d",
				circuit.ErrInvariantViolation, kind, params, len(ch.Probabilities))
		}

		if len(ch.Targets) != qubits {
			return nil, fmt.Errorf("%w: %s acts on %d qubits, got %d",
				circuit.ErrInvariantViolation, kind, qubits, len(ch.Targets))
		}

		op := Operator{
			kind:          kind,
			qubits:        qubits,
			probabilities: slices.Clone(ch.Probabilities),
		}

		return []circuit.Instruction{{
			Operator: op,
			Target:   slices.Clone(ch.Targets),
			Power:    1,
		}}, nil
	}
}

func kraus(ch Channel) ([]circuit.Instruction, error) {
	if len(ch.Matrices) == 0 {
		return nil, fmt.Errorf("%w: kraus channel has no operators",
			circuit.ErrInvariantViolation)
	}

	qubits := 0
	if dim := len(ch.Matrices[0]); dim > 0 && dim&(dim-1) == 0 {
		qubits = bits.TrailingZeros(uint(dim))
	}

	op := Operator{
		kind:     "kraus",
		qubits:   qubits,
		matrices: cloneKraus(ch.Matrices),
	}

	return []circuit.Instruction{{
		Operator: op,
		Target:   slices.Clone(ch.Targets),
		Power:    1,
	}}, nil
}

func cloneKraus(ops [][][]complex128) [][][]complex128 {
	if ops == nil {
		return nil
	}

	out := make([][][]complex128, len(ops))
	for i, m := range ops {
		out[i] = circuit.CloneMatrix(m)
	}
	return out
}
