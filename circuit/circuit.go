// Package circuit holds the in-memory circuit that lowered instructions and
// result declarations accumulate into.
package circuit

import (
	"slices"
)

// Circuit is an append-only list of instructions and result types.
type Circuit struct {
	instructions []Instruction
	resultTypes  []ResultType
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// AddInstruction validates all the given instructions and appends them in
// order. If any of them is invalid, none is appended.
func (c *Circuit) AddInstruction(insts ...Instruction) error {
	for _, inst := range insts {
		if err := inst.Validate(); err != nil {
			return err
		}
	}

	for _, inst := range insts {
		c.instructions = append(c.instructions, inst.clone())
	}

	return nil
}

// AddResultType appends a result declaration. Duplicates are kept.
func (c *Circuit) AddResultType(rt ResultType) {
	c.resultTypes = append(c.resultTypes, rt.clone())
}

// Instructions returns the instructions in append order.
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	for i, inst := range c.instructions {
		out[i] = inst.clone()
	}
	return out
}

// ResultTypes returns the result declarations in append order.
func (c *Circuit) ResultTypes() []ResultType {
	out := make([]ResultType, len(c.resultTypes))
	for i, rt := range c.resultTypes {
		out[i] = rt.clone()
	}
	return out
}

// NumInstructions returns the number of appended instructions.
func (c *Circuit) NumInstructions() int {
	return len(c.instructions)
}

// NumResultTypes returns the number of appended result declarations.
func (c *Circuit) NumResultTypes() int {
	return len(c.resultTypes)
}

// Qubits returns the sorted set of qubits referenced by the circuit.
func (c *Circuit) Qubits() []int {
	set := make(map[int]struct{})
	for _, inst := range c.instructions {
		for _, q := range inst.Control {
			set[q] = struct{}{}
		}
		for _, q := range inst.Target {
			set[q] = struct{}{}
		}
	}
	for _, rt := range c.resultTypes {
		for _, q := range rt.Targets {
			set[q] = struct{}{}
		}
	}

	qubits := make([]int, 0, len(set))
	for q := range set {
		qubits = append(qubits, q)
	}
	slices.Sort(qubits)

	return qubits
}

// QubitCount returns the number of distinct qubits referenced.
func (c *Circuit) QubitCount() int {
	return len(c.Qubits())
}
