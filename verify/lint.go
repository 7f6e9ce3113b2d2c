package verify

import (
	"fmt"
	"math"

	"github.com/sarchlab/qlower/circuit"
	"github.com/sarchlab/qlower/noise"
)

// RunLint performs static checks on a lowered circuit.
// Returns a list of issues found, or empty list if no issues.
func RunLint(c *circuit.Circuit, dev Device) []Issue {
	var issues []Issue

	touched := make(map[int]bool)

	for idx, inst := range c.Instructions() {
		for _, q := range inst.Control {
			touched[q] = true
			issues = append(issues, checkQubitRange(dev, q, idx, -1)...)
		}
		for _, q := range inst.Target {
			touched[q] = true
			issues = append(issues, checkQubitRange(dev, q, idx, -1)...)
		}

		// STRUCT: operator arity
		if n := inst.Operator.QubitCount(); n > 0 && n != len(inst.Target) {
			issues = append(issues, Issue{
				Type:        IssueStruct,
				Instruction: idx,
				Result:      -1,
				Qubit:       -1,
				Message: fmt.Sprintf("%s acts on %d qubits but has %d targets",
					inst.Operator.Name(), n, len(inst.Target)),
				Details: map[string]any{
					"operator": inst.Operator.Name(),
					"arity":    n,
					"targets":  inst.Target,
				},
			})
		}

		issues = append(issues, checkPower(inst, idx)...)
	}

	for idx, rt := range c.ResultTypes() {
		for _, q := range rt.Targets {
			issues = append(issues, checkQubitRange(dev, q, -1, idx)...)

			// RESULT: measuring an idle qubit is legal but usually a mistake
			if !touched[q] {
				issues = append(issues, Issue{
					Type:        IssueResult,
					Instruction: -1,
					Result:      idx,
					Qubit:       q,
					Message: fmt.Sprintf("%s measures qubit %d which no instruction acts on",
						rt.Kind, q),
				})
			}
		}
	}

	return issues
}

func checkQubitRange(dev Device, q, instIdx, resultIdx int) []Issue {
	if dev.Qubits <= 0 || q < dev.Qubits {
		return nil
	}

	return []Issue{{
		Type:        IssueStruct,
		Instruction: instIdx,
		Result:      resultIdx,
		Qubit:       q,
		Message: fmt.Sprintf("qubit %d out of range for %d-qubit device %s",
			q, dev.Qubits, dev.Name),
		Details: map[string]any{"device": dev.Name, "qubits": dev.Qubits},
	}}
}

func checkPower(inst circuit.Instruction, idx int) []Issue {
	switch inst.Operator.(type) {
	case noise.Operator:
		if inst.Power != 1 {
			return []Issue{{
				Type:        IssuePower,
				Instruction: idx,
				Result:      -1,
				Qubit:       -1,
				Message: fmt.Sprintf("noise channel %s cannot be raised to power %g",
					inst.Operator.Name(), inst.Power),
				Details: map[string]any{"power": inst.Power},
			}}
		}
	case circuit.Unitary:
		if inst.Power != math.Trunc(inst.Power) {
			return []Issue{{
				Type:        IssuePower,
				Instruction: idx,
				Result:      -1,
				Qubit:       -1,
				Message:     fmt.Sprintf("unitary raised to non-integer power %g", inst.Power),
				Details:     map[string]any{"power": inst.Power},
			}}
		}
	}

	return nil
}
