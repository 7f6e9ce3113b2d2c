// Package lower turns interpreter events into circuit instructions.
package lower

import (
	"fmt"
	"slices"

	"github.com/sarchlab/qlower/circuit"
	"github.com/sarchlab/qlower/gates"
	"github.com/sarchlab/qlower/noise"
	"github.com/sarchlab/qlower/result"
)

// Capability names an event kind a context may lower.
type Capability int

const (
	CapabilityGate Capability = iota
	CapabilityUnitary
	CapabilityNoise
	CapabilityResult
	CapabilityPhase
)

func (c Capability) String() string {
	switch c {
	case CapabilityGate:
		return "gate"
	case CapabilityUnitary:
		return "unitary"
	case CapabilityNoise:
		return "noise"
	case CapabilityResult:
		return "result"
	case CapabilityPhase:
		return "phase"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

// Context accumulates lowered events into a circuit. It is not safe for
// concurrent use.
type Context struct {
	name     string
	circuit  *circuit.Circuit
	gateSet  *gates.Set
	registry DefinitionRegistry
	noise    noise.Translator
	results  result.Translator
}

// Name returns the name the context was built with.
func (c *Context) Name() string {
	return c.name
}

// Circuit returns the circuit built so far.
func (c *Context) Circuit() *circuit.Circuit {
	return c.circuit
}

// Supports tells whether the context can lower the given event kind.
func (c *Context) Supports(capability Capability) bool {
	return capability != CapabilityPhase
}

// IsBuiltinGate tells whether name resolves to a built-in gate, that is, the
// gate table has it and the program has not redefined it.
func (c *Context) IsBuiltinGate(name string) bool {
	return c.gateSet.Contains(name) && !c.registry.IsUserDefined(name)
}

// LowerGate appends one gate instruction. The first len(ctrlState) qubits
// are the controls, the rest are the targets.
func (c *Context) LowerGate(
	name string,
	qubits []int,
	ctrlState []int,
	params []float64,
	power float64,
) error {
	if len(ctrlState) > len(qubits) {
		return fmt.Errorf("%w: gate %s has %d control-state bits but only %d qubits",
			circuit.ErrInvariantViolation, name, len(ctrlState), len(qubits))
	}

	ctor, err := c.gateSet.Lookup(name)
	if err != nil {
		return err
	}

	op, err := ctor.Build(params)
	if err != nil {
		return err
	}

	k := len(ctrlState)
	inst := circuit.Instruction{
		Operator:     op,
		Control:      slices.Clone(qubits[:k]),
		ControlState: slices.Clone(ctrlState),
		Target:       slices.Clone(qubits[k:]),
		Power:        power,
	}

	if err := c.circuit.AddInstruction(inst); err != nil {
		return fmt.Errorf("lowering gate %s: %w", name, err)
	}

	Trace("Gate",
		"Context", c.name,
		"Name", name,
		"Control", inst.Control,
		"ControlState", inst.ControlState,
		"Target", inst.Target,
		"Params", params,
		"Power", power,
	)

	return nil
}

// LowerUnitary appends an instruction applying the matrix to all the given
// qubits. The matrix is not checked.
func (c *Context) LowerUnitary(matrix [][]complex128, qubits []int) error {
	inst := circuit.Instruction{
		Operator: circuit.Unitary{Matrix: circuit.CloneMatrix(matrix)},
		Target:   slices.Clone(qubits),
		Power:    1,
	}

	if err := c.circuit.AddInstruction(inst); err != nil {
		return fmt.Errorf("lowering unitary: %w", err)
	}

	Trace("Unitary", "Context", c.name, "Target", inst.Target, "Dim", len(matrix))

	return nil
}

// LowerNoise appends the instructions the noise table produces for the
// channel, in the order it produces them.
func (c *Context) LowerNoise(ch noise.Channel) error {
	insts, err := c.noise.Translate(ch)
	if err != nil {
		return err
	}

	if err := c.circuit.AddInstruction(insts...); err != nil {
		return err
	}

	Trace("Noise",
		"Context", c.name,
		"Kind", ch.Kind,
		"Target", ch.Targets,
		"Instructions", len(insts),
	)

	return nil
}

// LowerResult appends the result type the result table produces.
func (c *Context) LowerResult(d result.Descriptor) error {
	rt, err := c.results.Translate(d)
	if err != nil {
		return err
	}

	c.circuit.AddResultType(rt)

	Trace("Result",
		"Context", c.name,
		"Kind", rt.Kind,
		"Target", rt.Targets,
		"Observable", rt.Observable,
	)

	return nil
}

// LowerPhase is not supported and always fails with
// circuit.ErrNotImplemented.
func (c *Context) LowerPhase(qubits []int, phase float64) error {
	return fmt.Errorf("%w: phase instruction on %v (phase %g)",
		circuit.ErrNotImplemented, qubits, phase)
}
