// Package replay plays recorded interpreter events through a lowering
// context.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/qlower/circuit"
)

// Event kinds a trace may contain.
const (
	KindGate    = "gate"
	KindUnitary = "unitary"
	KindNoise   = "noise"
	KindResult  = "result"
	KindPhase   = "phase"
)

// Trace is a recorded sequence of interpreter events.
type Trace struct {
	Name string `yaml:"name"`
	// UserDefined lists the names the program defines itself. They shadow
	// built-in gates of the same name.
	UserDefined []string `yaml:"user_defined"`
	Events      []Event  `yaml:"events"`
}

// Event is one interpreter event. Which fields are used depends on Kind.
type Event struct {
	Kind string `yaml:"kind"`

	// gate
	Name   string    `yaml:"name,omitempty"`
	Qubits []int     `yaml:"qubits,omitempty"`
	Ctrl   []int     `yaml:"ctrl,omitempty"`
	Params []float64 `yaml:"params,omitempty"`
	Power  *float64  `yaml:"power,omitempty"`

	// unitary
	Matrix [][]Complex `yaml:"matrix,omitempty"`

	// noise
	Channel       string        `yaml:"channel,omitempty"`
	Probabilities []float64     `yaml:"probabilities,omitempty"`
	Kraus         [][][]Complex `yaml:"kraus,omitempty"`

	// result
	Type       string   `yaml:"type,omitempty"`
	Observable []string `yaml:"observable,omitempty"`
	States     []string `yaml:"states,omitempty"`

	// phase
	Phase float64 `yaml:"phase,omitempty"`
}

// Complex is a matrix entry, written either as a real scalar or as a
// [re, im] pair.
type Complex complex128

// UnmarshalYAML decodes a scalar or a one- or two-element sequence.
func (c *Complex) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var re float64
		if err := node.Decode(&re); err != nil {
			return err
		}
		*c = Complex(complex(re, 0))
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return err
		}
		switch len(parts) {
		case 1:
			*c = Complex(complex(parts[0], 0))
		case 2:
			*c = Complex(complex(parts[0], parts[1]))
		default:
			return fmt.Errorf("line %d: complex entry needs 1 or 2 numbers, got %d",
				node.Line, len(parts))
		}
		return nil
	default:
		return fmt.Errorf("line %d: complex entry must be a number or [re, im]", node.Line)
	}
}

// ParseTrace decodes and checks a YAML trace.
func ParseTrace(data []byte) (*Trace, error) {
	t := &Trace{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}

	for i, e := range t.Events {
		switch e.Kind {
		case KindGate, KindUnitary, KindNoise, KindResult, KindPhase:
		default:
			return nil, fmt.Errorf("%w: event %d has unknown kind %q",
				circuit.ErrLookup, i, e.Kind)
		}
	}

	return t, nil
}

// LoadTraceFile reads and parses a trace file.
func LoadTraceFile(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	t, err := ParseTrace(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if t.Name == "" {
		t.Name = path
	}

	return t, nil
}

func toMatrix(rows [][]Complex) [][]complex128 {
	m := make([][]complex128, len(rows))
	for i, row := range rows {
		m[i] = make([]complex128, len(row))
		for j, v := range row {
			m[i][j] = complex128(v)
		}
	}
	return m
}
