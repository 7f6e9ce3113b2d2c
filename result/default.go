package result

import (
	"fmt"
	"slices"

	"github.com/sarchlab/qlower/circuit"
)

var observableFactors = map[string]bool{
	"x": true, "y": true, "z": true, "h": true, "i": true,
}

// Default returns a table with the standard result types.
func Default() *Table {
	t := NewTable()

	for _, typ := range []string{"expectation", "sample", "variance"} {
		t.Register(typ, observableResult(typ))
	}

	for _, typ := range []string{"probability", "density_matrix"} {
		t.Register(typ, targetResult(typ))
	}

	t.Register("state_vector", stateVector)
	t.Register("amplitude", amplitude)

	return t
}

func observableResult(typ string) TranslateFunc {
	return func(d Descriptor) (circuit.ResultType, error) {
		if len(d.Observable) == 0 {
			return circuit.ResultType{}, fmt.Errorf("%w: %s requires an observable",
				circuit.ErrInvariantViolation, typ)
		}

		for _, f := range d.Observable {
			if !observableFactors[f] {
				return circuit.ResultType{}, fmt.Errorf("%w: unknown observable factor %q",
					circuit.ErrLookup, f)
			}
		}

		if len(d.Targets) > 0 && len(d.Targets) != len(d.Observable) {
			return circuit.ResultType{}, fmt.Errorf(
				"%w: observable has %d factors but %d targets",
				circuit.ErrInvariantViolation, len(d.Observable), len(d.Targets))
		}

		return circuit.ResultType{
			Kind:       typ,
			Targets:    slices.Clone(d.Targets),
			Observable: slices.Clone(d.Observable),
		}, nil
	}
}

func targetResult(typ string) TranslateFunc {
	return func(d Descriptor) (circuit.ResultType, error) {
		return circuit.ResultType{
			Kind:    typ,
			Targets: slices.Clone(d.Targets),
		}, nil
	}
}

func stateVector(d Descriptor) (circuit.ResultType, error) {
	if len(d.Targets) > 0 || len(d.Observable) > 0 {
		return circuit.ResultType{}, fmt.Errorf("%w: state_vector takes no operands",
			circuit.ErrInvariantViolation)
	}
	return circuit.ResultType{Kind: "state_vector"}, nil
}

func amplitude(d Descriptor) (circuit.ResultType, error) {
	if len(d.States) == 0 {
		return circuit.ResultType{}, fmt.Errorf("%w: amplitude requires states",
			circuit.ErrInvariantViolation)
	}

	width := len(d.States[0])
	for _, s := range d.States {
		if len(s) == 0 || len(s) != width {
			return circuit.ResultType{}, fmt.Errorf(
				"%w: amplitude states must be non-empty and of equal length, got %q",
				circuit.ErrInvariantViolation, s)
		}
		for _, r := range s {
			if r != '0' && r != '1' {
				return circuit.ResultType{}, fmt.Errorf(
					"%w: amplitude state %q is not a bit string",
					circuit.ErrInvariantViolation, s)
			}
		}
	}

	return circuit.ResultType{
		Kind:   "amplitude",
		States: slices.Clone(d.States),
	}, nil
}
