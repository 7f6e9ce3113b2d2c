package circuit

import "slices"

// ResultType is a requested measurement or observable.
type ResultType struct {
	Kind       string
	Targets    []int
	Observable []string
	States     []string
}

func (r ResultType) clone() ResultType {
	r.Targets = slices.Clone(r.Targets)
	r.Observable = slices.Clone(r.Observable)
	r.States = slices.Clone(r.States)
	return r
}
