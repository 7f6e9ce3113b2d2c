package gates

import (
	"fmt"
	"slices"

	"github.com/sarchlab/qlower/circuit"
)

// Set maps gate names to constructors.
type Set struct {
	// name of the gate set.
	name string
	// map from gate name to the constructor of the gate.
	nameToCtor map[string]Constructor
}

// NewSet creates an empty gate set.
func NewSet(name string) *Set {
	return &Set{
		name:       name,
		nameToCtor: make(map[string]Constructor),
	}
}

// Name returns the name of the set.
func (s *Set) Name() string {
	return s.name
}

// Register adds a constructor under its own name.
func (s *Set) Register(c Constructor) {
	s.nameToCtor[c.Name] = c
}

// RegisterAlias makes alias resolve to the constructor registered as name.
func (s *Set) RegisterAlias(alias, name string) {
	c, ok := s.nameToCtor[name]
	if !ok {
		panic(fmt.Sprintf("gate %s is not registered in %s", name, s.name))
	}
	s.nameToCtor[alias] = c
}

// Lookup finds the constructor for a gate name.
func (s *Set) Lookup(name string) (Constructor, error) {
	c, ok := s.nameToCtor[name]
	if !ok {
		return Constructor{}, fmt.Errorf("%w: unknown gate %q in %s",
			circuit.ErrLookup, name, s.name)
	}
	return c, nil
}

// Contains tells whether the name is in the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.nameToCtor[name]
	return ok
}

// Names returns all registered names, aliases included, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.nameToCtor))
	for name := range s.nameToCtor {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
