package lower

import (
	"github.com/sarchlab/qlower/circuit"
	"github.com/sarchlab/qlower/gates"
	"github.com/sarchlab/qlower/noise"
	"github.com/sarchlab/qlower/result"
)

// Builder can create new lowering contexts.
type Builder struct {
	gateSet  *gates.Set
	registry DefinitionRegistry
	noise    noise.Translator
	results  result.Translator
}

// NewBuilder creates a builder with the default tables.
func NewBuilder() Builder {
	return Builder{}
}

// WithGateSet sets the built-in gate table.
func (b Builder) WithGateSet(s *gates.Set) Builder {
	b.gateSet = s
	return b
}

// WithRegistry sets the registry of user-defined names.
func (b Builder) WithRegistry(r DefinitionRegistry) Builder {
	b.registry = r
	return b
}

// WithNoiseTranslator sets the noise translation table.
func (b Builder) WithNoiseTranslator(t noise.Translator) Builder {
	b.noise = t
	return b
}

// WithResultTranslator sets the result translation table.
func (b Builder) WithResultTranslator(t result.Translator) Builder {
	b.results = t
	return b
}

// Build creates a context with an empty circuit.
func (b Builder) Build(name string) *Context {
	c := &Context{
		name:     name,
		circuit:  circuit.New(),
		gateSet:  b.gateSet,
		registry: b.registry,
		noise:    b.noise,
		results:  b.results,
	}

	if c.gateSet == nil {
		c.gateSet = gates.Default()
	}

	if c.registry == nil {
		c.registry = NewRegistry()
	}

	if c.noise == nil {
		c.noise = noise.Default()
	}

	if c.results == nil {
		c.results = result.Default()
	}

	return c
}
