package replay

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/qlower/circuit"
	"github.com/sarchlab/qlower/gates"
	"github.com/sarchlab/qlower/lower"
	"github.com/sarchlab/qlower/noise"
	"github.com/sarchlab/qlower/result"
)

// eventInterval spaces consecutive trace events on the engine clock.
const eventInterval = sim.VTimeInSec(1e-9)

type traceEvent struct {
	*sim.EventBase
	index int
	event Event
}

// Builder can create replayers.
type Builder struct {
	engine          sim.Engine
	gateSet         *gates.Set
	noise           noise.Translator
	results         result.Translator
	skipUnsupported bool
}

// WithEngine sets the engine that dispatches the events.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithGateSet sets the built-in gate table.
func (b Builder) WithGateSet(s *gates.Set) Builder {
	b.gateSet = s
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

// WithSkipUnsupported makes the replayer skip events the context cannot
// lower instead of failing on them.
func (b Builder) WithSkipUnsupported(skip bool) Builder {
	b.skipUnsupported = skip
	return b
}

// Build creates a replayer for the trace.
func (b Builder) Build(t *Trace) *Replayer {
	registry := lower.NewRegistry()
	for _, name := range t.UserDefined {
		registry.Define(name)
	}

	r := &Replayer{
		engine:          b.engine,
		trace:           t,
		skipUnsupported: b.skipUnsupported,
	}

	if r.engine == nil {
		r.engine = sim.NewSerialEngine()
	}

	r.ctx = lower.NewBuilder().
		WithGateSet(b.gateSet).
		WithRegistry(registry).
		WithNoiseTranslator(b.noise).
		WithResultTranslator(b.results).
		Build(t.Name)

	return r
}

// Replayer plays a trace through a lowering context, acting as the
// interpreter that drives it.
type Replayer struct {
	engine          sim.Engine
	ctx             *lower.Context
	trace           *Trace
	skipUnsupported bool

	handled int
	skipped int
	err     error
}

// Context returns the lowering context the trace is played into.
func (r *Replayer) Context() *lower.Context {
	return r.ctx
}

// Handled returns the number of events lowered so far.
func (r *Replayer) Handled() int {
	return r.handled
}

// Skipped returns the number of unsupported events skipped.
func (r *Replayer) Skipped() int {
	return r.skipped
}

// Run schedules every event and runs the engine. It returns the first
// lowering failure; the events after it are not lowered.
func (r *Replayer) Run() error {
	for i, e := range r.trace.Events {
		evt := &traceEvent{
			EventBase: sim.NewEventBase(sim.VTimeInSec(i)*eventInterval, r),
			index:     i,
			event:     e,
		}
		r.engine.Schedule(evt)
	}

	if err := r.engine.Run(); err != nil {
		return err
	}

	return r.err
}

// Handle lowers one trace event.
func (r *Replayer) Handle(e sim.Event) error {
	evt, ok := e.(*traceEvent)
	if !ok {
		return fmt.Errorf("replayer cannot handle event %T", e)
	}

	if r.err != nil {
		return nil
	}

	if err := r.lower(evt.event); err != nil {
		r.err = fmt.Errorf("event %d (%s): %w", evt.index, evt.event.Kind, err)
		slog.Warn("Replay stopped", "Trace", r.trace.Name, "Event", evt.index, "Error", err)
		return nil
	}

	return nil
}

func (r *Replayer) lower(e Event) error {
	if c, ok := capabilityOf(e.Kind); ok && !r.ctx.Supports(c) && r.skipUnsupported {
		r.skipped++
		slog.Warn("Skipping unsupported event", "Trace", r.trace.Name, "Kind", e.Kind)
		return nil
	}

	var err error
	switch e.Kind {
	case KindGate:
		err = r.lowerGate(e)
	case KindUnitary:
		err = r.ctx.LowerUnitary(toMatrix(e.Matrix), e.Qubits)
	case KindNoise:
		err = r.ctx.LowerNoise(noise.Channel{
			Kind:          e.Channel,
			Targets:       e.Qubits,
			Probabilities: e.Probabilities,
			Matrices:      toKraus(e.Kraus),
		})
	case KindResult:
		err = r.ctx.LowerResult(result.Descriptor{
			Type:       e.Type,
			Targets:    e.Qubits,
			Observable: e.Observable,
			States:     e.States,
		})
	case KindPhase:
		err = r.ctx.LowerPhase(e.Qubits, e.Phase)
	default:
		err = fmt.Errorf("%w: unknown event kind %q", circuit.ErrLookup, e.Kind)
	}

	if err != nil {
		return err
	}

	r.handled++
	return nil
}

func (r *Replayer) lowerGate(e Event) error {
	if !r.ctx.IsBuiltinGate(e.Name) {
		return fmt.Errorf("%w: %q is not a built-in gate in scope", circuit.ErrLookup, e.Name)
	}

	power := 1.0
	if e.Power != nil {
		power = *e.Power
	}

	return r.ctx.LowerGate(e.Name, e.Qubits, e.Ctrl, e.Params, power)
}

func capabilityOf(kind string) (lower.Capability, bool) {
	switch kind {
	case KindGate:
		return lower.CapabilityGate, true
	case KindUnitary:
		return lower.CapabilityUnitary, true
	case KindNoise:
		return lower.CapabilityNoise, true
	case KindResult:
		return lower.CapabilityResult, true
	case KindPhase:
		return lower.CapabilityPhase, true
	default:
		return 0, false
	}
}

func toKraus(ops [][][]Complex) [][][]complex128 {
	if len(ops) == 0 {
		return nil
	}

	out := make([][][]complex128, len(ops))
	for i, op := range ops {
		out[i] = toMatrix(op)
	}
	return out
}
