package lower_test

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qlower/circuit"
	"github.com/sarchlab/qlower/gates"
	"github.com/sarchlab/qlower/lower"
	"github.com/sarchlab/qlower/noise"
	"github.com/sarchlab/qlower/result"
)

var _ = Describe("Context", func() {
	var (
		ctx *lower.Context
	)

	BeforeEach(func() {
		ctx = lower.NewBuilder().Build("ctx")
	})

	It("should start with an empty circuit", func() {
		Expect(ctx.Name()).To(Equal("ctx"))
		Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		Expect(ctx.Circuit().NumResultTypes()).To(Equal(0))
	})

	Context("when lowering gates", func() {
		It("should put the controls first and the targets last", func() {
			Expect(ctx.LowerGate("CX", []int{3, 1}, []int{1}, nil, 1.0)).To(Succeed())

			insts := ctx.Circuit().Instructions()
			Expect(insts).To(HaveLen(1))
			Expect(insts[0].Operator.Name()).To(Equal("cnot"))
			Expect(insts[0].Control).To(Equal([]int{3}))
			Expect(insts[0].ControlState).To(Equal([]int{1}))
			Expect(insts[0].Target).To(Equal([]int{1}))
			Expect(insts[0].Power).To(Equal(1.0))
		})

		DescribeTable("partitioning",
			func(qubits, ctrlState, wantControl, wantTarget []int) {
				Expect(ctx.LowerGate("x", qubits, ctrlState, nil, 1)).To(Succeed())

				inst := ctx.Circuit().Instructions()[0]
				Expect(inst.Control).To(HaveLen(len(ctrlState)))
				Expect(inst.ControlState).To(Equal(ctrlState))
				Expect(inst.Control).To(Equal(wantControl))
				Expect(inst.Target).To(Equal(wantTarget))
			},
			Entry("no controls", []int{5}, []int{}, []int{}, []int{5}),
			Entry("one control", []int{0, 2}, []int{0}, []int{0}, []int{2}),
			Entry("mixed control states", []int{4, 0, 3, 1}, []int{0, 1, 0}, []int{4, 0, 3}, []int{1}),
			Entry("all controls", []int{1, 2}, []int{1, 1}, []int{1, 2}, []int{}),
		)

		It("should forward parameters and power unchanged", func() {
			Expect(ctx.LowerGate("U", []int{0}, nil, []float64{0.25, -1.5, 3.0}, -0.5)).To(Succeed())

			inst := ctx.Circuit().Instructions()[0]
			Expect(inst.Operator.(gates.Gate).Parameters()).To(Equal([]float64{0.25, -1.5, 3.0}))
			Expect(inst.Power).To(Equal(-0.5))
		})

		It("should accept fractional powers on controlled gates", func() {
			Expect(ctx.LowerGate("rx", []int{1, 0}, []int{0}, []float64{0.3}, 0.75)).To(Succeed())

			inst := ctx.Circuit().Instructions()[0]
			Expect(inst.Power).To(Equal(0.75))
			Expect(inst.ControlState).To(Equal([]int{0}))
		})

		It("should fail on unknown names and append nothing", func() {
			err := ctx.LowerGate("frobnicate", []int{0}, nil, nil, 1)

			Expect(err).To(MatchError(circuit.ErrLookup))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should fail when there are more control-state bits than qubits", func() {
			err := ctx.LowerGate("x", []int{0}, []int{1, 1}, nil, 1)

			Expect(err).To(MatchError(circuit.ErrInvariantViolation))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should fail on a control-state bit that is not 0 or 1", func() {
			err := ctx.LowerGate("x", []int{0, 1}, []int{2}, nil, 1)

			Expect(err).To(MatchError(circuit.ErrInvariantViolation))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should fail when a qubit is both control and target", func() {
			err := ctx.LowerGate("x", []int{2, 2}, []int{1}, nil, 1)

			Expect(err).To(MatchError(circuit.ErrInvariantViolation))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should fail on a wrong parameter count", func() {
			err := ctx.LowerGate("rz", []int{0}, nil, nil, 1)

			Expect(err).To(MatchError(circuit.ErrInvariantViolation))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should not alias the caller's qubit list", func() {
			qubits := []int{0, 1}
			Expect(ctx.LowerGate("cnot", qubits, nil, nil, 1)).To(Succeed())

			qubits[0] = 9

			Expect(ctx.Circuit().Instructions()[0].Target).To(Equal([]int{0, 1}))
		})
	})

	Context("when lowering unitaries", func() {
		It("should target every qubit without controls", func() {
			m := [][]complex128{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 0, 1},
				{0, 0, 1, 0},
			}

			Expect(ctx.LowerUnitary(m, []int{2, 0})).To(Succeed())

			insts := ctx.Circuit().Instructions()
			Expect(insts).To(HaveLen(1))
			Expect(insts[0].Target).To(Equal([]int{2, 0}))
			Expect(insts[0].Control).To(BeEmpty())
			Expect(insts[0].ControlState).To(BeEmpty())
			Expect(insts[0].Operator).To(Equal(circuit.Unitary{Matrix: m}))
		})

		It("should not alias the caller's matrix", func() {
			m := [][]complex128{{0, 1}, {1, 0}}
			Expect(ctx.LowerUnitary(m, []int{0})).To(Succeed())

			m[0][0] = 42

			stored := ctx.Circuit().Instructions()[0].Operator.(circuit.Unitary)
			Expect(stored.Matrix[0][0]).To(Equal(complex128(0)))
		})

		It("should not let consumers change stored matrices", func() {
			Expect(ctx.LowerUnitary([][]complex128{{0, 1}, {1, 0}}, []int{0})).To(Succeed())

			got := ctx.Circuit().Instructions()[0].Operator.(circuit.Unitary)
			got.Matrix[1][0] = 5

			stored := ctx.Circuit().Instructions()[0].Operator.(circuit.Unitary)
			Expect(stored.Matrix[1][0]).To(Equal(complex128(1)))
		})

		It("should not check the matrix", func() {
			m := [][]complex128{{2, 0}, {0, 2}}

			Expect(ctx.LowerUnitary(m, []int{0, 1, 2})).To(Succeed())
		})

		It("should reject negative qubits", func() {
			Expect(ctx.LowerUnitary([][]complex128{{1}}, []int{-1})).
				To(MatchError(circuit.ErrInvariantViolation))
		})
	})

	Context("when lowering phases", func() {
		It("should always report the capability gap", func() {
			Expect(ctx.Supports(lower.CapabilityPhase)).To(BeFalse())

			err := ctx.LowerPhase([]int{0}, 0.5)

			Expect(err).To(MatchError(circuit.ErrNotImplemented))
			Expect(ctx.LowerPhase(nil, 0)).To(MatchError(circuit.ErrNotImplemented))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should support every other event kind", func() {
			for _, c := range []lower.Capability{
				lower.CapabilityGate, lower.CapabilityUnitary,
				lower.CapabilityNoise, lower.CapabilityResult,
			} {
				Expect(ctx.Supports(c)).To(BeTrue(), c.String())
			}
		})
	})

	It("should not alias the caller's Kraus operators", func() {
		k := [][][]complex128{
			{{1, 0}, {0, 0}},
			{{0, 0}, {0, 1}},
		}
		Expect(ctx.LowerNoise(noise.Channel{Kind: "kraus", Targets: []int{0}, Matrices: k})).To(Succeed())

		k[0][0][0] = 7

		stored := ctx.Circuit().Instructions()[0].Operator.(noise.Operator)
		Expect(stored.Matrices()[0][0][0]).To(Equal(complex128(1)))
	})

	It("should keep call order across event kinds", func() {
		Expect(ctx.LowerGate("h", []int{0}, nil, nil, 1)).To(Succeed())
		Expect(ctx.LowerNoise(noise.Channel{
			Kind: "depolarizing", Targets: []int{0}, Probabilities: []float64{0.01},
		})).To(Succeed())
		Expect(ctx.LowerResult(result.Descriptor{Type: "probability", Targets: []int{0}})).To(Succeed())
		Expect(ctx.LowerUnitary([][]complex128{{0, 1}, {1, 0}}, []int{1})).To(Succeed())
		Expect(ctx.LowerResult(result.Descriptor{Type: "probability", Targets: []int{0}})).To(Succeed())

		insts := ctx.Circuit().Instructions()
		Expect(insts).To(HaveLen(3))
		Expect(insts[0].Operator.Name()).To(Equal("h"))
		Expect(insts[1].Operator.Name()).To(Equal("depolarizing"))
		Expect(insts[2].Operator.Name()).To(Equal("unitary"))
		Expect(ctx.Circuit().ResultTypes()).To(HaveLen(2))
	})
})

var _ = Describe("Context with collaborators", func() {
	var (
		mockCtrl     *gomock.Controller
		mockRegistry *MockDefinitionRegistry
		mockNoise    *MockNoiseTranslator
		mockResult   *MockResultTranslator
		ctx          *lower.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockRegistry = NewMockDefinitionRegistry(mockCtrl)
		mockNoise = NewMockNoiseTranslator(mockCtrl)
		mockResult = NewMockResultTranslator(mockCtrl)

		ctx = lower.NewBuilder().
			WithRegistry(mockRegistry).
			WithNoiseTranslator(mockNoise).
			WithResultTranslator(mockResult).
			Build("ctx")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("when querying gate scope", func() {
		It("should report built-in gates", func() {
			mockRegistry.EXPECT().IsUserDefined("h").Return(false)

			Expect(ctx.IsBuiltinGate("h")).To(BeTrue())
		})

		It("should let user definitions shadow built-in gates", func() {
			mockRegistry.EXPECT().IsUserDefined("h").Return(true)

			Expect(ctx.IsBuiltinGate("h")).To(BeFalse())
		})

		It("should not report unknown names", func() {
			mockRegistry.EXPECT().IsUserDefined(gomock.Any()).Return(false).AnyTimes()

			Expect(ctx.IsBuiltinGate("my_gate")).To(BeFalse())
		})
	})

	Context("when lowering noise", func() {
		It("should append every instruction in table order", func() {
			ch := noise.Channel{Kind: "custom", Targets: []int{0, 1}}
			first := circuit.Instruction{Operator: circuit.Unitary{}, Target: []int{0}, Power: 1}
			second := circuit.Instruction{Operator: circuit.Unitary{}, Target: []int{1}, Power: 1}
			mockNoise.EXPECT().Translate(ch).Return([]circuit.Instruction{first, second}, nil)

			Expect(ctx.LowerNoise(ch)).To(Succeed())

			insts := ctx.Circuit().Instructions()
			Expect(insts).To(HaveLen(2))
			Expect(insts[0].Target).To(Equal([]int{0}))
			Expect(insts[1].Target).To(Equal([]int{1}))
		})

		It("should propagate the table error unchanged", func() {
			tableErr := errors.New("table failure")
			mockNoise.EXPECT().Translate(gomock.Any()).Return(nil, tableErr)

			err := ctx.LowerNoise(noise.Channel{Kind: "custom"})

			Expect(err).To(BeIdenticalTo(tableErr))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})

		It("should append nothing if one produced instruction is invalid", func() {
			good := circuit.Instruction{Operator: circuit.Unitary{}, Target: []int{0}}
			bad := circuit.Instruction{Operator: circuit.Unitary{}, Target: []int{0}, Control: []int{1}}
			mockNoise.EXPECT().Translate(gomock.Any()).Return([]circuit.Instruction{good, bad}, nil)

			err := ctx.LowerNoise(noise.Channel{Kind: "custom"})

			Expect(err).To(MatchError(circuit.ErrInvariantViolation))
			Expect(ctx.Circuit().NumInstructions()).To(Equal(0))
		})
	})

	Context("when lowering results", func() {
		It("should append in call order without deduplication", func() {
			d := result.Descriptor{Type: "probability", Targets: []int{0}}
			rt := circuit.ResultType{Kind: "probability", Targets: []int{0}}
			mockResult.EXPECT().Translate(d).Return(rt, nil).Times(2)

			Expect(ctx.LowerResult(d)).To(Succeed())
			Expect(ctx.LowerResult(d)).To(Succeed())

			Expect(ctx.Circuit().ResultTypes()).To(Equal([]circuit.ResultType{rt, rt}))
		})

		It("should propagate the table error unchanged", func() {
			tableErr := errors.New("table failure")
			mockResult.EXPECT().Translate(gomock.Any()).Return(circuit.ResultType{}, tableErr)

			err := ctx.LowerResult(result.Descriptor{Type: "unknown"})

			Expect(err).To(BeIdenticalTo(tableErr))
			Expect(ctx.Circuit().NumResultTypes()).To(Equal(0))
		})
	})
})

var _ = Describe("Registry", func() {
	It("should flip the gate scope once a name is defined", func() {
		registry := lower.NewRegistry()
		ctx := lower.NewBuilder().WithRegistry(registry).Build("ctx")

		Expect(ctx.IsBuiltinGate("rx")).To(BeTrue())

		registry.Define("rx")

		Expect(ctx.IsBuiltinGate("rx")).To(BeFalse())
		Expect(registry.IsUserDefined("rx")).To(BeTrue())
	})

	It("should use a custom gate set", func() {
		set := gates.NewSet("custom")
		set.Register(gates.Constructor{Kind: gates.Fixed, Name: "sx", Qubits: 1})
		ctx := lower.NewBuilder().WithGateSet(set).Build("ctx")

		Expect(ctx.IsBuiltinGate("sx")).To(BeTrue())
		Expect(ctx.IsBuiltinGate("h")).To(BeFalse())
		Expect(ctx.LowerGate("h", []int{0}, nil, nil, 1)).To(MatchError(circuit.ErrLookup))
	})
})
