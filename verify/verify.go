// Package verify provides static checks on a lowered circuit before it is
// handed to an executor.
//
// Lowering is purely structural: it never checks that a gate receives as many
// targets as it acts on, or that the qubits fit the device that will run the
// circuit. RunLint reports those problems without changing the circuit.
//
// # Issue Types
//
//   - STRUCT: qubit index outside the device, operator arity mismatch
//   - POWER: power attached to an operator that cannot be raised to it
//     (noise channels, non-integer powers of explicit unitaries)
//   - RESULT: result type measuring a qubit no instruction acts on
//
// # Usage Example
//
//	dev := verify.Device{Name: "sv1", Qubits: 34}
//	report := verify.GenerateReport(ctx.Circuit(), dev)
//	report.WriteReport(os.Stdout)
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Qubit out of range, arity mismatch
	IssuePower  IssueType = "POWER"  // Power not applicable to the operator
	IssueResult IssueType = "RESULT" // Result target never acted on
)

// Issue represents a single lint issue
type Issue struct {
	Type        IssueType      // STRUCT, POWER or RESULT
	Instruction int            // Instruction index (-1 if not applicable)
	Result      int            // Result type index (-1 if not applicable)
	Qubit       int            // Offending qubit (-1 if not applicable)
	Message     string         // Human-readable description
	Details     map[string]any // Additional structured data
}

// Device describes the target the circuit will run on.
type Device struct {
	Name   string
	Qubits int // Number of qubits, 0 for unbounded
}
