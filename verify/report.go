package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/qlower/circuit"
)

// Report is the outcome of linting one circuit.
type Report struct {
	Device           Device
	InstructionCount int
	ResultCount      int
	QubitCount       int
	Issues           []Issue
	StructIssues     []Issue
	PowerIssues      []Issue
	ResultIssues     []Issue
}

// GenerateReport lints the circuit and categorizes the issues.
func GenerateReport(c *circuit.Circuit, dev Device) *Report {
	report := &Report{
		Device:           dev,
		InstructionCount: c.NumInstructions(),
		ResultCount:      c.NumResultTypes(),
		QubitCount:       c.QubitCount(),
		Issues:           RunLint(c, dev),
	}

	for _, issue := range report.Issues {
		switch issue.Type {
		case IssueStruct:
			report.StructIssues = append(report.StructIssues, issue)
		case IssuePower:
			report.PowerIssues = append(report.PowerIssues, issue)
		case IssueResult:
			report.ResultIssues = append(report.ResultIssues, issue)
		}
	}

	return report
}

// OK tells whether no issue was found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "CIRCUIT LINT REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Instructions: %d\n", r.InstructionCount)
	fmt.Fprintf(w, "Result types: %d\n", r.ResultCount)
	if r.Device.Qubits > 0 {
		fmt.Fprintf(w, "Qubits: %d used of %d on %s\n", r.QubitCount, r.Device.Qubits, r.Device.Name)
	} else {
		fmt.Fprintf(w, "Qubits: %d used\n", r.QubitCount)
	}

	if r.OK() {
		fmt.Fprintln(w, "\n✓ No lint issues found!")
		fmt.Fprintln(w, separator)
		return
	}

	fmt.Fprintf(w, "\n⚠ Found %d lint issues (%d STRUCT, %d POWER, %d RESULT)\n",
		len(r.Issues), len(r.StructIssues), len(r.PowerIssues), len(r.ResultIssues))

	for _, group := range []struct {
		name   string
		issues []Issue
	}{
		{"STRUCT ISSUES", r.StructIssues},
		{"POWER ISSUES", r.PowerIssues},
		{"RESULT ISSUES", r.ResultIssues},
	} {
		if len(group.issues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d):\n", group.name, len(group.issues))
		fmt.Fprintln(w, dash)
		for _, issue := range group.issues {
			fmt.Fprintf(w, "  [%s] %s\n", issue.location(), issue.Message)
		}
	}

	fmt.Fprintln(w, separator)
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}

func (i Issue) location() string {
	switch {
	case i.Instruction >= 0:
		return fmt.Sprintf("inst=%d", i.Instruction)
	case i.Result >= 0:
		return fmt.Sprintf("result=%d", i.Result)
	default:
		return "circuit"
	}
}
