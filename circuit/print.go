package circuit

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Parameterized is implemented by operators that carry continuous
// parameters, such as rotation angles or channel probabilities.
type Parameterized interface {
	Parameters() []float64
}

// Render draws the instructions and the result types as text tables.
func (c *Circuit) Render() string {
	instTable := table.NewWriter()
	instTable.SetTitle(fmt.Sprintf("Instructions (%d on %d qubits)",
		len(c.instructions), c.QubitCount()))
	instTable.AppendHeader(table.Row{
		"#", "Operator", "Params", "Control", "State", "Target", "Power",
	})

	for i, inst := range c.instructions {
		instTable.AppendRow(table.Row{
			i,
			inst.Operator.Name(),
			formatParams(inst.Operator),
			formatInts(inst.Control),
			formatInts(inst.ControlState),
			formatInts(inst.Target),
			inst.Power,
		})
	}

	var sb strings.Builder
	sb.WriteString(instTable.Render())
	sb.WriteString("\n")

	if len(c.resultTypes) == 0 {
		return sb.String()
	}

	rtTable := table.NewWriter()
	rtTable.SetTitle(fmt.Sprintf("Result Types (%d)", len(c.resultTypes)))
	rtTable.AppendHeader(table.Row{"#", "Kind", "Observable", "Targets", "States"})

	for i, rt := range c.resultTypes {
		rtTable.AppendRow(table.Row{
			i,
			rt.Kind,
			strings.Join(rt.Observable, "@"),
			formatInts(rt.Targets),
			strings.Join(rt.States, ","),
		})
	}

	sb.WriteString(rtTable.Render())
	sb.WriteString("\n")

	return sb.String()
}

func formatParams(op Operator) string {
	p, ok := op.(Parameterized)
	if !ok {
		return ""
	}

	parts := make([]string, len(p.Parameters()))
	for i, v := range p.Parameters() {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}

func formatInts(vals []int) string {
	if len(vals) == 0 {
		return ""
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}
