// Package report renders a finished schedule history for humans. The engines
// stay pure data producers; everything printable lives here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"sched-project/internal/core"
)

// scheduleHeaders is the explicit column list for the schedule table, in the
// order the fields are filled in by the engine.
var scheduleHeaders = []string{"PID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting"}

// WriteSchedule renders the history as a table with average footers.
func WriteSchedule(w io.Writer, title string, history []*core.Process, avgTurnaround, avgWaiting float64) {
	writeTitle(w, title)

	rows := make([][]string, 0, len(history))
	for _, p := range history {
		rows = append(rows, []string{
			p.ProcessId,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(scheduleHeaders)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", avgTurnaround),
		fmt.Sprintf("Average\n%.2f", avgWaiting)})
	table.Render()
}

// WriteGantt renders the Gantt chart, one cell per simulated time unit.
func WriteGantt(w io.Writer, history []*core.Process) {
	_, _ = fmt.Fprintln(w, "Gantt chart:", GanttString(history))
}

// GanttString builds the character Gantt chart for an executed history, one
// |PID cell per burst unit, e.g. |P0|P0|P0|P1|.
func GanttString(history []*core.Process) string {
	var b strings.Builder
	for _, p := range history {
		for i := 0; i < p.BurstTime; i++ {
			b.WriteByte('|')
			b.WriteString(p.ProcessId)
		}
	}
	if b.Len() > 0 {
		b.WriteByte('|')
	}
	return b.String()
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}
