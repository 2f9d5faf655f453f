package bench

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// FprintReport renders a, b side by side to w, highlighting whichever
// has the higher mean total return. Uses termenv rather than plain
// fmt.Fprintf, so the report degrades gracefully on non-color
// terminals and CI logs (termenv auto-detects profile from w).
func FprintReport(w io.Writer, a, b ConfigResult) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w, out.String("weavetree config comparison").Bold())
	printConfigLine(w, out, a)
	printConfigLine(w, out, b)

	winner := a
	if b.MeanTotalReturn > a.MeanTotalReturn {
		winner = b
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("higher mean total return: %s", winner.Name)).
		Foreground(out.Color("10")).Bold())
}

func printConfigLine(w io.Writer, out *termenv.Output, r ConfigResult) {
	label := out.String(fmt.Sprintf("%-12s", r.Name)).Bold()
	fmt.Fprintf(w, "%s trials=%-6d mean_total_return=%.6f mean_node_count=%.2f mean_iterations=%.2f\n",
		label, r.Trials, r.MeanTotalReturn, r.MeanNodeCount, r.MeanIterationsDone)
}
