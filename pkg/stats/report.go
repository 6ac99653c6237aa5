package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Print writes s to w as a table, one row per axis.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "%d rows, correlation %s\n", s.Rows, formatValue(s.Correlation))

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader([]string{"Column", "Count", "Min", "Max", "Mean", "Median", "Std"})
	for _, a := range []AxisSummary{s.X, s.Y} {
		table.Append([]string{
			a.Name,
			strconv.Itoa(a.Count),
			formatValue(a.Min),
			formatValue(a.Max),
			formatValue(a.Mean),
			formatValue(a.Median),
			formatValue(a.Std),
		})
	}
	table.Render()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
