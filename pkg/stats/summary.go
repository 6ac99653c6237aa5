package stats

import "github.com/VHeusinkveld/small-investigations/pkg/core"

// AxisSummary describes one coordinate column.
type AxisSummary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

// Summary describes a projected n x 2 coordinate matrix.
type Summary struct {
	Rows        int
	X, Y        AxisSummary
	Correlation float64
}

// Summarize computes per-axis statistics and the X/Y correlation of m,
// skipping missing values.
func Summarize(m *core.Matrix, xName, yName string) Summary {
	xs, ys := m.Col(0), m.Col(1)
	return Summary{
		Rows:        m.R,
		X:           summarizeAxis(xName, xs),
		Y:           summarizeAxis(yName, ys),
		Correlation: Correlation(xs, ys),
	}
}

func summarizeAxis(name string, v []float64) AxisSummary {
	lo, hi := MinMax(v)
	return AxisSummary{
		Name:   name,
		Count:  Count(v),
		Min:    lo,
		Max:    hi,
		Mean:   Mean(v),
		Median: Median(v),
		Std:    Std(v),
	}
}
