package stats

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VHeusinkveld/small-investigations/pkg/core"
)

func TestStats_Print(t *testing.T) {
	t.Parallel()
	m := core.FromSlice([][]float64{{1, 4}, {2, 5}, {3, 6}})

	var buf bytes.Buffer
	Summarize(m, "X_COORD", "Y_COORD").Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "3 rows, correlation 1.000")
	assert.Contains(t, out, "X_COORD")
	assert.Contains(t, out, "Y_COORD")
	assert.Contains(t, out, "Median")
	assert.Contains(t, out, "5.000")
}

func TestStats_FormatValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-", formatValue(math.NaN()))
	assert.Equal(t, "155000.500", formatValue(155000.5))
}
