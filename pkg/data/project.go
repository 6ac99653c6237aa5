package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gota/gota/series"

	"github.com/VHeusinkveld/small-investigations/pkg/core"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNonNumeric     = errors.New("column is not numeric")
)

// Project materialises the named columns as an n x 2 matrix, one row per
// table row in input order. Missing values come through as NaN.
func Project(t *Table, xCol, yCol string) (*core.Matrix, error) {
	xs, err := numericColumn(t, xCol)
	if err != nil {
		return nil, err
	}
	ys, err := numericColumn(t, yCol)
	if err != nil {
		return nil, err
	}

	m := core.NewMatrix(len(xs), 2)
	for i := range xs {
		m.Set(i, 0, xs[i])
		m.Set(i, 1, ys[i])
	}
	return m, nil
}

func numericColumn(t *Table, name string) ([]float64, error) {
	s, ok := t.column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	switch {
	case s.Type() == series.Int, s.Type() == series.Float:
		return s.Float(), nil
	case allMissing(s):
		// Type inference has nothing to go on; read it as a float column of NaN.
		out := make([]float64, s.Len())
		for i := range out {
			out[i] = math.NaN()
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q has type %s", ErrNonNumeric, name, s.Type())
	}
}

func allMissing(s series.Series) bool {
	for _, r := range s.Records() {
		switch r {
		case "", "NA", "NaN", "<nil>":
		default:
			return false
		}
	}
	return true
}
