package core

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies values).
func FromSlice(a [][]float64) *Matrix {
	r := len(a)
	if r == 0 {
		return &Matrix{R: 0, C: 0}
	}

	c := len(a[0])
	m := NewMatrix(r, c)
	k := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Data[k] = a[i][j]
			k++
		}
	}
	return m
}

// At returns element (i, j)
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set sets element (i, j)
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}

// ToSlice copies the matrix out as one slice per row.
func (m *Matrix) ToSlice() [][]float64 {
	out := make([][]float64, m.R)
	for i := 0; i < m.R; i++ {
		row := make([]float64, m.C)
		copy(row, m.Data[i*m.C:(i+1)*m.C])
		out[i] = row
	}
	return out
}

// Len and XY let an n x 2 matrix act as a list of points.
func (m *Matrix) Len() int { return m.R }

func (m *Matrix) XY(i int) (float64, float64) {
	return m.Data[i*m.C], m.Data[i*m.C+1]
}
