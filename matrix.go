package cvdsim

import "fmt"

type Vec3 [3]float64

// Matrix is a 3x3 linear map over linear-light RGB. Rows are output
// channels, columns are input channels, both in R, G, B order. No
// invariant is enforced on the values themselves, non-physical matrices
// are the caller's responsibility.
type Matrix [3][3]float64

// Identity returns the matrix that maps every color to itself.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrix builds a Matrix from a row slice, rejecting anything that is
// not exactly 3x3 with ErrInvalidMatrixShape.
func NewMatrix(rows [][]float64) (Matrix, error) {
	var m Matrix
	if len(rows) != 3 {
		return m, fmt.Errorf("%w: got %d rows", ErrInvalidMatrixShape, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("%w: row %d has %d columns", ErrInvalidMatrixShape, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// Apply computes the matrix-vector product over a linear RGB triple.
func (m Matrix) Apply(v Vec3) (r, g, b float64) {
	r = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	g = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	b = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

// Mul returns the composition m * o, the matrix that applies o first and
// then m.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}
