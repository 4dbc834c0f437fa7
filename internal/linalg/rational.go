// Package linalg implements exact linear algebra over Q and over Z/pZ
// (spec §4.11): null-space computation via row reduction, and
// coefficient-matrix extraction from formal power series.
package linalg

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
)

// Matrix is a dense row-major matrix of exact rationals.
type Matrix struct {
	Rows, Cols int
	data       [][]numeric.Q
}

// NewMatrix builds an r x c zero matrix.
func NewMatrix(r, c int) Matrix {
	data := make([][]numeric.Q, r)
	for i := range data {
		row := make([]numeric.Q, c)
		for j := range row {
			row[j] = numeric.ZeroQ()
		}
		data[i] = row
	}
	return Matrix{Rows: r, Cols: c, data: data}
}

// At returns M[i][j].
func (m Matrix) At(i, j int) numeric.Q { return m.data[i][j] }

// Set assigns M[i][j] = v.
func (m Matrix) Set(i, j int, v numeric.Q) { m.data[i][j] = v }

func (m Matrix) cloneRows() [][]numeric.Q {
	out := make([][]numeric.Q, m.Rows)
	for i, row := range m.data {
		out[i] = append([]numeric.Q(nil), row...)
	}
	return out
}

// RationalNullSpace row-reduces M to reduced row-echelon form over Q by
// partial pivoting, identifies pivot columns, and for each free column
// fc emits a basis vector v with v[fc]=1, v[pc] = -M_rref[row(pc)][fc]
// for every pivot column pc, and zeros elsewhere. Returns an empty
// slice when M has full column rank.
func RationalNullSpace(m Matrix) ([][]numeric.Q, error) {
	rref, pivotCols, err := rref(m.cloneRows(), m.Rows, m.Cols)
	if err != nil {
		return nil, err
	}

	isPivot := make([]bool, m.Cols)
	pivotRowOf := make([]int, m.Cols)
	for row, col := range pivotCols {
		isPivot[col] = true
		pivotRowOf[col] = row
	}

	var basis [][]numeric.Q
	for fc := 0; fc < m.Cols; fc++ {
		if isPivot[fc] {
			continue
		}
		v := make([]numeric.Q, m.Cols)
		for j := range v {
			v[j] = numeric.ZeroQ()
		}
		v[fc] = numeric.OneQ()
		for col, row := range pivotRowOf {
			if !isPivot[col] {
				continue
			}
			v[col] = rref[row][fc].Neg()
		}
		basis = append(basis, v)
	}
	return basis, nil
}

// rref reduces rows to reduced row-echelon form in place, returning the
// resulting grid and the column index of the pivot found in each row
// (indexed by the row that holds it).
func rref(rows [][]numeric.Q, nrows, ncols int) ([][]numeric.Q, map[int]int, error) {
	pivotCols := make(map[int]int)
	pivotRow := 0
	for col := 0; col < ncols && pivotRow < nrows; col++ {
		sel := -1
		for r := pivotRow; r < nrows; r++ {
			if !rows[r][col].IsZero() {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		rows[pivotRow], rows[sel] = rows[sel], rows[pivotRow]

		pivotVal := rows[pivotRow][col]
		inv, err := pivotVal.Inv()
		if err != nil {
			return nil, nil, err
		}
		for c := 0; c < ncols; c++ {
			rows[pivotRow][c] = rows[pivotRow][c].Mul(inv)
		}

		for r := 0; r < nrows; r++ {
			if r == pivotRow {
				continue
			}
			factor := rows[r][col]
			if factor.IsZero() {
				continue
			}
			for c := 0; c < ncols; c++ {
				rows[r][c] = rows[r][c].Sub(factor.Mul(rows[pivotRow][c]))
			}
		}

		pivotCols[pivotRow] = col
		pivotRow++
	}
	return rows, pivotCols, nil
}

// BuildCoefficientMatrix builds the matrix M with M[i][j] = coefficient
// of q^(start+i) in seriesList[j]. Every series must have truncation
// order >= start+rows.
func BuildCoefficientMatrix(seriesList []fps.Series, start int64, rows int) (Matrix, error) {
	cols := len(seriesList)
	m := NewMatrix(rows, cols)
	for j, s := range seriesList {
		if s.TruncationOrder() < start+int64(rows) {
			return Matrix{}, qsymerr.Newf(qsymerr.InvariantViolation, "linalg.BuildCoefficientMatrix",
				"series %d has truncation order %d, need >= %d", j, s.TruncationOrder(), start+int64(rows))
		}
		for i := 0; i < rows; i++ {
			c, err := s.Coeff(start + int64(i))
			if err != nil {
				return Matrix{}, err
			}
			m.Set(i, j, c)
		}
	}
	return m, nil
}
