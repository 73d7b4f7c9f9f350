package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
type Mat3 [9]float32

// Submatrix removes the given row and column. Out-of-range indices are
// clamped into [0, 2].
func (m Mat3) Submatrix(row, col int) Mat2 {
	row, col = clampIndex(row, 3), clampIndex(col, 3)
	var s Mat2
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			s[i] = m[r*3+c]
			i++
		}
	}
	return s
}

func (m Mat3) Minor(row, col int) float32 {
	return m.Submatrix(row, col).Det()
}

func (m Mat3) Cofactor(row, col int) float32 {
	return sign(row, col) * m.Minor(row, col)
}

// Det expands along the first row.
func (m Mat3) Det() float32 {
	return m[0]*m.Cofactor(0, 0) + m[1]*m.Cofactor(0, 1) + m[2]*m.Cofactor(0, 2)
}
