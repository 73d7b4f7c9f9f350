package mathutil

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("mathutil: singular matrix")

// Mat4 is a 4×4 matrix stored row-major. Used for object-to-world transforms.
type Mat4 [16]float32

// Identity4 is the 4×4 identity.
var Identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mul returns m × b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[i*4+0]*b[0*4+j] + m[i*4+1]*b[1*4+j] +
				m[i*4+2]*b[2*4+j] + m[i*4+3]*b[3*4+j]
		}
	}
	return r
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MulTuple treats t as a column vector.
func (m Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		m[0]*t.X + m[1]*t.Y + m[2]*t.Z + m[3]*t.W,
		m[4]*t.X + m[5]*t.Y + m[6]*t.Z + m[7]*t.W,
		m[8]*t.X + m[9]*t.Y + m[10]*t.Z + m[11]*t.W,
		m[12]*t.X + m[13]*t.Y + m[14]*t.Z + m[15]*t.W,
	}
}

// Submatrix removes the given row and column. Out-of-range indices are
// clamped into [0, 3].
func (m Mat4) Submatrix(row, col int) Mat3 {
	row, col = clampIndex(row, 4), clampIndex(col, 4)
	var s Mat3
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			s[i] = m[r*4+c]
			i++
		}
	}
	return s
}

func (m Mat4) Minor(row, col int) float32 {
	return m.Submatrix(row, col).Det()
}

func (m Mat4) Cofactor(row, col int) float32 {
	return sign(row, col) * m.Minor(row, col)
}

// Det expands along the first row.
func (m Mat4) Det() float32 {
	var d float32
	for c := 0; c < 4; c++ {
		d += m[c] * m.Cofactor(0, c)
	}
	return d
}

func (m Mat4) Invertible() bool {
	return !Equal32(m.Det(), 0)
}

// Inverse is the adjugate divided by the determinant. It does not check for
// a singular matrix: the result is then non-finite. Use InverseChecked or
// Invertible when that matters.
func (m Mat4) Inverse() Mat4 {
	return m.inverse(m.Det())
}

// InverseChecked returns ErrSingular instead of a non-finite matrix. Unlike
// Invertible it accepts determinants smaller than Epsilon, as long as the
// inverse comes out finite.
func (m Mat4) InverseChecked() (Mat4, error) {
	d := m.Det()
	if d == 0 {
		return Mat4{}, ErrSingular
	}
	r := m.inverse(d)
	for _, v := range r {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return Mat4{}, ErrSingular
		}
	}
	return r, nil
}

func (m Mat4) inverse(det float32) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed write: adjugate
			r[col*4+row] = m.Cofactor(row, col) / det
		}
	}
	return r
}

// Equal compares element-wise within Epsilon.
func (m Mat4) Equal(b Mat4) bool {
	for i := 0; i < 16; i++ {
		if !Equal32(m[i], b[i]) {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.Equal(Identity4)
}
