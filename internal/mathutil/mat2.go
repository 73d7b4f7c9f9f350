package mathutil

// Mat2 is a 2×2 matrix stored row-major.
type Mat2 [4]float32

func (m Mat2) Det() float32 {
	return m[0]*m[3] - m[1]*m[2]
}
