package diffusion

// Flat buffer layout used by every kernel in this package:
//
//	basis:     dofToQuad[IJ(q, d, Q)]           quadToDof[IJ(d, q, N)]
//	operator:  oper[IJKNM(c, q, e, NC, NQ)]     c = tensor component, q = quad point
//	solution:  sol[IJK(dx, dy, e, N)]           (2D)
//	           sol[IJKL(dx, dy, dz, e, N)]      (3D)
//
// None of these helpers check bounds, callers own the extents.

// IJ returns the offset of (i,j) in a buffer with i varying fastest.
func IJ(i, j, strideI int) int {
	return i + j*strideI
}

// IJK returns the offset of (i,j) in element e of a square 2D block per element.
func IJK(i, j, e, strideI int) int {
	return i + j*strideI + e*strideI*strideI
}

// IJKL returns the offset of (i,j,k) in element e of a cubic 3D block per element.
func IJKL(i, j, k, e, strideI int) int {
	return i + j*strideI + k*strideI*strideI + e*strideI*strideI*strideI
}

// IJKNM returns the offset of tensor component c at quad point q of element e.
func IJKNM(c, q, e, numComponents, numQuad int) int {
	return c + q*numComponents + e*numComponents*numQuad
}

func QuadID2D(qx, qy, quad1D int) int {
	return qx + qy*quad1D
}

func QuadID3D(qx, qy, qz, quad1D int) int {
	return qx + qy*quad1D + qz*quad1D*quad1D
}

// NumComponents is the number of independent entries of the symmetric dim×dim tensor.
func NumComponents(dim int) int {
	return dim * (dim + 1) / 2
}

// IntPow returns base^exp for small non-negative exponents.
func IntPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
