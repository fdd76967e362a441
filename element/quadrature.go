package element

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta from the eigen-decomposition of the Jacobi matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2.)}, []float64{2.}
	}
	var (
		h1 = make([]float64, N+1)
		d0 = make([]float64, N+1)
		d1 = make([]float64, N)
	)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}
	fac := beta*beta - alpha*alpha
	for i := range d0 {
		d0[i] = fac / (h1[i] * (h1[i] + 2.))
	}
	if alpha+beta < 10*math.SmallestNonzeroFloat64 || math.Abs(alpha+beta) < 1.e-15 {
		d0[0] = 0.
	}
	for i := range d1 {
		ip1 := float64(i + 1)
		d1[i] = 2.0 / (h1[i] + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(symTriDiagonal(d0, d1), true); !ok {
		panic("eigenvalue decomposition failed")
	}
	X = eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	W = make([]float64, len(X))
	g0 := gamma0(alpha, beta)
	for i := range W {
		v := vecs.At(0, i)
		W[i] = v * v * g0
	}
	return X, W
}

// JacobiGL returns the N+1 Gauss-Lobatto points, the zeros of
// (1-x^2) P'_N^{alpha,beta}(x).
func JacobiGL(alpha, beta float64, N int) []float64 {
	switch N {
	case 0:
		return []float64{0.0}
	case 1:
		return []float64{-1.0, 1.0}
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	x := make([]float64, N+1)
	x[0] = -1.0
	copy(x[1:N], xint)
	x[N] = 1.0
	return x
}

// GaussLegendre returns the n point Gauss-Legendre rule on [-1,1], exact for
// polynomials of degree 2n-1.
func GaussLegendre(n int) (X, W []float64) {
	return JacobiGQ(0, 0, n-1)
}

// GaussLobatto returns n Gauss-Lobatto-Legendre nodes on [-1,1].
func GaussLobatto(n int) []float64 {
	return JacobiGL(0, 0, n-1)
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	return math.Gamma(alpha+1.) * math.Gamma(beta+1.) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func symTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		T.SetSym(i, i, d0[i])
		if i < n-1 {
			T.SetSym(i, i+1, d1[i])
		}
	}
	return T
}
