package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiP evaluates the orthonormal Jacobi polynomial of type (alpha,beta)
// and order n at points x.
func JacobiP(x []float64, alpha, beta float64, n int) []float64 {
	var (
		Np  = len(x)
		Pm1 = make([]float64, Np)
		P   = make([]float64, Np)
		g0  = gamma0(alpha, beta)
	)
	for i := range P {
		P[i] = 1.0 / math.Sqrt(g0)
	}
	if n == 0 {
		return P
	}
	gamma1 := (alpha + 1) * (beta + 1) / (alpha + beta + 3) * g0
	copy(Pm1, P)
	for i := range P {
		P[i] = ((alpha+beta+2)*x[i]/2 + (alpha-beta)/2) / math.Sqrt(gamma1)
	}
	aold := 2.0 / (2.0 + alpha + beta) * math.Sqrt((alpha+1)*(beta+1)/(alpha+beta+3))
	for i := 1; i < n; i++ {
		h1 := 2*float64(i) + alpha + beta
		ip1 := float64(i + 1)
		anew := 2.0 / (h1 + 2) * math.Sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1+1)/(h1+3))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2)
		for j := range P {
			next := (-aold*Pm1[j] + (x[j]-bnew)*P[j]) / anew
			Pm1[j], P[j] = P[j], next
		}
		aold = anew
	}
	return P
}

// GradJacobiP evaluates the derivative of JacobiP at points x.
func GradJacobiP(x []float64, alpha, beta float64, n int) []float64 {
	dP := make([]float64, len(x))
	if n == 0 {
		return dP
	}
	P := JacobiP(x, alpha+1, beta+1, n-1)
	scale := math.Sqrt(float64(n) * (float64(n) + alpha + beta + 1))
	for i := range dP {
		dP[i] = scale * P[i]
	}
	return dP
}

// Vandermonde1D returns V(i,j) = P_j(x_i) for the orthonormal Legendre
// polynomials up to order N.
func Vandermonde1D(N int, x []float64) *mat.Dense {
	V := mat.NewDense(len(x), N+1, nil)
	for j := 0; j <= N; j++ {
		V.SetCol(j, JacobiP(x, 0, 0, j))
	}
	return V
}

func GradVandermonde1D(N int, x []float64) *mat.Dense {
	Vr := mat.NewDense(len(x), N+1, nil)
	for j := 0; j <= N; j++ {
		Vr.SetCol(j, GradJacobiP(x, 0, 0, j))
	}
	return Vr
}

// ModalTransfer computes the same matrices as LagrangeTransfer through the
// modal basis: B = V(x)·V(nodes)⁻¹ and G = Vr(x)·V(nodes)⁻¹.
func ModalTransfer(nodes, x []float64) (B, G *mat.Dense, err error) {
	N := len(nodes) - 1
	var Vinv mat.Dense
	if err = Vinv.Inverse(Vandermonde1D(N, nodes)); err != nil {
		return nil, nil, fmt.Errorf("nodal Vandermonde matrix: %w", err)
	}
	B, G = new(mat.Dense), new(mat.Dense)
	B.Mul(Vandermonde1D(N, x), &Vinv)
	G.Mul(GradVandermonde1D(N, x), &Vinv)
	return
}
