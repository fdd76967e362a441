package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/DGDiffusion/diffusion"
)

// AffineOperator packs the diffusion tensor w_q·kappa·|J|·J⁻¹J⁻ᵀ of every
// quadrature point of every element, with one constant Jacobian per element.
// Components are stored upper triangle row by row: {11,12,22} in 2D and
// {11,12,13,22,23,33} in 3D.
func AffineOperator(dim int, weights []float64, jacobians []mat.Matrix, kappa float64) (oper []float64, err error) {
	if dim != 2 && dim != 3 {
		err = fmt.Errorf("affine operator: unsupported dimension %d", dim)
		return
	}
	var (
		nq1     = len(weights)
		numQuad = diffusion.IntPow(nq1, dim)
		nc      = diffusion.NumComponents(dim)
	)
	oper = make([]float64, nc*numQuad*len(jacobians))
	for e, J := range jacobians {
		var m *mat.SymDense
		if m, err = metricTensor(dim, J); err != nil {
			err = fmt.Errorf("element %d: %w", e, err)
			return
		}
		m.ScaleSym(kappa, m)
		for q := 0; q < numQuad; q++ {
			w := quadWeight(dim, q, weights)
			c := 0
			for i := 0; i < dim; i++ {
				for j := i; j < dim; j++ {
					oper[diffusion.IJKNM(c, q, e, nc, numQuad)] = w * m.At(i, j)
					c++
				}
			}
		}
	}
	return
}

// metricTensor returns |J|·J⁻¹J⁻ᵀ.
func metricTensor(dim int, J mat.Matrix) (m *mat.SymDense, err error) {
	if r, c := J.Dims(); r != dim || c != dim {
		err = fmt.Errorf("jacobian is %dx%d, want %dx%d", r, c, dim, dim)
		return
	}
	var Jinv mat.Dense
	if err = Jinv.Inverse(J); err != nil {
		err = fmt.Errorf("singular jacobian: %w", err)
		return
	}
	detJ := math.Abs(mat.Det(J))
	m = mat.NewSymDense(dim, nil)
	m.SymOuterK(detJ, &Jinv)
	return
}

func quadWeight(dim, q int, weights []float64) (w float64) {
	nq1 := len(weights)
	w = 1.
	for d := 0; d < dim; d++ {
		w *= weights[q%nq1]
		q /= nq1
	}
	return
}

// CartesianJacobians returns the Jacobians of numElements axis aligned
// cubes of edge h mapped from [-1,1]^dim.
func CartesianJacobians(dim, numElements int, h float64) (jacs []mat.Matrix) {
	jacs = make([]mat.Matrix, numElements)
	for e := range jacs {
		diag := make([]float64, dim)
		for i := range diag {
			diag[i] = 0.5 * h
		}
		jacs[e] = mat.NewDiagDense(dim, diag)
	}
	return
}
