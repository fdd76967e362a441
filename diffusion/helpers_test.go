package diffusion

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// randomOperands fills every input with values in [-1,1). With adjoint set the
// quad->dof matrices are the transposes of the dof->quad ones.
func randomOperands(rng *rand.Rand, key Key, numElements int, adjoint bool) Operands {
	fill := func(n int) []float64 {
		s := make([]float64, n)
		for i := range s {
			s[i] = 2*rng.Float64() - 1
		}
		return s
	}
	bs := key.BasisSize()
	ops := Operands{
		DofToQuad:  fill(bs),
		DofToQuadD: fill(bs),
		Oper:       fill(key.OperSize(numElements)),
		SolIn:      fill(key.FieldSize(numElements)),
		SolOut:     make([]float64, key.FieldSize(numElements)),
	}
	if adjoint {
		ops.QuadToDof = transposeBasis(ops.DofToQuad, key)
		ops.QuadToDofD = transposeBasis(ops.DofToQuadD, key)
	} else {
		ops.QuadToDof = fill(bs)
		ops.QuadToDofD = fill(bs)
	}
	return ops
}

func transposeBasis(dofToQuad []float64, key Key) []float64 {
	nd, nq := key.Dofs1D, key.Quad1D
	out := make([]float64, len(dofToQuad))
	for d := 0; d < nd; d++ {
		for q := 0; q < nq; q++ {
			out[IJ(d, q, nd)] = dofToQuad[IJ(q, d, nq)]
		}
	}
	return out
}

func splitIndex(i, n, dim int) (idx [3]int) {
	for r := 0; r < dim; r++ {
		idx[r] = i % n
		i /= n
	}
	return
}

// basisGradients fills the reference gradients of the trial and test
// functions of dof di at quadrature point qi.
func basisGradients(key Key, ops Operands, qi, di [3]int, trial, test []float64) {
	nd, nq := key.Dofs1D, key.Quad1D
	for a := 0; a < key.Dim; a++ {
		fw, bw := 1., 1.
		for r := 0; r < key.Dim; r++ {
			if r == a {
				fw *= ops.DofToQuadD[IJ(qi[r], di[r], nq)]
				bw *= ops.QuadToDofD[IJ(di[r], qi[r], nd)]
			} else {
				fw *= ops.DofToQuad[IJ(qi[r], di[r], nq)]
				bw *= ops.QuadToDof[IJ(di[r], qi[r], nd)]
			}
		}
		trial[a], test[a] = fw, bw
	}
}

// denseElementMatrix assembles A_e(i,j) = sum_q testGrad_i(q)ᵀ O_q trialGrad_j(q)
// without sum factorization.
func denseElementMatrix(key Key, ops Operands, e int) *mat.Dense {
	var (
		dim, nd, nq  = key.Dim, key.Dofs1D, key.Quad1D
		nDofs, nQuad = key.NumDofs(), key.NumQuad()
		nc           = NumComponents(dim)
		A            = mat.NewDense(nDofs, nDofs, nil)
		trial        = mat.NewDense(nDofs, dim, nil)
		test         = mat.NewDense(nDofs, dim, nil)
		O            = mat.NewSymDense(dim, nil)
		tr, te       = make([]float64, dim), make([]float64, dim)
	)
	for q := 0; q < nQuad; q++ {
		qi := splitIndex(q, nq, dim)
		for i := 0; i < nDofs; i++ {
			basisGradients(key, ops, qi, splitIndex(i, nd, dim), tr, te)
			trial.SetRow(i, tr)
			test.SetRow(i, te)
		}
		c := 0
		for a := 0; a < dim; a++ {
			for b := a; b < dim; b++ {
				O.SetSym(a, b, ops.Oper[IJKNM(c, q, e, nc, nQuad)])
				c++
			}
		}
		var tmp, contrib mat.Dense
		tmp.Mul(test, O)
		contrib.Mul(&tmp, trial.T())
		A.Add(A, &contrib)
	}
	return A
}

// directApply evaluates the operator without forming element matrices and
// without sum factorization: every quadrature point gradient is a full sum
// over the element's dofs. It stays affordable for the largest orders.
func directApply(key Key, numElements int, ops Operands) []float64 {
	var (
		dim, nd, nq  = key.Dim, key.Dofs1D, key.Quad1D
		nDofs, nQuad = key.NumDofs(), key.NumQuad()
		nc           = NumComponents(dim)
		out          = make([]float64, key.FieldSize(numElements))
		grad, flux   = make([]float64, dim), make([]float64, dim)
		trial, test  = make([]float64, dim), make([]float64, dim)
		dofIndex     = make([][3]int, nDofs)
	)
	for i := range dofIndex {
		dofIndex[i] = splitIndex(i, nd, dim)
	}
	for e := 0; e < numElements; e++ {
		for q := 0; q < nQuad; q++ {
			qi := splitIndex(q, nq, dim)
			for a := range grad {
				grad[a], flux[a] = 0, 0
			}
			for i := 0; i < nDofs; i++ {
				basisGradients(key, ops, qi, dofIndex[i], trial, test)
				u := ops.SolIn[e*nDofs+i]
				for a := range grad {
					grad[a] += trial[a] * u
				}
			}
			c := 0
			for a := 0; a < dim; a++ {
				for b := a; b < dim; b++ {
					o := ops.Oper[IJKNM(c, q, e, nc, nQuad)]
					flux[a] += o * grad[b]
					if b != a {
						flux[b] += o * grad[a]
					}
					c++
				}
			}
			for i := 0; i < nDofs; i++ {
				basisGradients(key, ops, qi, dofIndex[i], trial, test)
				for a := range flux {
					out[e*nDofs+i] += test[a] * flux[a]
				}
			}
		}
	}
	return out
}

// denseApply returns A·solIn for every element.
func denseApply(key Key, numElements int, ops Operands) []float64 {
	nDofs := key.NumDofs()
	out := make([]float64, key.FieldSize(numElements))
	for e := 0; e < numElements; e++ {
		var y mat.VecDense
		y.MulVec(denseElementMatrix(key, ops, e),
			mat.NewVecDense(nDofs, ops.SolIn[e*nDofs:(e+1)*nDofs]))
		for i := 0; i < nDofs; i++ {
			out[e*nDofs+i] = y.AtVec(i)
		}
	}
	return out
}

type countingTarget struct {
	launches int
}

func (c *countingTarget) Name() string { return "counting" }

func (c *countingTarget) Launch(*Entry, int, Operands) error {
	c.launches++
	return nil
}
