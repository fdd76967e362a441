package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Basis1D holds the nodal Lagrange basis on Gauss-Lobatto dofs sampled at
// Gauss-Legendre quadrature points.
type Basis1D struct {
	Dofs1D, Quad1D int
	DofNodes       []float64
	QuadNodes      []float64
	QuadWeights    []float64
	B              *mat.Dense // B(q,d) = l_d(x_q)
	G              *mat.Dense // G(q,d) = l_d'(x_q)
}

func NewBasis1D(dofs1D, quad1D int) (b *Basis1D, err error) {
	if dofs1D < 2 || quad1D < 1 {
		err = fmt.Errorf("invalid basis size dofs1D=%d quad1D=%d", dofs1D, quad1D)
		return
	}
	b = &Basis1D{
		Dofs1D:   dofs1D,
		Quad1D:   quad1D,
		DofNodes: GaussLobatto(dofs1D),
	}
	b.QuadNodes, b.QuadWeights = GaussLegendre(quad1D)
	b.B, b.G = LagrangeTransfer(b.DofNodes, b.QuadNodes)
	return
}

// LagrangeTransfer evaluates the Lagrange polynomials through nodes, and
// their derivatives, at the points x.
func LagrangeTransfer(nodes, x []float64) (B, G *mat.Dense) {
	nd, nq := len(nodes), len(x)
	B = mat.NewDense(nq, nd, nil)
	G = mat.NewDense(nq, nd, nil)
	for d := 0; d < nd; d++ {
		for q := 0; q < nq; q++ {
			B.Set(q, d, lagrange(nodes, d, x[q]))
			G.Set(q, d, lagrangeDeriv(nodes, d, x[q]))
		}
	}
	return
}

func lagrange(nodes []float64, j int, x float64) (l float64) {
	l = 1.
	for k, xk := range nodes {
		if k == j {
			continue
		}
		l *= (x - xk) / (nodes[j] - xk)
	}
	return
}

// Product rule form, well defined when x coincides with a node.
func lagrangeDeriv(nodes []float64, j int, x float64) (dl float64) {
	for m, xm := range nodes {
		if m == j {
			continue
		}
		term := 1. / (nodes[j] - xm)
		for k, xk := range nodes {
			if k == j || k == m {
				continue
			}
			term *= (x - xk) / (nodes[j] - xk)
		}
		dl += term
	}
	return
}

// DofToQuad packs B with the quadrature index fastest, dofToQuad[q+d*Q].
func (b *Basis1D) DofToQuad() []float64 { return columnMajor(b.B) }

func (b *Basis1D) DofToQuadD() []float64 { return columnMajor(b.G) }

// QuadToDof packs the transpose of B with the dof index fastest,
// quadToDof[d+q*N].
func (b *Basis1D) QuadToDof() []float64 { return rowMajor(b.B) }

func (b *Basis1D) QuadToDofD() []float64 { return rowMajor(b.G) }

func columnMajor(m mat.Matrix) (out []float64) {
	r, c := m.Dims()
	out = make([]float64, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out[i+j*r] = m.At(i, j)
		}
	}
	return
}

func rowMajor(m mat.Matrix) (out []float64) {
	r, c := m.Dims()
	out = make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j+i*c] = m.At(i, j)
		}
	}
	return
}
