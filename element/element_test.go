package element

import (
	"go/format"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestGaussLegendre(t *testing.T) {
	// Test 1.1: n points integrate x^p exactly for p <= 2n-1
	for n := 1; n <= 17; n++ {
		X, W := GaussLegendre(n)
		require.Len(t, X, n)
		assert.InDelta(t, 2., floats.Sum(W), 1.e-12)
		for p := 0; p <= 2*n-1; p++ {
			var sum float64
			for i := range X {
				sum += W[i] * math.Pow(X[i], float64(p))
			}
			exact := 0.
			if p%2 == 0 {
				exact = 2. / float64(p+1)
			}
			assert.InDeltaf(t, exact, sum, 1.e-12, "n=%d p=%d", n, p)
		}
	}
	// Test 1.2: nodes ascend and are symmetric about zero
	X, _ := GaussLegendre(5)
	assert.False(t, floats.HasNaN(X))
	for i := range X {
		assert.InDelta(t, -X[i], X[len(X)-1-i], 1.e-14)
		if i > 0 {
			assert.Greater(t, X[i], X[i-1])
		}
	}
}

func TestGaussLobatto(t *testing.T) {
	assert.Equal(t, []float64{-1, 1}, GaussLobatto(2))
	X := GaussLobatto(3)
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, X, 1.e-14)
	X = GaussLobatto(5)
	// interior nodes of P4' are 0 and ±sqrt(3/7)
	assert.InDeltaSlice(t, []float64{-1, -math.Sqrt(3. / 7.), 0, math.Sqrt(3. / 7.), 1}, X, 1.e-13)
}

func TestBasis1D(t *testing.T) {
	_, err := NewBasis1D(1, 2)
	assert.Error(t, err)

	for _, tc := range []struct{ nd, nq int }{{2, 2}, {3, 4}, {5, 5}, {8, 9}} {
		b, err := NewBasis1D(tc.nd, tc.nq)
		require.NoError(t, err)
		r, c := b.B.Dims()
		assert.Equal(t, [2]int{tc.nq, tc.nd}, [2]int{r, c})
		// Partition of unity and its derivative
		for q := 0; q < tc.nq; q++ {
			assert.InDelta(t, 1., floats.Sum(mat.Row(nil, q, b.B)), 1.e-12)
			assert.InDelta(t, 0., floats.Sum(mat.Row(nil, q, b.G)), 1.e-10)
		}
		// Interpolation of x^(nd-1) and its derivative is exact
		p := float64(tc.nd - 1)
		u := make([]float64, tc.nd)
		for d, x := range b.DofNodes {
			u[d] = math.Pow(x, p)
		}
		uq := mat.NewVecDense(tc.nq, nil)
		uq.MulVec(b.B, mat.NewVecDense(tc.nd, u))
		duq := mat.NewVecDense(tc.nq, nil)
		duq.MulVec(b.G, mat.NewVecDense(tc.nd, u))
		for q, x := range b.QuadNodes {
			assert.InDelta(t, math.Pow(x, p), uq.AtVec(q), 1.e-11)
			assert.InDelta(t, p*math.Pow(x, p-1), duq.AtVec(q), 1.e-9)
		}
		// Packed layouts
		d2q, q2d := b.DofToQuad(), b.QuadToDof()
		d2qD, q2dD := b.DofToQuadD(), b.QuadToDofD()
		for q := 0; q < tc.nq; q++ {
			for d := 0; d < tc.nd; d++ {
				assert.Equal(t, b.B.At(q, d), d2q[q+d*tc.nq])
				assert.Equal(t, b.B.At(q, d), q2d[d+q*tc.nd])
				assert.Equal(t, b.G.At(q, d), d2qD[q+d*tc.nq])
				assert.Equal(t, b.G.At(q, d), q2dD[d+q*tc.nd])
			}
		}
	}
	// Lagrange nodes interpolate to the identity
	nodes := GaussLobatto(4)
	B, _ := LagrangeTransfer(nodes, nodes)
	assert.True(t, mat.EqualApprox(B, eye(4), 1.e-14))
}

func TestAffineOperator(t *testing.T) {
	_, W := GaussLegendre(3)
	// Test 3.1: a reference-sized cube gives w_q·kappa on the diagonal
	for _, dim := range []int{2, 3} {
		oper, err := AffineOperator(dim, W, CartesianJacobians(dim, 2, 2.), 1.5)
		require.NoError(t, err)
		nc := dim * (dim + 1) / 2
		nq := int(math.Pow(3, float64(dim)))
		require.Len(t, oper, nc*nq*2)
		for e := 0; e < 2; e++ {
			for q := 0; q < nq; q++ {
				w := quadWeight(dim, q, W) * 1.5
				c := 0
				for i := 0; i < dim; i++ {
					for j := i; j < dim; j++ {
						want := 0.
						if i == j {
							want = w
						}
						assert.InDelta(t, want, oper[c+q*nc+e*nc*nq], 1.e-14)
						c++
					}
				}
			}
		}
	}
	// Test 3.2: a sheared element matches |J| J^-1 J^-T
	J := mat.NewDense(2, 2, []float64{2, 1, 0, 1})
	oper, err := AffineOperator(2, []float64{1}, []mat.Matrix{J}, 1)
	require.NoError(t, err)
	// J^-1 = [[.5,-.5],[0,1]], |J| = 2
	assert.InDeltaSlice(t, []float64{2 * .5, 2 * -.5, 2 * 1}, oper, 1.e-14)

	_, err = AffineOperator(2, W, []mat.Matrix{mat.NewDense(2, 2, nil)}, 1)
	assert.Error(t, err)
	_, err = AffineOperator(4, W, nil, 1)
	assert.Error(t, err)
	_, err = AffineOperator(3, W, CartesianJacobians(2, 1, 1), 1)
	assert.Error(t, err)
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func TestJacobiP(t *testing.T) {
	X, W := GaussLegendre(10)
	// Test 4.1: orthonormal under the Gauss rule
	for m := 0; m < 6; m++ {
		Pm := JacobiP(X, 0, 0, m)
		for n := 0; n < 6; n++ {
			Pn := JacobiP(X, 0, 0, n)
			var ip float64
			for i := range X {
				ip += W[i] * Pm[i] * Pn[i]
			}
			want := 0.
			if m == n {
				want = 1.
			}
			assert.InDeltaf(t, want, ip, 1.e-12, "m=%d n=%d", m, n)
		}
	}
	// Test 4.2: P_2 is a scaled (3x^2-1)/2
	x := []float64{-0.3, 0.2, 0.9}
	P2, dP2 := JacobiP(x, 0, 0, 2), GradJacobiP(x, 0, 0, 2)
	norm := math.Sqrt(5. / 2.)
	for i, xi := range x {
		assert.InDelta(t, norm*(3*xi*xi-1)/2, P2[i], 1.e-14)
		assert.InDelta(t, norm*3*xi, dP2[i], 1.e-13)
	}
}

func TestModalTransferMatchesLagrange(t *testing.T) {
	for _, n := range []int{2, 4, 7, 12} {
		nodes := GaussLobatto(n)
		X, _ := GaussLegendre(n + 1)
		B, G := LagrangeTransfer(nodes, X)
		Bm, Gm, err := ModalTransfer(nodes, X)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(B, Bm, 1.e-11), "n=%d", n)
		assert.True(t, mat.EqualApprox(G, Gm, 1.e-9), "n=%d", n)
	}
}

func TestSourcesFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", name)
	}
}
