package diffusion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/DGDiffusion/parallel"
)

var approx = cmpopts.EquateApprox(0, 1.e-9)

func allKeysRegistry() *Registry { return NewRegistry(WithUncertified()) }

func apply(t *testing.T, reg *Registry, target Target, key Key, K int, ops Operands) {
	t.Helper()
	require.NoError(t, reg.Apply(target, key.Dim, key.Dofs1D, key.Quad1D, K, ops))
}

func TestMultAddMatchesDense(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.Serial{})
	for _, key := range []Key{{2, 2, 2}, {2, 5, 5}, {2, 17, 17}, {3, 2, 3}, {3, 3, 4}, {3, 5, 6}} {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(key.Code())))
			K := 3
			ops := randomOperands(rng, key, K, false)
			apply(t, reg, host, key, K, ops)
			want := denseApply(key, K, ops)
			if diff := cmp.Diff(want, ops.SolOut, approx); diff != "" {
				t.Errorf("sum factorized result differs from dense (-want +got):\n%s", diff)
			}
		})
	}
}

// Every generated specialization, certified or not, agrees with the
// unfactorized evaluation.
func TestEverySpecializationMatchesReference(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.NewThreaded(2))
	for _, key := range reg.Keys() {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(key.Code())))
			K := 2
			if key.Dim == 3 {
				K = 1
			}
			ops := randomOperands(rng, key, K, false)
			initial := randomOperands(rng, key, K, false).SolIn
			ops.SolOut = append([]float64(nil), initial...)
			apply(t, reg, host, key, K, ops)

			want := directApply(key, K, ops)
			floats.Add(want, initial)
			tol := 1.e-10 * floats.Norm(want, math.Inf(1))
			assert.InDeltaSlice(t, want, ops.SolOut, tol)
		})
	}
}

func TestLinearity(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.Serial{})
	for _, key := range []Key{{2, 4, 4}, {3, 2, 3}, {3, 3, 4}} {
		t.Run(key.String(), func(t *testing.T) {
			var (
				rng         = rand.New(rand.NewSource(7))
				K           = 2
				ops         = randomOperands(rng, key, K, false)
				u           = append([]float64(nil), ops.SolIn...)
				v           = randomOperands(rng, key, K, false).SolIn
				alpha, beta = 0.75, -2.5
			)
			apply(t, reg, host, key, K, ops)
			Au := append([]float64(nil), ops.SolOut...)

			ops.SolIn, ops.SolOut = v, make([]float64, len(u))
			apply(t, reg, host, key, K, ops)
			Av := ops.SolOut

			w := make([]float64, len(u))
			floats.AddScaledTo(w, w, alpha, u)
			floats.AddScaled(w, beta, v)
			ops.SolIn, ops.SolOut = w, make([]float64, len(u))
			apply(t, reg, host, key, K, ops)

			want := make([]float64, len(u))
			floats.AddScaledTo(want, want, alpha, Au)
			floats.AddScaled(want, beta, Av)
			if diff := cmp.Diff(want, ops.SolOut, approx); diff != "" {
				t.Errorf("operator is not linear (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAccumulation(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.Serial{})
	for _, key := range []Key{{2, 3, 3}, {3, 2, 3}} {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(11))
			K := 4
			ops := randomOperands(rng, key, K, false)
			Au := denseApply(key, K, ops)

			// Test 1: applying twice to a zero output doubles it
			apply(t, reg, host, key, K, ops)
			apply(t, reg, host, key, K, ops)
			want := append([]float64(nil), Au...)
			floats.Scale(2, want)
			assert.Empty(t, cmp.Diff(want, ops.SolOut, approx))

			// Test 2: existing output is added to, never overwritten
			initial := randomOperands(rng, key, K, false).SolIn
			ops.SolOut = append([]float64(nil), initial...)
			apply(t, reg, host, key, K, ops)
			floats.AddTo(want, initial, Au)
			assert.Empty(t, cmp.Diff(want, ops.SolOut, approx))
		})
	}
}

// With quadToDof = dofToQuadᵀ and a symmetric tensor the element matrix is
// symmetric. Columns are recovered by applying the kernel to unit vectors.
func TestSymmetry(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.Serial{})
	for _, key := range []Key{{2, 2, 2}, {2, 4, 4}, {3, 2, 3}, {3, 3, 4}} {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			ops := randomOperands(rng, key, 1, true)
			n := key.NumDofs()
			A := mat.NewDense(n, n, nil)
			for j := 0; j < n; j++ {
				ops.SolIn = make([]float64, n)
				ops.SolIn[j] = 1
				ops.SolOut = make([]float64, n)
				apply(t, reg, host, key, 1, ops)
				A.SetCol(j, ops.SolOut)
			}
			assert.True(t, mat.EqualApprox(A, A.T(), 1.e-10))
			assert.True(t, mat.EqualApprox(A, denseElementMatrix(key, ops, 0), 1.e-10))
		})
	}
}

// Identity interpolation with a forward difference derivative turns the
// operator into the 5-point graph Laplacian DᵀD⊗I + I⊗DᵀD.
func TestDiscreteLaplacian(t *testing.T) {
	const N = 4
	var (
		eye  = make([]float64, N*N)
		D    = make([]float64, N*N) // dofToQuadD[IJ(q,d,N)]
		DT   = make([]float64, N*N) // quadToDofD[IJ(d,q,N)] = D(q,d)
		oper = make([]float64, 3*N*N)
		u    = make([]float64, N*N)
	)
	for i := 0; i < N; i++ {
		eye[IJ(i, i, N)] = 1
	}
	for q := 0; q < N-1; q++ {
		D[IJ(q, q, N)], D[IJ(q, q+1, N)] = -1, 1
		DT[IJ(q, q, N)], DT[IJ(q+1, q, N)] = -1, 1
	}
	for q := 0; q < N*N; q++ {
		oper[IJKNM(0, q, 0, 3, N*N)] = 1
		oper[IJKNM(2, q, 0, 3, N*N)] = 1
	}
	for iy := 0; iy < N; iy++ {
		for ix := 0; ix < N; ix++ {
			u[IJK(ix, iy, 0, N)] = float64(ix*ix + iy*iy)
		}
	}
	ops := Operands{
		DofToQuad: eye, DofToQuadD: D,
		QuadToDof: eye, QuadToDofD: DT,
		Oper: oper, SolIn: u, SolOut: make([]float64, N*N),
	}
	require.NoError(t, NewRegistry().Apply(NewHostTarget(nil), 2, N, N, 1, ops))

	Lf := []float64{-1, -2, -2, 5}
	want := make([]float64, N*N)
	for iy := 0; iy < N; iy++ {
		for ix := 0; ix < N; ix++ {
			want[IJK(ix, iy, 0, N)] = Lf[ix] + Lf[iy]
		}
	}
	assert.InDeltaSlice(t, want, ops.SolOut, 1.e-14)
}

// Element e reads and writes only its own slices of oper, solIn and solOut.
func TestDisjointness(t *testing.T) {
	reg := allKeysRegistry()
	host := NewHostTarget(parallel.Serial{})
	for _, key := range []Key{{2, 3, 3}, {3, 3, 4}} {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			ops := randomOperands(rng, key, 2, false)
			nDofs, operLen := key.NumDofs(), key.OperSize(1)
			for i := operLen; i < 2*operLen; i++ {
				ops.Oper[i] = 0
			}
			initial := randomOperands(rng, key, 2, false).SolIn
			ops.SolOut = append([]float64(nil), initial...)
			apply(t, reg, host, key, 2, ops)
			assert.Equal(t, initial[nDofs:], ops.SolOut[nDofs:])
			first := append([]float64(nil), ops.SolOut[:nDofs]...)

			// perturbing element 1's input leaves element 0's output unchanged
			for i := nDofs; i < 2*nDofs; i++ {
				ops.SolIn[i] += 10
			}
			ops.SolOut = append([]float64(nil), initial...)
			apply(t, reg, host, key, 2, ops)
			assert.Equal(t, first, ops.SolOut[:nDofs])
		})
	}
}

func TestExecutorsAgree(t *testing.T) {
	reg := allKeysRegistry()
	for _, key := range []Key{{2, 6, 6}, {3, 2, 3}, {3, 4, 5}} {
		t.Run(key.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(13))
			K := 37
			serial := randomOperands(rng, key, K, false)
			threaded := serial
			threaded.SolOut = make([]float64, len(serial.SolOut))
			apply(t, reg, NewHostTarget(parallel.Serial{}), key, K, serial)
			apply(t, reg, NewHostTarget(parallel.NewThreaded(4)), key, K, threaded)
			assert.Equal(t, serial.SolOut, threaded.SolOut)
		})
	}
}

func TestApplyDiffusion(t *testing.T) {
	key := Key{2, 3, 3}
	rng := rand.New(rand.NewSource(17))
	K := 9
	ops := randomOperands(rng, key, K, true)
	require.NoError(t, ApplyDiffusion(2, 3, 3, K, ops.DofToQuad, ops.DofToQuadD,
		ops.QuadToDof, ops.QuadToDofD, ops.Oper, ops.SolIn, ops.SolOut))
	assert.Empty(t, cmp.Diff(denseApply(key, K, ops), ops.SolOut, approx))
}
