package runner

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/DGDiffusion/diffusion"
	"github.com/notargets/DGDiffusion/element"
	"github.com/notargets/DGDiffusion/parallel"
	"github.com/notargets/DGDiffusion/residency"
	"github.com/notargets/DGDiffusion/runner/builder"
	"github.com/notargets/DGDiffusion/utils"
)

// testOperands builds GLL/Gauss transfer matrices, a Cartesian operator
// tensor and a random input for K elements of key.
func testOperands(t *testing.T, key diffusion.Key, K int, seed int64) diffusion.Operands {
	t.Helper()
	basis, err := element.NewBasis1D(key.Dofs1D, key.Quad1D)
	require.NoError(t, err)
	oper, err := element.AffineOperator(key.Dim, basis.QuadWeights,
		element.CartesianJacobians(key.Dim, K, 0.5), 1.)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	solIn := make([]float64, key.FieldSize(K))
	for i := range solIn {
		solIn[i] = 2*rng.Float64() - 1
	}
	return diffusion.Operands{
		DofToQuad:  basis.DofToQuad(),
		DofToQuadD: basis.DofToQuadD(),
		QuadToDof:  basis.QuadToDof(),
		QuadToDofD: basis.QuadToDofD(),
		Oper:       oper,
		SolIn:      solIn,
		SolOut:     make([]float64, key.FieldSize(K)),
	}
}

func hostReference(t *testing.T, reg *diffusion.Registry, key diffusion.Key, K int, ops diffusion.Operands) []float64 {
	t.Helper()
	ref := ops
	ref.SolOut = append([]float64(nil), ops.SolOut...)
	require.NoError(t, reg.Apply(diffusion.NewHostTarget(parallel.Serial{}),
		key.Dim, key.Dofs1D, key.Quad1D, K, ref))
	return ref.SolOut
}

// ============================================================================
// Section 1: Creation
// ============================================================================

// Test 1.1: Device validation
func TestNewRunner(t *testing.T) {
	t.Run("NilDevice", func(t *testing.T) {
		assert.Panics(t, func() { NewRunner(nil, builder.Config{}) })
	})

	t.Run("Defaults", func(t *testing.T) {
		device := utils.CreateTestDevice()
		defer device.Free()
		kr := NewRunner(device, builder.Config{})
		defer kr.Free()
		assert.Equal(t, builder.Float64, kr.Config.FloatType)
		assert.Equal(t, builder.DefaultElementBlock, kr.Config.ElementBlock)
		assert.Equal(t, "occa/"+device.Mode(), kr.Name())
		assert.Empty(t, kr.Kernels)
	})
}

// ============================================================================
// Section 2: Residency
// ============================================================================

// Test 2.1: ReadWrite buffers round trip, ReadOnly buffers are never copied back
func TestAcquireRelease(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{})
	defer kr.Free()

	ro := []float64{1, 2, 3}
	rw := []float64{4, 5, 6}
	_, err := kr.Acquire("ro", ro, residency.ReadOnly)
	require.NoError(t, err)
	_, err = kr.Acquire("rw", rw, residency.ReadWrite)
	require.NoError(t, err)

	ro[0], rw[0] = -1, -4
	require.NoError(t, kr.Release())
	assert.Equal(t, []float64{-1, 2, 3}, ro)
	assert.Equal(t, []float64{4, 5, 6}, rw)
	assert.Empty(t, kr.bindings)

	_, err = kr.Acquire("bad", ro, residency.Mode(9))
	assert.Error(t, err)
}

// Test 2.2: single precision ReadWrite buffers are accumulated, so host
// values that float32 cannot represent survive a round trip exactly
func TestAcquireReleaseFloat32(t *testing.T) {
	assert.Equal(t, CopyTo, ActionsFor(residency.ReadOnly, builder.Float32))
	assert.Equal(t, Copy, ActionsFor(residency.ReadWrite, builder.Float64))
	assert.Equal(t, Accumulate, ActionsFor(residency.ReadWrite, builder.Float32))

	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{FloatType: builder.Float32})
	defer kr.Free()

	rw := []float64{1 + 1.e-12, -3.1415926535897931, 1.e-30}
	want := append([]float64(nil), rw...)
	_, err := kr.Acquire("rw", rw, residency.ReadWrite)
	require.NoError(t, err)
	require.NoError(t, kr.Release())
	assert.Equal(t, want, rw)
}

// Test 2.3: pooled memory is reused when large enough and grown otherwise
func TestPooledMemory(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{FloatType: builder.Float32})
	defer kr.Free()

	m1, err := kr.Acquire("x", make([]float64, 10), residency.ReadOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(40), kr.pooledBytes["x"])
	m2, err := kr.Acquire("x", make([]float64, 5), residency.ReadOnly)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	_, err = kr.Acquire("x", make([]float64, 20), residency.ReadOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(80), kr.pooledBytes["x"])
	_, err = kr.Acquire("empty", nil, residency.ReadWrite)
	require.NoError(t, err)
	require.NoError(t, kr.Release())
}

// ============================================================================
// Section 3: Execution against the host kernels
// ============================================================================

func TestLaunchMatchesHost(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	reg := diffusion.NewRegistry(diffusion.WithUncertified())

	testCases := []struct {
		name string
		key  diffusion.Key
		cfg  builder.Config
		tol  float64
		opts []Option
	}{
		{"2D_Float64", diffusion.Key{Dim: 2, Dofs1D: 3, Quad1D: 3}, builder.Config{}, 1.e-10, nil},
		{"2D_Order8_SmallBlock", diffusion.Key{Dim: 2, Dofs1D: 8, Quad1D: 8}, builder.Config{ElementBlock: 7}, 1.e-10, nil},
		{"3D_Float64", diffusion.Key{Dim: 3, Dofs1D: 2, Quad1D: 3}, builder.Config{}, 1.e-10, nil},
		{"3D_Uncertified", diffusion.Key{Dim: 3, Dofs1D: 4, Quad1D: 5}, builder.Config{}, 1.e-10, nil},
		{"2D_Float32", diffusion.Key{Dim: 2, Dofs1D: 4, Quad1D: 4}, builder.Config{FloatType: builder.Float32}, 1.e-3, nil},
		{"3D_StaticBasis", diffusion.Key{Dim: 3, Dofs1D: 3, Quad1D: 4}, builder.Config{}, 1.e-10, []Option{WithStaticBasis()}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kr := NewRunner(device, tc.cfg, tc.opts...)
			defer kr.Free()
			K := 20
			ops := testOperands(t, tc.key, K, 42)
			for i := range ops.SolOut {
				ops.SolOut[i] = 0.25
			}
			want := hostReference(t, reg, tc.key, K, ops)

			require.NoError(t, reg.Apply(kr, tc.key.Dim, tc.key.Dofs1D, tc.key.Quad1D, K, ops))
			if diff := cmp.Diff(want, ops.SolOut, cmpopts.EquateApprox(0, tc.tol)); diff != "" {
				t.Errorf("device result differs from host (-want +got):\n%s", diff)
			}
			assert.Len(t, kr.Kernels, 1)

			// second launch accumulates and reuses the compiled kernel
			want = hostReference(t, reg, tc.key, K, ops)
			require.NoError(t, reg.Apply(kr, tc.key.Dim, tc.key.Dofs1D, tc.key.Quad1D, K, ops))
			assert.Empty(t, cmp.Diff(want, ops.SolOut, cmpopts.EquateApprox(0, 2*tc.tol)))
			assert.Len(t, kr.Kernels, 1)
		})
	}
}

// Test 3.2: a single precision launch adds only its own contribution, the
// accumulated host values keep their double precision
func TestLaunchFloat32KeepsHostPrecision(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{FloatType: builder.Float32})
	defer kr.Free()
	reg := diffusion.Default()
	key := diffusion.Key{Dim: 2, Dofs1D: 3, Quad1D: 3}
	K := 4

	ops := testOperands(t, key, K, 9)
	ops.SolIn = make([]float64, key.FieldSize(K))
	for i := range ops.SolOut {
		ops.SolOut[i] = 1 + float64(i)*1.e-12
	}
	initial := append([]float64(nil), ops.SolOut...)
	require.NoError(t, reg.Apply(kr, key.Dim, key.Dofs1D, key.Quad1D, K, ops))
	assert.Equal(t, initial, ops.SolOut)

	ops = testOperands(t, key, K, 9)
	copy(ops.SolOut, initial)
	want := hostReference(t, reg, key, K, ops)
	require.NoError(t, reg.Apply(kr, key.Dim, key.Dofs1D, key.Quad1D, K, ops))
	assert.InDeltaSlice(t, want, ops.SolOut, 1.e-3)
}

// Test 3.3: a different basis compiles a new static kernel
func TestStaticBasisCache(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{}, WithStaticBasis())
	defer kr.Free()
	entry, err := diffusion.Default().Lookup(diffusion.Key{Dim: 2, Dofs1D: 3, Quad1D: 3})
	require.NoError(t, err)

	ops := testOperands(t, entry.Key, 1, 1)
	k1, err := kr.KernelFor(entry, ops)
	require.NoError(t, err)
	k2, err := kr.KernelFor(entry, ops)
	require.NoError(t, err)
	assert.Same(t, k1, k2)

	ops.DofToQuad = append([]float64(nil), ops.DofToQuad...)
	ops.DofToQuad[0] += 1
	_, err = kr.KernelFor(entry, ops)
	require.NoError(t, err)
	assert.Len(t, kr.Kernels, 2)
}

func TestLaunchValidatesOperands(t *testing.T) {
	device := utils.CreateTestDevice()
	defer device.Free()
	kr := NewRunner(device, builder.Config{})
	defer kr.Free()
	entry, err := diffusion.Default().Lookup(diffusion.Key{Dim: 2, Dofs1D: 2, Quad1D: 2})
	require.NoError(t, err)

	ops := testOperands(t, entry.Key, 3, 1)
	err = kr.Launch(entry, 4, ops)
	assert.Error(t, err)
	assert.Empty(t, kr.Kernels)
	assert.NoError(t, kr.Launch(entry, 0, ops))
}
