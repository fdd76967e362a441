package diffusion

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/notargets/DGDiffusion/parallel"
)

func TestKey(t *testing.T) {
	k := Key{Dim: 3, Dofs1D: 2, Quad1D: 3}
	assert.Equal(t, uint32(0x30203), k.Code())
	assert.Equal(t, "0x30203 (dim=3, dofs1D=2, quad1D=3)", k.String())
	assert.Equal(t, 8, k.NumDofs())
	assert.Equal(t, 27, k.NumQuad())
	assert.Equal(t, 6, k.BasisSize())
	assert.Equal(t, 6*27*5, k.OperSize(5))
	assert.Equal(t, 40, k.FieldSize(5))

	k2 := Key{2, 17, 17}
	assert.Equal(t, uint32(0x21111), k2.Code())
	assert.Equal(t, 3*289*2, k2.OperSize(2))
}

func TestRegistryKeys(t *testing.T) {
	certified := NewRegistry().Keys()
	require.Len(t, certified, 17)
	all := NewRegistry(WithUncertified()).Keys()
	require.Len(t, all, 30)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code(), all[i].Code())
	}
	for n := 2; n <= 17; n++ {
		assert.Contains(t, certified, Key{2, n, n})
	}
	assert.Contains(t, certified, Key{3, 2, 3})
	for n := 3; n <= 15; n++ {
		assert.NotContains(t, certified, Key{3, n, n + 1})
		assert.Contains(t, all, Key{3, n, n + 1})
	}

	entry, err := NewRegistry(WithUncertified()).Lookup(Key{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, "diffusion3d_d4_q5", entry.Signature)
	assert.False(t, entry.Certified)
	entry, err = Default().Lookup(Key{2, 5, 5})
	require.NoError(t, err)
	assert.True(t, entry.Certified)
	assert.Same(t, Default(), Default())
}

// Each key owns its own generated kernel with compile-time sizes.
func TestSpecializationsAreDistinct(t *testing.T) {
	reg := NewRegistry(WithUncertified())
	seen := make(map[uintptr]Key)
	for _, key := range reg.Keys() {
		entry, err := reg.Lookup(key)
		require.NoError(t, err)
		require.NotNil(t, entry.kernel, key.String())
		pc := reflect.ValueOf(entry.kernel).Pointer()
		if prev, dup := seen[pc]; dup {
			t.Errorf("%v shares its host kernel with %v", key, prev)
		}
		seen[pc] = key

		name := fmt.Sprintf(".multAdd%dD_d%d_q%d", key.Dim, key.Dofs1D, key.Quad1D)
		assert.True(t, strings.HasSuffix(runtime.FuncForPC(pc).Name(), name),
			"%v is served by %s", key, runtime.FuncForPC(pc).Name())
	}
	assert.Len(t, seen, 30)
	assert.Len(t, certifiedKernels, 17)
	assert.Len(t, uncertifiedKernels, 13)
}

// Every registered key resolves to a kernel that maps zero input to zero output.
func TestDispatchCompleteness(t *testing.T) {
	reg := NewRegistry(WithUncertified())
	host := NewHostTarget(parallel.Serial{})
	rng := rand.New(rand.NewSource(1))
	for _, key := range reg.Keys() {
		ops := randomOperands(rng, key, 1, false)
		ops.SolIn = make([]float64, key.FieldSize(1))
		require.NoError(t, reg.Apply(host, key.Dim, key.Dofs1D, key.Quad1D, 1, ops), key.String())
		for _, v := range ops.SolOut {
			if v != 0 {
				t.Fatalf("%v: nonzero output %g for zero input", key, v)
			}
		}
	}
}

func TestDispatchMiss(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	var fatals []error
	reg := NewRegistry(
		WithLogger(zap.New(core)),
		WithFatalHandler(func(err error) { fatals = append(fatals, err) }),
	)
	target := &countingTarget{}
	ops := randomOperands(rand.New(rand.NewSource(4)), Key{2, 3, 3}, 10, false)

	// Test 1: missing dimension, order and uncertified order
	for i, key := range []Key{{4, 2, 2}, {2, 3, 4}, {3, 3, 4}, {2, 18, 18}} {
		err := reg.Apply(target, key.Dim, key.Dofs1D, key.Quad1D, 10, ops)
		var unsupported *UnsupportedError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, key, unsupported.Key)
		assert.Contains(t, err.Error(), key.String())
		require.Len(t, fatals, i+1, "fatal handler runs exactly once per miss")
		assert.Equal(t, err, fatals[i])
		assert.Zero(t, target.launches)
	}
	assert.Equal(t, 4, logs.FilterMessage("diffusion kernel not compiled").Len())

	// Test 2: a hit launches once and never reaches the fatal handler
	require.NoError(t, reg.Apply(target, 2, 3, 3, 10, ops))
	assert.Equal(t, 1, target.launches)
	assert.Len(t, fatals, 4)

	// Test 3: the default handler panics with the key
	want := (&UnsupportedError{Key: Key{2, 3, 4}}).Error()
	assert.PanicsWithError(t, want, func() {
		_ = NewRegistry().Apply(target, 2, 3, 4, 1, ops)
	})
	assert.Equal(t, 1, target.launches)
}

func TestOperandsValidate(t *testing.T) {
	key := Key{2, 3, 4}
	rng := rand.New(rand.NewSource(2))
	ops := randomOperands(rng, key, 5, false)
	assert.NoError(t, ops.Validate(key, 5))
	assert.Error(t, ops.Validate(key, 6))

	short := ops
	short.QuadToDofD = short.QuadToDofD[:key.BasisSize()-1]
	err := short.Validate(key, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quadToDofD")
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 7, IJ(3, 1, 4))
	assert.Equal(t, 1+2*3+1*9, IJK(1, 2, 1, 3))
	assert.Equal(t, 1+2*3+2*9+1*27, IJKL(1, 2, 2, 1, 3))
	assert.Equal(t, 2+4*6+1*6*8, IJKNM(2, 4, 1, 6, 8))
	assert.Equal(t, QuadID2D(2, 3, 5), IJ(2, 3, 5))
	assert.Equal(t, 1+2*4+3*16, QuadID3D(1, 2, 3, 4))
	assert.Equal(t, 3, NumComponents(2))
	assert.Equal(t, 6, NumComponents(3))
	assert.Equal(t, 1, IntPow(7, 0))
	assert.Equal(t, 4913, IntPow(17, 3))
}
