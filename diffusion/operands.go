package diffusion

import (
	"fmt"

	"github.com/notargets/DGDiffusion/residency"
)

// Key identifies one compiled specialization of the diffusion operator.
type Key struct {
	Dim    int // 2 or 3
	Dofs1D int // dofs per dimension
	Quad1D int // quadrature points per dimension
}

// Code packs the key as dim<<16 | dofs<<8 | quad, the form used in error reports.
func (k Key) Code() uint32 {
	return uint32(k.Dim)<<16 | uint32(k.Dofs1D)<<8 | uint32(k.Quad1D)
}

func (k Key) String() string {
	return fmt.Sprintf("0x%X (dim=%d, dofs1D=%d, quad1D=%d)", k.Code(), k.Dim, k.Dofs1D, k.Quad1D)
}

// NumDofs is the number of dofs of one element.
func (k Key) NumDofs() int { return IntPow(k.Dofs1D, k.Dim) }

// NumQuad is the number of quadrature points of one element.
func (k Key) NumQuad() int { return IntPow(k.Quad1D, k.Dim) }

// BasisSize is the length of each of the four 1-D transfer matrices.
func (k Key) BasisSize() int { return k.Dofs1D * k.Quad1D }

// OperSize is the length of the operator tensor for numElements elements.
func (k Key) OperSize(numElements int) int {
	return NumComponents(k.Dim) * k.NumQuad() * numElements
}

// FieldSize is the length of solIn/solOut for numElements elements.
func (k Key) FieldSize(numElements int) int { return k.NumDofs() * numElements }

// Operands gathers the seven caller-owned buffers of one operator application.
// SolOut is accumulated into, never overwritten.
type Operands struct {
	DofToQuad  []float64
	DofToQuadD []float64
	QuadToDof  []float64
	QuadToDofD []float64
	Oper       []float64
	SolIn      []float64
	SolOut     []float64
}

// Validate checks every buffer length against the sizes implied by key and numElements.
func (o Operands) Validate(key Key, numElements int) error {
	checks := []struct {
		name     string
		got, min int
	}{
		{"dofToQuad", len(o.DofToQuad), key.BasisSize()},
		{"dofToQuadD", len(o.DofToQuadD), key.BasisSize()},
		{"quadToDof", len(o.QuadToDof), key.BasisSize()},
		{"quadToDofD", len(o.QuadToDofD), key.BasisSize()},
		{"oper", len(o.Oper), key.OperSize(numElements)},
		{"solIn", len(o.SolIn), key.FieldSize(numElements)},
		{"solOut", len(o.SolOut), key.FieldSize(numElements)},
	}
	for _, c := range checks {
		if c.got < c.min {
			return fmt.Errorf("operand %s for %v and %d elements: have %d values, need %d",
				c.name, key, numElements, c.got, c.min)
		}
	}
	return nil
}

// Views holds the execution-ready form of each operand on some target.
type Views[V any] struct {
	DofToQuad  V
	DofToQuadD V
	QuadToDof  V
	QuadToDofD V
	Oper       V
	SolIn      V
	SolOut     V
}

// AcquireViews obtains a view of every operand from acc: the basis matrices,
// oper and solIn read-only, solOut read-write. The caller releases acc.
func AcquireViews[V any](acc residency.Accessor[V], ops Operands) (v Views[V], err error) {
	acquire := func(dst *V, name string, host []float64, mode residency.Mode) {
		if err != nil {
			return
		}
		if *dst, err = acc.Acquire(name, host, mode); err != nil {
			err = fmt.Errorf("acquire %s: %w", name, err)
		}
	}
	acquire(&v.DofToQuad, "dofToQuad", ops.DofToQuad, residency.ReadOnly)
	acquire(&v.DofToQuadD, "dofToQuadD", ops.DofToQuadD, residency.ReadOnly)
	acquire(&v.QuadToDof, "quadToDof", ops.QuadToDof, residency.ReadOnly)
	acquire(&v.QuadToDofD, "quadToDofD", ops.QuadToDofD, residency.ReadOnly)
	acquire(&v.Oper, "oper", ops.Oper, residency.ReadOnly)
	acquire(&v.SolIn, "solIn", ops.SolIn, residency.ReadOnly)
	acquire(&v.SolOut, "solOut", ops.SolOut, residency.ReadWrite)
	return
}
