package diffusion

import (
	"sync"

	"github.com/notargets/DGDiffusion/parallel"
	"github.com/notargets/DGDiffusion/residency"
)

// Target launches a resolved specialization over a batch of elements.
type Target interface {
	Name() string
	Launch(entry *Entry, numElements int, ops Operands) error
}

// HostTarget runs the Go kernels in host memory through a parallel executor.
type HostTarget struct {
	Accessor residency.Accessor[[]float64]
	Executor parallel.Executor
}

func NewHostTarget(exec parallel.Executor) *HostTarget {
	if exec == nil {
		exec = parallel.Serial{}
	}
	return &HostTarget{Accessor: residency.Host{}, Executor: exec}
}

func (h *HostTarget) Name() string { return "host" }

func (h *HostTarget) Launch(entry *Entry, numElements int, ops Operands) error {
	views, err := AcquireViews(h.Accessor, ops)
	if err != nil {
		return err
	}
	entry.MultAdd(h.Executor, numElements, Operands(views))
	return h.Accessor.Release()
}

var (
	defaultHost     *HostTarget
	defaultHostOnce sync.Once
)

// ApplyDiffusion accumulates solOut += A(oper)·solIn on the host for every
// element, using the default registry and all CPUs.
func ApplyDiffusion(dim, dofs1D, quad1D, numElements int,
	dofToQuad, dofToQuadD, quadToDof, quadToDofD, oper, solIn, solOut []float64) error {
	defaultHostOnce.Do(func() {
		defaultHost = NewHostTarget(parallel.NewThreaded(0))
	})
	return Default().Apply(defaultHost, dim, dofs1D, quad1D, numElements, Operands{
		DofToQuad:  dofToQuad,
		DofToQuadD: dofToQuadD,
		QuadToDof:  quadToDof,
		QuadToDofD: quadToDofD,
		Oper:       oper,
		SolIn:      solIn,
		SolOut:     solOut,
	})
}
