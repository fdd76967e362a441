package runner

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/notargets/gocca"
	"go.uber.org/zap"

	"github.com/notargets/DGDiffusion/diffusion"
	"github.com/notargets/DGDiffusion/residency"
	"github.com/notargets/DGDiffusion/runner/builder"
)

// Runner executes registry entries as OCCA kernels. It implements
// diffusion.Target and, over pooled device memory, residency.Accessor.
// A Runner is not safe for concurrent use.
type Runner struct {
	Device       *gocca.OCCADevice
	Config       builder.Config
	StaticBasis  bool // embed the basis matrices in each compiled kernel
	Kernels      map[string]*gocca.OCCAKernel
	PooledMemory map[string]*gocca.OCCAMemory
	pooledBytes  map[string]int64
	bindings     []*DeviceBinding
	logger       *zap.Logger
}

var (
	_ diffusion.Target                      = (*Runner)(nil)
	_ residency.Accessor[*gocca.OCCAMemory] = (*Runner)(nil)
)

type Option func(*Runner)

func WithLogger(logger *zap.Logger) Option {
	return func(kr *Runner) { kr.logger = logger }
}

// WithStaticBasis compiles the transfer matrices into the kernel source.
// Kernels are then cached per basis as well as per specialization.
func WithStaticBasis() Option {
	return func(kr *Runner) { kr.StaticBasis = true }
}

// NewRunner creates a new Runner instance
func NewRunner(device *gocca.OCCADevice, cfg builder.Config, opts ...Option) (kr *Runner) {
	if device == nil {
		panic("device cannot be nil")
	}
	if cfg.FloatType == 0 {
		cfg.FloatType = builder.Float64
	}
	if cfg.ElementBlock <= 0 {
		cfg.ElementBlock = builder.DefaultElementBlock
	}
	kr = &Runner{
		Device:       device,
		Config:       cfg,
		Kernels:      make(map[string]*gocca.OCCAKernel),
		PooledMemory: make(map[string]*gocca.OCCAMemory),
		pooledBytes:  make(map[string]int64),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(kr)
	}
	return
}

func (kr *Runner) Name() string { return "occa/" + kr.Device.Mode() }

// Launch runs entry on the device for numElements elements. Operand sizes
// are validated before anything is copied.
func (kr *Runner) Launch(entry *diffusion.Entry, numElements int, ops diffusion.Operands) (err error) {
	if numElements <= 0 {
		return
	}
	if err = ops.Validate(entry.Key, numElements); err != nil {
		return
	}
	var kernel *gocca.OCCAKernel
	if kernel, err = kr.KernelFor(entry, ops); err != nil {
		return
	}
	views, err := diffusion.AcquireViews[*gocca.OCCAMemory](kr, ops)
	if err != nil {
		_ = kr.Release()
		return
	}
	if err = kernel.RunWithArgs(int32(numElements),
		views.DofToQuad, views.DofToQuadD, views.QuadToDof, views.QuadToDofD,
		views.Oper, views.SolIn, views.SolOut); err != nil {
		_ = kr.Release()
		return fmt.Errorf("kernel %s execution failed: %w", entry.Signature, err)
	}
	kr.Device.Finish()
	return kr.Release()
}

// KernelFor returns the compiled kernel of entry, building it on first use.
func (kr *Runner) KernelFor(entry *diffusion.Entry, ops diffusion.Operands) (*gocca.OCCAKernel, error) {
	name := entry.Signature
	kb := builder.NewBuilder(entry.Key, kr.Config)
	if kr.StaticBasis {
		name = fmt.Sprintf("%s_%016x", name, basisFingerprint(ops))
		kb.SetStaticBasis(ops.DofToQuad, ops.DofToQuadD, ops.QuadToDof, ops.QuadToDofD)
	}
	if kernel, ok := kr.Kernels[name]; ok {
		return kernel, nil
	}
	return kr.BuildKernel(kb.GenerateKernel(name), name)
}

// BuildKernel compiles and registers a kernel
func (kr *Runner) BuildKernel(kernelSource, kernelName string) (*gocca.OCCAKernel, error) {
	var (
		kernel *gocca.OCCAKernel
		err    error
	)
	if kr.Device.Mode() == "OpenMP" {
		// Workaround for OCCA bug: OpenMP doesn't get default -O3 flag
		props := gocca.JsonParse(`{"compiler_flags": "-O3"}`)
		defer props.Free()
		kernel, err = kr.Device.BuildKernelFromString(kernelSource, kernelName, props)
	} else {
		kernel, err = kr.Device.BuildKernelFromString(kernelSource, kernelName, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build kernel %s: %w", kernelName, err)
	}
	if kernel == nil {
		return nil, fmt.Errorf("kernel build returned nil for %s", kernelName)
	}
	kr.logger.Info("built diffusion kernel",
		zap.String("kernel", kernelName),
		zap.String("mode", kr.Device.Mode()),
		zap.Stringer("precision", kr.Config.FloatType))
	kr.Kernels[kernelName] = kernel
	return kernel, nil
}

// Free releases all resources
func (kr *Runner) Free() {
	for _, kernel := range kr.Kernels {
		kernel.Free()
	}
	for _, mem := range kr.PooledMemory {
		mem.Free()
	}
	kr.Kernels = make(map[string]*gocca.OCCAKernel)
	kr.PooledMemory = make(map[string]*gocca.OCCAMemory)
	kr.pooledBytes = make(map[string]int64)
}

func basisFingerprint(ops diffusion.Operands) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, b := range [][]float64{ops.DofToQuad, ops.DofToQuadD, ops.QuadToDof, ops.QuadToDofD} {
		for _, v := range b {
			bits := math.Float64bits(v)
			for i := range buf {
				buf[i] = byte(bits >> (8 * i))
			}
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}
