package diffusion

import "github.com/notargets/DGDiffusion/parallel"

//go:generate go run ../internal/cmd/kernelgen -output kernels_gen.go -package diffusion

// hostKernel computes solOut += A(oper)·solIn for numElements elements of
// one fixed order. Each task of exec keeps its scratch on its own stack.
type hostKernel func(exec parallel.Executor, numElements int, b Operands)

// specialization binds a key to its generated kernel.
type specialization struct {
	key    Key
	kernel hostKernel
}
