// Command kernelgen writes the host diffusion kernels: one function per
// registered (dim, dofs1D, quad1D) specialization, with constant loop bounds
// and scratch arrays sized exactly for that order.
//
// Usage:
//
//	kernelgen -output kernels_gen.go -package diffusion
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"go.uber.org/zap"
)

// Spec is one specialization to generate.
type Spec struct {
	Dim, Dofs1D, Quad1D int
}

// Name is the Go identifier of the generated kernel.
func (s Spec) Name() string {
	return fmt.Sprintf("multAdd%dD_d%d_q%d", s.Dim, s.Dofs1D, s.Quad1D)
}

// Entry is the table literal registering the kernel under its key.
func (s Spec) Entry() string {
	return fmt.Sprintf("{Key{%d, %d, %d}, %s}", s.Dim, s.Dofs1D, s.Quad1D, s.Name())
}

// Max1D sizes the scratch planes shared by the forward and backward passes.
func (s Spec) Max1D() int {
	if s.Dofs1D > s.Quad1D {
		return s.Dofs1D
	}
	return s.Quad1D
}

// Certified returns the orders validated against reference results:
// quadrilaterals with N = Q = 2..17 and the (2,3) hexahedron.
func Certified() (specs []Spec) {
	for n := 2; n <= 17; n++ {
		specs = append(specs, Spec{2, n, n})
	}
	return append(specs, Spec{3, 2, 3})
}

// Uncertified returns the hexahedral orders (N, N+1), N = 3..15, that are
// registered only on request.
func Uncertified() (specs []Spec) {
	for n := 3; n <= 15; n++ {
		specs = append(specs, Spec{3, n, n + 1})
	}
	return
}

// Generate renders and formats the kernel file for package pkg.
func Generate(pkg string) ([]byte, error) {
	data := struct {
		Package                string
		Certified, Uncertified []Spec
	}{pkg, Certified(), Uncertified()}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func main() {
	var (
		output = flag.String("output", "kernels_gen.go", "file to write")
		pkg    = flag.String("package", "diffusion", "package of the generated file")
	)
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment())
	defer logger.Sync()

	src, err := Generate(*pkg)
	if err != nil {
		logger.Fatal("generate kernels", zap.Error(err))
	}
	if err = os.WriteFile(*output, src, 0o644); err != nil {
		logger.Fatal("write kernels", zap.String("output", *output), zap.Error(err))
	}
	logger.Info("wrote host kernels",
		zap.String("output", *output),
		zap.Int("kernels", len(Certified())+len(Uncertified())))
}
