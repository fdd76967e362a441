package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kernelNames(t *testing.T, name string, src any) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	require.NoError(t, err)
	var names []string
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			names = append(names, fn.Name.Name)
		}
	}
	sort.Strings(names)
	return names
}

func TestSpecs(t *testing.T) {
	certified, uncertified := Certified(), Uncertified()
	require.Len(t, certified, 17)
	require.Len(t, uncertified, 13)
	assert.Equal(t, Spec{2, 2, 2}, certified[0])
	assert.Equal(t, Spec{3, 2, 3}, certified[16])
	assert.Equal(t, Spec{3, 15, 16}, uncertified[12])

	s := Spec{3, 4, 5}
	assert.Equal(t, "multAdd3D_d4_q5", s.Name())
	assert.Equal(t, "{Key{3, 4, 5}, multAdd3D_d4_q5}", s.Entry())
	assert.Equal(t, 5, s.Max1D())
	assert.Equal(t, 7, Spec{2, 7, 7}.Max1D())
}

func TestGenerate(t *testing.T) {
	src, err := Generate("diffusion")
	require.NoError(t, err)

	var want []string
	for _, s := range append(Certified(), Uncertified()...) {
		want = append(want, s.Name())
	}
	sort.Strings(want)
	assert.Equal(t, want, kernelNames(t, "kernels_gen.go", src))

	assert.Contains(t, string(src), "// Code generated by kernelgen. DO NOT EDIT.")
	assert.Contains(t, string(src), "\t{Key{2, 17, 17}, multAdd2D_d17_q17},\n")
	assert.Contains(t, string(src), "grad   [nq][nq][nq][3]float64\n")
}

// The committed kernel file declares exactly the kernels the generator emits.
func TestCheckedInKernelsCurrent(t *testing.T) {
	src, err := Generate("diffusion")
	require.NoError(t, err)
	checkedIn, err := os.ReadFile("../../../diffusion/kernels_gen.go")
	require.NoError(t, err)
	assert.Equal(t, kernelNames(t, "generated", src), kernelNames(t, "kernels_gen.go", checkedIn))
}
