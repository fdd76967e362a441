package builder

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/DGDiffusion/diffusion"
)

// DataType represents the precision of numerical data
type DataType int

const (
	Float32 DataType = iota + 1
	Float64
)

func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// Size returns the width of one value in bytes
func (dt DataType) Size() int {
	if dt == Float32 {
		return 4
	}
	return 8
}

const DefaultElementBlock = 64

// Names of the embedded basis tables
const (
	StaticDofToQuad  = "DOF_TO_QUAD_S"
	StaticDofToQuadD = "DOF_TO_QUAD_D_S"
	StaticQuadToDof  = "QUAD_TO_DOF_S"
	StaticQuadToDofD = "QUAD_TO_DOF_D_S"
)

// Config holds configuration for creating a Builder
type Config struct {
	FloatType    DataType
	ElementBlock int // elements per @outer block
}

// Builder generates the OKL source of one diffusion specialization
type Builder struct {
	Key          diffusion.Key
	FloatType    DataType
	ElementBlock int

	// Basis matrices embedded as constant tables instead of kernel arguments
	StaticMatrices map[string]mat.Matrix

	// Generated code
	KernelPreamble string
}

// NewBuilder creates a new Builder instance
func NewBuilder(key diffusion.Key, cfg Config) *Builder {
	if key.Dim != 2 && key.Dim != 3 {
		panic(fmt.Sprintf("unsupported dimension %d", key.Dim))
	}
	if key.Dofs1D < 1 || key.Quad1D < 1 {
		panic(fmt.Sprintf("invalid specialization %v", key))
	}
	floatType := cfg.FloatType
	if floatType == 0 {
		floatType = Float64
	}
	block := cfg.ElementBlock
	if block <= 0 {
		block = DefaultElementBlock
	}
	return &Builder{
		Key:            key,
		FloatType:      floatType,
		ElementBlock:   block,
		StaticMatrices: make(map[string]mat.Matrix),
	}
}

// AddStaticMatrix adds a matrix to be embedded as static const in the kernel
func (kb *Builder) AddStaticMatrix(name string, m mat.Matrix) {
	kb.StaticMatrices[name] = m
}

// SetStaticBasis embeds the four 1-D transfer matrices, given in their flat
// kernel layouts, as constant tables.
func (kb *Builder) SetStaticBasis(dofToQuad, dofToQuadD, quadToDof, quadToDofD []float64) {
	nd, nq := kb.Key.Dofs1D, kb.Key.Quad1D
	// dofToQuad[q+d*Q] read row-major is the (d,q) matrix; transpose to (q,d)
	fwd := func(b []float64) mat.Matrix {
		return mat.DenseCopyOf(mat.NewDense(nd, nq, b[:nd*nq]).T())
	}
	bwd := func(b []float64) mat.Matrix {
		return mat.DenseCopyOf(mat.NewDense(nq, nd, b[:nd*nq]).T())
	}
	kb.AddStaticMatrix(StaticDofToQuad, fwd(dofToQuad))
	kb.AddStaticMatrix(StaticDofToQuadD, fwd(dofToQuadD))
	kb.AddStaticMatrix(StaticQuadToDof, bwd(quadToDof))
	kb.AddStaticMatrix(StaticQuadToDofD, bwd(quadToDofD))
}

func (kb *Builder) hasStaticBasis() bool {
	for _, name := range []string{StaticDofToQuad, StaticDofToQuadD, StaticQuadToDof, StaticQuadToDofD} {
		if _, ok := kb.StaticMatrices[name]; !ok {
			return false
		}
	}
	return true
}

// GeneratePreamble generates the kernel preamble with static data and utilities
func (kb *Builder) GeneratePreamble() string {
	var sb strings.Builder

	// 1. Type definitions and constants
	sb.WriteString(kb.generateTypeDefinitions())

	// 2. Static matrix declarations
	sb.WriteString(kb.generateStaticMatrices())

	// 3. Index and basis access macros
	sb.WriteString(kb.generateIndexMacros())

	kb.KernelPreamble = sb.String()
	return kb.KernelPreamble
}

// GenerateKernel returns the complete OKL source of the kernel called name
func (kb *Builder) GenerateKernel(name string) string {
	var sb strings.Builder
	sb.WriteString(kb.GeneratePreamble())
	sb.WriteString(fmt.Sprintf("@kernel void %s(%s) {", name, kernelArgs))
	if kb.Key.Dim == 2 {
		sb.WriteString(kernel2DBody)
	} else {
		sb.WriteString(kernel3DBody)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (kb *Builder) generateTypeDefinitions() string {
	var sb strings.Builder

	floatSuffix := ""
	if kb.FloatType == Float32 {
		floatSuffix = "f"
	}
	sb.WriteString(fmt.Sprintf("typedef %s real_t;\n", kb.FloatType))
	sb.WriteString(fmt.Sprintf("#define REAL_ZERO 0.0%s\n", floatSuffix))
	sb.WriteString("\n")

	max1D := kb.Key.Dofs1D
	if kb.Key.Quad1D > max1D {
		max1D = kb.Key.Quad1D
	}
	sb.WriteString(fmt.Sprintf("#define NUM_DOFS_1D %d\n", kb.Key.Dofs1D))
	sb.WriteString(fmt.Sprintf("#define NUM_QUAD_1D %d\n", kb.Key.Quad1D))
	sb.WriteString(fmt.Sprintf("#define NUM_QUAD %d\n", kb.Key.NumQuad()))
	sb.WriteString(fmt.Sprintf("#define MAX_1D %d\n", max1D))
	sb.WriteString(fmt.Sprintf("#define ELEMENT_BLOCK %d\n", kb.ElementBlock))
	sb.WriteString("\n")

	return sb.String()
}

func (kb *Builder) generateStaticMatrices() string {
	var sb strings.Builder

	if len(kb.StaticMatrices) > 0 {
		names := make([]string, 0, len(kb.StaticMatrices))
		for name := range kb.StaticMatrices {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString("// Static matrices\n")
		for _, name := range names {
			sb.WriteString(kb.formatStaticMatrix(name, kb.StaticMatrices[name]))
		}
	}

	return sb.String()
}

// formatStaticMatrix formats a single matrix as a static C array declared
// [cols][rows], so the first (row) index varies fastest in memory.
func (kb *Builder) formatStaticMatrix(name string, m mat.Matrix) string {
	rows, cols := m.Dims()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Matrix %s stored in column-major format\n", name))
	sb.WriteString(fmt.Sprintf("const %s %s[%d][%d] = {\n", kb.FloatType, name, cols, rows))

	for j := 0; j < cols; j++ {
		sb.WriteString("    {")
		for i := 0; i < rows; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			val := m.At(i, j)
			if kb.FloatType == Float32 {
				sb.WriteString(fmt.Sprintf("%.7ef", val))
			} else {
				sb.WriteString(fmt.Sprintf("%.15e", val))
			}
		}
		sb.WriteString("}")
		if j < cols-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("};\n\n")

	return sb.String()
}

func (kb *Builder) generateIndexMacros() string {
	var sb strings.Builder

	sb.WriteString("// Flat layout macros\n")
	sb.WriteString("#define IJ(i, j, n) ((i) + (j) * (n))\n")
	sb.WriteString("#define IJK(i, j, e, n) ((i) + (j) * (n) + (e) * (n) * (n))\n")
	sb.WriteString("#define IJKL(i, j, k, e, n) ((i) + (j) * (n) + (k) * (n) * (n) + (e) * (n) * (n) * (n))\n")
	sb.WriteString("#define IJKNM(c, q, e, nc, nq) ((c) + (q) * (nc) + (e) * (nc) * (nq))\n")
	sb.WriteString("\n")

	sb.WriteString("// Basis access\n")
	if kb.hasStaticBasis() {
		sb.WriteString(fmt.Sprintf("#define DOF_TO_QUAD(q, d) %s[d][q]\n", StaticDofToQuad))
		sb.WriteString(fmt.Sprintf("#define DOF_TO_QUAD_D(q, d) %s[d][q]\n", StaticDofToQuadD))
		sb.WriteString(fmt.Sprintf("#define QUAD_TO_DOF(d, q) %s[q][d]\n", StaticQuadToDof))
		sb.WriteString(fmt.Sprintf("#define QUAD_TO_DOF_D(d, q) %s[q][d]\n", StaticQuadToDofD))
	} else {
		sb.WriteString("#define DOF_TO_QUAD(q, d) dofToQuad[IJ(q, d, NUM_QUAD_1D)]\n")
		sb.WriteString("#define DOF_TO_QUAD_D(q, d) dofToQuadD[IJ(q, d, NUM_QUAD_1D)]\n")
		sb.WriteString("#define QUAD_TO_DOF(d, q) quadToDof[IJ(d, q, NUM_DOFS_1D)]\n")
		sb.WriteString("#define QUAD_TO_DOF_D(d, q) quadToDofD[IJ(d, q, NUM_DOFS_1D)]\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
