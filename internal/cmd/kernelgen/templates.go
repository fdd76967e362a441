package main

import "text/template"

// fileTemplate renders the kernel table and one function per specialization.
// Inside a kernel nd and nq are constants, so every loop bound and scratch
// array size is fixed at compile time.
var fileTemplate = template.Must(template.New("file").Parse(fileText))

func init() {
	template.Must(fileTemplate.New("kernel").Parse(
		`{{if eq .Dim 2}}{{template "kernel2D" .}}{{else}}{{template "kernel3D" .}}{{end}}`))
	template.Must(fileTemplate.New("kernel2D").Parse(kernel2DText))
	template.Must(fileTemplate.New("kernel3D").Parse(kernel3DText))
}

const fileText = `// Code generated by kernelgen. DO NOT EDIT.

package {{.Package}}

import "github.com/notargets/DGDiffusion/parallel"

// certifiedKernels are the specializations validated against reference results.
var certifiedKernels = []specialization{
{{- range .Certified}}
	{{.Entry}},
{{- end}}
}

// uncertifiedKernels are higher order hexahedral specializations that still
// need validation against a production mesh before they can be certified.
var uncertifiedKernels = []specialization{
{{- range .Uncertified}}
	{{.Entry}},
{{- end}}
}
{{range .Certified}}
{{template "kernel" .}}{{end}}{{range .Uncertified}}
{{template "kernel" .}}{{end}}`

const kernel2DText = `// {{.Name}} is the quadrilateral kernel for {{.Dofs1D}} dofs and {{.Quad1D}} quadrature points per dimension.
func {{.Name}}(exec parallel.Executor, numElements int, b Operands) {
	const (
		nd      = {{.Dofs1D}}
		nq      = {{.Quad1D}}
		max1D   = {{.Max1D}}
		numQuad = nq * nq
	)
	var (
		dofToQuad, dofToQuadD = b.DofToQuad, b.DofToQuadD
		quadToDof, quadToDofD = b.QuadToDof, b.QuadToDofD
		oper, solIn, solOut   = b.Oper, b.SolIn, b.SolOut
	)
	exec.ForRanges(numElements, func(kMin, kMax int) {
		var (
			grad  [nq][nq][2]float64
			gradX [max1D][2]float64
		)
		for e := kMin; e < kMax; e++ {
			grad = [nq][nq][2]float64{}

			// dof -> quad, contracting x first then y
			for dy := 0; dy < nd; dy++ {
				gradX = [max1D][2]float64{}
				for dx := 0; dx < nd; dx++ {
					u := solIn[IJK(dx, dy, e, nd)]
					for qx := 0; qx < nq; qx++ {
						gradX[qx][0] += u * dofToQuad[IJ(qx, dx, nq)]
						gradX[qx][1] += u * dofToQuadD[IJ(qx, dx, nq)]
					}
				}
				for qy := 0; qy < nq; qy++ {
					wy := dofToQuad[IJ(qy, dy, nq)]
					wDy := dofToQuadD[IJ(qy, dy, nq)]
					for qx := 0; qx < nq; qx++ {
						grad[qy][qx][0] += gradX[qx][1] * wy
						grad[qy][qx][1] += gradX[qx][0] * wDy
					}
				}
			}

			// pointwise symmetric tensor {O11, O12, O22}
			for qy := 0; qy < nq; qy++ {
				for qx := 0; qx < nq; qx++ {
					q := QuadID2D(qx, qy, nq)
					o11 := oper[IJKNM(0, q, e, 3, numQuad)]
					o12 := oper[IJKNM(1, q, e, 3, numQuad)]
					o22 := oper[IJKNM(2, q, e, 3, numQuad)]
					gx, gy := grad[qy][qx][0], grad[qy][qx][1]
					grad[qy][qx][0] = o11*gx + o12*gy
					grad[qy][qx][1] = o12*gx + o22*gy
				}
			}

			// quad -> dof, x first then y, accumulated into solOut
			for qy := 0; qy < nq; qy++ {
				gradX = [max1D][2]float64{}
				for qx := 0; qx < nq; qx++ {
					gx, gy := grad[qy][qx][0], grad[qy][qx][1]
					for dx := 0; dx < nd; dx++ {
						wx := quadToDof[IJ(dx, qx, nd)]
						wDx := quadToDofD[IJ(dx, qx, nd)]
						gradX[dx][0] += gx * wDx
						gradX[dx][1] += gy * wx
					}
				}
				for dy := 0; dy < nd; dy++ {
					wy := quadToDof[IJ(dy, qy, nd)]
					wDy := quadToDofD[IJ(dy, qy, nd)]
					for dx := 0; dx < nd; dx++ {
						solOut[IJK(dx, dy, e, nd)] += gradX[dx][0]*wy + gradX[dx][1]*wDy
					}
				}
			}
		}
	})
}
`

const kernel3DText = `// {{.Name}} is the hexahedral kernel for {{.Dofs1D}} dofs and {{.Quad1D}} quadrature points per dimension.
func {{.Name}}(exec parallel.Executor, numElements int, b Operands) {
	const (
		nd      = {{.Dofs1D}}
		nq      = {{.Quad1D}}
		max1D   = {{.Max1D}}
		numQuad = nq * nq * nq
	)
	var (
		dofToQuad, dofToQuadD = b.DofToQuad, b.DofToQuadD
		quadToDof, quadToDofD = b.QuadToDof, b.QuadToDofD
		oper, solIn, solOut   = b.Oper, b.SolIn, b.SolOut
	)
	exec.ForRanges(numElements, func(kMin, kMax int) {
		var (
			grad   [nq][nq][nq][3]float64
			gradXY [max1D][max1D][3]float64
			gradX  [max1D][3]float64
		)
		for e := kMin; e < kMax; e++ {
			grad = [nq][nq][nq][3]float64{}

			// dof -> quad over x, y, then z
			for dz := 0; dz < nd; dz++ {
				gradXY = [max1D][max1D][3]float64{}
				for dy := 0; dy < nd; dy++ {
					gradX = [max1D][3]float64{}
					for dx := 0; dx < nd; dx++ {
						u := solIn[IJKL(dx, dy, dz, e, nd)]
						for qx := 0; qx < nq; qx++ {
							gradX[qx][0] += u * dofToQuad[IJ(qx, dx, nq)]
							gradX[qx][1] += u * dofToQuadD[IJ(qx, dx, nq)]
						}
					}
					for qy := 0; qy < nq; qy++ {
						wy := dofToQuad[IJ(qy, dy, nq)]
						wDy := dofToQuadD[IJ(qy, dy, nq)]
						for qx := 0; qx < nq; qx++ {
							wx, wDx := gradX[qx][0], gradX[qx][1]
							gradXY[qy][qx][0] += wDx * wy
							gradXY[qy][qx][1] += wx * wDy
							gradXY[qy][qx][2] += wx * wy
						}
					}
				}
				for qz := 0; qz < nq; qz++ {
					wz := dofToQuad[IJ(qz, dz, nq)]
					wDz := dofToQuadD[IJ(qz, dz, nq)]
					for qy := 0; qy < nq; qy++ {
						for qx := 0; qx < nq; qx++ {
							grad[qz][qy][qx][0] += gradXY[qy][qx][0] * wz
							grad[qz][qy][qx][1] += gradXY[qy][qx][1] * wz
							grad[qz][qy][qx][2] += gradXY[qy][qx][2] * wDz
						}
					}
				}
			}

			// pointwise symmetric tensor {O11, O12, O13, O22, O23, O33}
			for qz := 0; qz < nq; qz++ {
				for qy := 0; qy < nq; qy++ {
					for qx := 0; qx < nq; qx++ {
						q := QuadID3D(qx, qy, qz, nq)
						o11 := oper[IJKNM(0, q, e, 6, numQuad)]
						o12 := oper[IJKNM(1, q, e, 6, numQuad)]
						o13 := oper[IJKNM(2, q, e, 6, numQuad)]
						o22 := oper[IJKNM(3, q, e, 6, numQuad)]
						o23 := oper[IJKNM(4, q, e, 6, numQuad)]
						o33 := oper[IJKNM(5, q, e, 6, numQuad)]
						g := &grad[qz][qy][qx]
						gx, gy, gz := g[0], g[1], g[2]
						g[0] = o11*gx + o12*gy + o13*gz
						g[1] = o12*gx + o22*gy + o23*gz
						g[2] = o13*gx + o23*gy + o33*gz
					}
				}
			}

			// quad -> dof over x, y, then z, accumulated into solOut
			for qz := 0; qz < nq; qz++ {
				gradXY = [max1D][max1D][3]float64{}
				for qy := 0; qy < nq; qy++ {
					gradX = [max1D][3]float64{}
					for qx := 0; qx < nq; qx++ {
						g := &grad[qz][qy][qx]
						for dx := 0; dx < nd; dx++ {
							wx := quadToDof[IJ(dx, qx, nd)]
							wDx := quadToDofD[IJ(dx, qx, nd)]
							gradX[dx][0] += g[0] * wDx
							gradX[dx][1] += g[1] * wx
							gradX[dx][2] += g[2] * wx
						}
					}
					for dy := 0; dy < nd; dy++ {
						wy := quadToDof[IJ(dy, qy, nd)]
						wDy := quadToDofD[IJ(dy, qy, nd)]
						for dx := 0; dx < nd; dx++ {
							gradXY[dy][dx][0] += gradX[dx][0] * wy
							gradXY[dy][dx][1] += gradX[dx][1] * wDy
							gradXY[dy][dx][2] += gradX[dx][2] * wy
						}
					}
				}
				for dz := 0; dz < nd; dz++ {
					wz := quadToDof[IJ(dz, qz, nd)]
					wDz := quadToDofD[IJ(dz, qz, nd)]
					for dy := 0; dy < nd; dy++ {
						for dx := 0; dx < nd; dx++ {
							solOut[IJKL(dx, dy, dz, e, nd)] += (gradXY[dy][dx][0]+gradXY[dy][dx][1])*wz +
								gradXY[dy][dx][2]*wDz
						}
					}
				}
			}
		}
	})
}
`
