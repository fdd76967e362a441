package cmd

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/notargets/DGDiffusion/diffusion"
)

// RunParameters describes one synthetic batch of elements for the apply command
type RunParameters struct {
	Title       string  `yaml:"Title"`
	Dimension   int     `yaml:"Dimension"`
	Order       int     `yaml:"Order"`     // polynomial order, dofs1D = Order+1
	QuadOrder   int     `yaml:"QuadOrder"` // quadrature points per dimension
	Elements    int     `yaml:"Elements"`
	Repeat      int     `yaml:"Repeat"`
	Kappa       float64 `yaml:"Kappa"`
	ElementSize float64 `yaml:"ElementSize"`
}

const exampleParameters = `
########################################
Title: "Hex order 1"
Dimension: 3
Order: 1
QuadOrder: 3 # defaults to Order+1 in 2D, Order+2 in 3D
Elements: 100000
Repeat: 10
Kappa: 1.
ElementSize: 0.01
########################################
`

func (rp *RunParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, rp); err != nil {
		return
	}
	rp.setDefaults()
	return rp.Validate()
}

func (rp *RunParameters) setDefaults() {
	if rp.QuadOrder == 0 {
		rp.QuadOrder = rp.Order + 1
		if rp.Dimension == 3 {
			rp.QuadOrder = rp.Order + 2
		}
	}
	if rp.Repeat == 0 {
		rp.Repeat = 1
	}
	if rp.Kappa == 0 {
		rp.Kappa = 1
	}
	if rp.ElementSize == 0 {
		rp.ElementSize = 1
	}
}

func (rp *RunParameters) Validate() error {
	switch {
	case rp.Dimension != 2 && rp.Dimension != 3:
		return fmt.Errorf("Dimension must be 2 or 3, have %d", rp.Dimension)
	case rp.Order < 1:
		return fmt.Errorf("Order must be at least 1, have %d", rp.Order)
	case rp.QuadOrder < 1:
		return fmt.Errorf("QuadOrder must be at least 1, have %d", rp.QuadOrder)
	case rp.Elements < 1:
		return fmt.Errorf("Elements must be at least 1, have %d", rp.Elements)
	case rp.Repeat < 1:
		return fmt.Errorf("Repeat must be at least 1, have %d", rp.Repeat)
	case rp.ElementSize <= 0:
		return fmt.Errorf("ElementSize must be positive, have %g", rp.ElementSize)
	}
	return nil
}

// Key is the registry specialization the parameters select
func (rp *RunParameters) Key() diffusion.Key {
	return diffusion.Key{Dim: rp.Dimension, Dofs1D: rp.Order + 1, Quad1D: rp.QuadOrder}
}

func (rp *RunParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", rp.Title)
	fmt.Fprintf(w, "[%d]\t\t\t= Dimension\n", rp.Dimension)
	fmt.Fprintf(w, "[%d]\t\t\t= Polynomial Order\n", rp.Order)
	fmt.Fprintf(w, "[%d]\t\t\t= Quadrature Points\n", rp.QuadOrder)
	fmt.Fprintf(w, "[%d]\t\t\t= Elements\n", rp.Elements)
	fmt.Fprintf(w, "[%d]\t\t\t= Repeat\n", rp.Repeat)
	fmt.Fprintf(w, "%8.5f\t\t= Kappa\n", rp.Kappa)
	fmt.Fprintf(w, "%8.5f\t\t= Element Size\n", rp.ElementSize)
}
