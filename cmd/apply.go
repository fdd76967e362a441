package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/DGDiffusion/diffusion"
	"github.com/notargets/DGDiffusion/element"
	"github.com/notargets/DGDiffusion/parallel"
	"github.com/notargets/DGDiffusion/runner"
	"github.com/notargets/DGDiffusion/runner/builder"
	"github.com/notargets/DGDiffusion/utils"
)

type ApplyModel struct {
	ParamFile   string
	Mode        string // host, or an OCCA mode
	Threads     int
	Profile     string
	Float32     bool
	StaticBasis bool
	Uncertified bool
	Verify      bool
	Perf        bool
}

// ApplyCmd represents the apply command
var ApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the diffusion operator to a synthetic batch of elements",
	Long: `
Builds Gauss-Lobatto / Gauss transfer matrices and an affine operator tensor
for a batch of Cartesian elements, applies the operator Repeat times and
reports the throughput.

dgdiffusion apply -i params.yaml --mode OpenMP --verify`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		am := &ApplyModel{}
		if am.ParamFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			return
		}
		am.Mode = viper.GetString("mode")
		am.Threads = viper.GetInt("threads")
		am.Profile, _ = cmd.Flags().GetString("profile")
		am.Float32, _ = cmd.Flags().GetBool("float32")
		am.StaticBasis, _ = cmd.Flags().GetBool("staticBasis")
		am.Uncertified, _ = cmd.Flags().GetBool("uncertified")
		am.Verify, _ = cmd.Flags().GetBool("verify")
		am.Perf, _ = cmd.Flags().GetBool("perf")

		var rp *RunParameters
		if rp, err = processInput(am, cmd.ErrOrStderr()); err != nil {
			return
		}
		switch am.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return fmt.Errorf("unknown profile %q, want cpu or mem", am.Profile)
		}
		out := cmd.OutOrStdout()
		rp.Print(out)
		var rep *Report
		if rep, err = RunApply(am, rp); err != nil {
			return
		}
		rep.Print(out)
		if am.Verify && !rep.Passed() {
			return fmt.Errorf("verification failed")
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(ApplyCmd)
	ApplyCmd.Flags().StringP("inputParametersFile", "i", "", "YAML file for run parameters like:\n\t- Dimension\n\t- Order\n\t- Elements")
	ApplyCmd.Flags().StringP("mode", "m", "host", "execution target: host, Serial, OpenMP, CUDA or OpenCL")
	ApplyCmd.Flags().IntP("threads", "t", 0, "host threads, 0 uses all CPUs")
	ApplyCmd.Flags().StringP("profile", "p", "", "write a cpu or mem profile to the current directory")
	ApplyCmd.Flags().Bool("float32", false, "single precision device kernels")
	ApplyCmd.Flags().Bool("staticBasis", false, "embed the basis matrices in the device kernel")
	ApplyCmd.Flags().BoolP("uncertified", "u", false, "allow the uncertified hexahedral orders")
	ApplyCmd.Flags().BoolP("verify", "v", false, "compare against the host kernels and check linearity")
	ApplyCmd.Flags().Bool("perf", false, "count CPU cycles and instructions of one application (linux)")
	_ = viper.BindPFlag("mode", ApplyCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("threads", ApplyCmd.Flags().Lookup("threads"))
}

func processInput(am *ApplyModel, w io.Writer) (rp *RunParameters, err error) {
	if len(am.ParamFile) == 0 {
		fmt.Fprintf(w, "Example File:%s\n", exampleParameters)
		return nil, fmt.Errorf("must supply an input parameters file (-i, --inputParametersFile)")
	}
	var data []byte
	if data, err = os.ReadFile(am.ParamFile); err != nil {
		return
	}
	rp = &RunParameters{}
	if err = rp.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", am.ParamFile, err)
	}
	return
}

// Report summarizes one apply run
type Report struct {
	Target        string
	Key           diffusion.Key
	Elements      int
	Repeat        int
	Elapsed       time.Duration
	Cycles        uint64
	Instructions  uint64
	Verified      bool
	MaxDeviation  float64 // relative to the host kernels
	LinearityErr  float64 // relative |A(2u) - 2A(u)|
	VerifyTol     float64
	OutputMaxNorm float64
}

func (r *Report) Passed() bool {
	return !r.Verified || (r.MaxDeviation <= r.VerifyTol && r.LinearityErr <= r.VerifyTol)
}

// DofRate is the number of element dofs processed per second
func (r *Report) DofRate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Key.NumDofs()*r.Elements*r.Repeat) / r.Elapsed.Seconds()
}

func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "%s on %s: %d elements x %d applications in %v\n",
		r.Key, r.Target, r.Elements, r.Repeat, r.Elapsed)
	fmt.Fprintf(w, "%10.3f\t\t= MDofs/s\n", r.DofRate()/1.e6)
	fmt.Fprintf(w, "%10.3e\t\t= max |solOut|\n", r.OutputMaxNorm)
	if r.Instructions > 0 {
		fmt.Fprintf(w, "%d cycles, %d instructions per application\n", r.Cycles, r.Instructions)
	}
	if r.Verified {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s: deviation from host %.3e, linearity error %.3e (tol %.1e)\n",
			status, r.MaxDeviation, r.LinearityErr, r.VerifyTol)
	}
}

// BuildOperands assembles the basis, a Cartesian operator tensor and a
// quadratic input field for the run.
func BuildOperands(rp *RunParameters) (ops diffusion.Operands, err error) {
	key := rp.Key()
	var basis *element.Basis1D
	if basis, err = element.NewBasis1D(key.Dofs1D, key.Quad1D); err != nil {
		return
	}
	var oper []float64
	if oper, err = element.AffineOperator(key.Dim, basis.QuadWeights,
		element.CartesianJacobians(key.Dim, rp.Elements, rp.ElementSize), rp.Kappa); err != nil {
		return
	}
	nDofs := key.NumDofs()
	solIn := make([]float64, key.FieldSize(rp.Elements))
	for e := 0; e < rp.Elements; e++ {
		for i := 0; i < nDofs; i++ {
			idx, r2 := i, 0.
			for d := 0; d < key.Dim; d++ {
				x := basis.DofNodes[idx%key.Dofs1D]
				r2 += x * x
				idx /= key.Dofs1D
			}
			solIn[e*nDofs+i] = r2 + 0.01*float64(e%97)
		}
	}
	ops = diffusion.Operands{
		DofToQuad:  basis.DofToQuad(),
		DofToQuadD: basis.DofToQuadD(),
		QuadToDof:  basis.QuadToDof(),
		QuadToDofD: basis.QuadToDofD(),
		Oper:       oper,
		SolIn:      solIn,
		SolOut:     make([]float64, key.FieldSize(rp.Elements)),
	}
	return
}

// NewTarget returns the execution target named by mode and a release func.
func NewTarget(am *ApplyModel) (target diffusion.Target, free func(), err error) {
	if strings.EqualFold(am.Mode, "host") || am.Mode == "" {
		return diffusion.NewHostTarget(parallel.NewThreaded(am.Threads)), func() {}, nil
	}
	device, err := utils.CreateDevice(am.Mode)
	if err != nil {
		return
	}
	cfg := builder.Config{}
	if am.Float32 {
		cfg.FloatType = builder.Float32
	}
	opts := []runner.Option{runner.WithLogger(logger)}
	if am.StaticBasis {
		opts = append(opts, runner.WithStaticBasis())
	}
	kr := runner.NewRunner(device, cfg, opts...)
	return kr, func() {
		kr.Free()
		device.Free()
	}, nil
}

// RunApply executes the batch described by rp on the target selected by am.
func RunApply(am *ApplyModel, rp *RunParameters) (rep *Report, err error) {
	key := rp.Key()
	regOpts := []diffusion.Option{diffusion.WithLogger(logger)}
	if am.Uncertified {
		regOpts = append(regOpts, diffusion.WithUncertified())
	}
	reg := diffusion.NewRegistry(regOpts...)
	if _, err = reg.Lookup(key); err != nil {
		return nil, fmt.Errorf("%w, see dgdiffusion orders", err)
	}

	var ops diffusion.Operands
	if ops, err = BuildOperands(rp); err != nil {
		return
	}
	target, free, err := NewTarget(am)
	if err != nil {
		return
	}
	defer free()

	apply := func(t diffusion.Target, o diffusion.Operands) error {
		return reg.Apply(t, key.Dim, key.Dofs1D, key.Quad1D, rp.Elements, o)
	}
	rep = &Report{Target: target.Name(), Key: key, Elements: rp.Elements, Repeat: rp.Repeat}

	// warm up, builds device kernels outside the timed loop
	if err = apply(target, ops); err != nil {
		return
	}
	clear(ops.SolOut)
	start := time.Now()
	for i := 0; i < rp.Repeat; i++ {
		if err = apply(target, ops); err != nil {
			return
		}
	}
	rep.Elapsed = time.Since(start)
	rep.OutputMaxNorm = floats.Norm(ops.SolOut, math.Inf(1))
	logger.Info("applied diffusion operator",
		zap.Stringer("key", key),
		zap.String("target", rep.Target),
		zap.Int("elements", rp.Elements),
		zap.Int("repeat", rp.Repeat),
		zap.Duration("elapsed", rep.Elapsed))

	if am.Perf {
		if rep.Cycles, rep.Instructions, err = countCycles(func() error { return apply(target, ops) }); err != nil {
			logger.Warn("hardware counters unavailable", zap.Error(err))
			err = nil
		}
	}
	if am.Verify {
		if err = verify(rep, reg, target, key, rp, ops, am.Float32); err != nil {
			return
		}
	}
	return
}

func verify(rep *Report, reg *diffusion.Registry, target diffusion.Target, key diffusion.Key,
	rp *RunParameters, ops diffusion.Operands, single bool) (err error) {
	apply := func(t diffusion.Target, o diffusion.Operands) error {
		return reg.Apply(t, key.Dim, key.Dofs1D, key.Quad1D, rp.Elements, o)
	}
	rep.Verified = true
	rep.VerifyTol = 1.e-10
	if single {
		rep.VerifyTol = 1.e-4
	}

	got := ops
	got.SolOut = make([]float64, len(ops.SolOut))
	if err = apply(target, got); err != nil {
		return
	}
	want := ops
	want.SolOut = make([]float64, len(ops.SolOut))
	if err = apply(diffusion.NewHostTarget(parallel.NewThreaded(0)), want); err != nil {
		return
	}
	rep.MaxDeviation = relativeDistance(got.SolOut, want.SolOut)

	doubled := ops
	doubled.SolIn = make([]float64, len(ops.SolIn))
	floats.ScaleTo(doubled.SolIn, 2, ops.SolIn)
	doubled.SolOut = make([]float64, len(ops.SolOut))
	if err = apply(target, doubled); err != nil {
		return
	}
	floats.Scale(2, got.SolOut)
	rep.LinearityErr = relativeDistance(doubled.SolOut, got.SolOut)
	return
}

func relativeDistance(a, b []float64) float64 {
	scale := floats.Norm(b, math.Inf(1))
	if scale == 0 {
		scale = 1
	}
	return floats.Distance(a, b, math.Inf(1)) / scale
}
