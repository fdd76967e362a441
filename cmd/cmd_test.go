package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/DGDiffusion/diffusion"
)

func TestRunParameters(t *testing.T) {
	// Test 1.1: defaults follow the registered pairing of dofs and quadrature
	rp := &RunParameters{}
	require.NoError(t, rp.Parse([]byte(`
Title: "quad"
Dimension: 2
Order: 4
Elements: 10
`)))
	assert.Equal(t, "quad", rp.Title)
	assert.Equal(t, 5, rp.QuadOrder)
	assert.Equal(t, 1, rp.Repeat)
	assert.Equal(t, 1., rp.Kappa)
	assert.Equal(t, 1., rp.ElementSize)
	assert.Equal(t, diffusion.Key{Dim: 2, Dofs1D: 5, Quad1D: 5}, rp.Key())

	rp = &RunParameters{}
	require.NoError(t, rp.Parse([]byte("Dimension: 3\nOrder: 1\nElements: 4\nKappa: 2.5\n")))
	assert.Equal(t, diffusion.Key{Dim: 3, Dofs1D: 2, Quad1D: 3}, rp.Key())
	assert.Equal(t, 2.5, rp.Kappa)

	// Test 1.2: the example file parses
	rp = &RunParameters{}
	require.NoError(t, rp.Parse([]byte(exampleParameters)))
	assert.Equal(t, 100000, rp.Elements)

	// Test 1.3: invalid inputs
	for _, bad := range []string{
		"Dimension: 1\nOrder: 1\nElements: 1\n",
		"Dimension: 2\nOrder: 0\nElements: 1\n",
		"Dimension: 2\nOrder: 1\nElements: 0\n",
		"Dimension: 2\nOrder: 1\nElements: 1\nElementSize: -1\n",
		"Dimension: [2\n",
	} {
		assert.Error(t, (&RunParameters{}).Parse([]byte(bad)), bad)
	}

	var buf bytes.Buffer
	rp.Print(&buf)
	assert.Contains(t, buf.String(), "= Polynomial Order")
}

func TestPrintOrders(t *testing.T) {
	var buf bytes.Buffer
	PrintOrders(&buf, diffusion.NewRegistry())
	out := buf.String()
	assert.Contains(t, out, "0x20202")
	assert.Contains(t, out, "diffusion3d_d2_q3")
	assert.NotContains(t, out, "diffusion3d_d3_q4")
	assert.Equal(t, 18, bytes.Count(buf.Bytes(), []byte("\n")))

	buf.Reset()
	PrintOrders(&buf, diffusion.NewRegistry(diffusion.WithUncertified()))
	assert.Contains(t, buf.String(), "diffusion3d_d3_q4")
}

func TestRunApplyHost(t *testing.T) {
	for _, rp := range []*RunParameters{
		{Dimension: 2, Order: 3, QuadOrder: 4, Elements: 50, Repeat: 2, Kappa: 1, ElementSize: 0.1},
		{Dimension: 3, Order: 1, QuadOrder: 3, Elements: 20, Repeat: 1, Kappa: 2, ElementSize: 1},
	} {
		rep, err := RunApply(&ApplyModel{Mode: "host", Threads: 3, Verify: true}, rp)
		require.NoError(t, err)
		assert.True(t, rep.Passed())
		assert.Equal(t, "host", rep.Target)
		assert.Zero(t, rep.MaxDeviation)
		assert.Greater(t, rep.OutputMaxNorm, 0.)
		assert.Greater(t, rep.DofRate(), 0.)

		var buf bytes.Buffer
		rep.Print(&buf)
		assert.Contains(t, buf.String(), "PASS")
	}

	// Test 2.2: unregistered orders fail before any work is done
	_, err := RunApply(&ApplyModel{Mode: "host"},
		&RunParameters{Dimension: 3, Order: 2, QuadOrder: 4, Elements: 1, Repeat: 1, ElementSize: 1})
	var unsupported *diffusion.UnsupportedError
	require.ErrorAs(t, err, &unsupported)

	rep, err := RunApply(&ApplyModel{Mode: "host", Uncertified: true},
		&RunParameters{Dimension: 3, Order: 2, QuadOrder: 4, Elements: 3, Repeat: 1, Kappa: 1, ElementSize: 1})
	require.NoError(t, err)
	assert.False(t, rep.Verified)
}

func TestProcessInput(t *testing.T) {
	var buf bytes.Buffer
	_, err := processInput(&ApplyModel{}, &buf)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "Example File")

	file := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(file, []byte("Dimension: 2\nOrder: 2\nElements: 8\n"), 0o644))
	rp, err := processInput(&ApplyModel{ParamFile: file}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 8, rp.Elements)
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)
	_, err = NewLogger("loud")
	assert.Error(t, err)
}
