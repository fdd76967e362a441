package residency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostAccessorIsIdentity(t *testing.T) {
	var acc Accessor[[]float64] = Host{}
	data := []float64{1, 2, 3}

	view, err := acc.Acquire("solOut", data, ReadWrite)
	require.NoError(t, err)
	view[1] = 42
	assert.Equal(t, 42., data[1])

	_, err = acc.Acquire("solIn", data, Mode(7))
	assert.Error(t, err)
	assert.NoError(t, acc.Release())
	assert.Equal(t, "ReadOnly", ReadOnly.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
