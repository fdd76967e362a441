//go:build dgdebug

package diffusion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyValidatesInDebugBuilds(t *testing.T) {
	key := Key{2, 3, 3}
	ops := randomOperands(rand.New(rand.NewSource(1)), key, 2, false)
	ops.Oper = ops.Oper[:len(ops.Oper)-1]
	target := &countingTarget{}
	err := NewRegistry().Apply(target, 2, 3, 3, 2, ops)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oper")
	assert.Zero(t, target.launches)
}
