package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceProperties(t *testing.T) {
	props, err := DeviceProperties("openmp")
	require.NoError(t, err)
	assert.Equal(t, `{"mode": "OpenMP"}`, props)
	props, err = DeviceProperties("CUDA")
	require.NoError(t, err)
	assert.Contains(t, props, `"device_id": 0`)

	_, err = DeviceProperties("HIP")
	assert.Error(t, err)
	_, err = CreateDevice("HIP")
	assert.Error(t, err)
	_, err = CreateDevice()
	assert.Error(t, err)
}

func TestCreateDevice(t *testing.T) {
	device, err := CreateDevice("Serial")
	require.NoError(t, err)
	defer device.Free()
	assert.Equal(t, "Serial", device.Mode())
}
