package utils

import (
	"fmt"
	"strings"

	"github.com/notargets/gocca"
)

// DeviceProperties returns the OCCA device JSON for a backend mode name.
func DeviceProperties(mode string) (string, error) {
	switch strings.ToLower(mode) {
	case "openmp":
		return `{"mode": "OpenMP"}`, nil
	case "cuda":
		return `{"mode": "CUDA", "device_id": 0}`, nil
	case "opencl":
		return `{"mode": "OpenCL", "platform_id": 0, "device_id": 0}`, nil
	case "serial":
		return `{"mode": "Serial"}`, nil
	default:
		return "", fmt.Errorf("unknown device mode %q", mode)
	}
}

// CreateDevice returns the first device that can be created from modes, in order
func CreateDevice(modes ...string) (*gocca.OCCADevice, error) {
	if len(modes) == 0 {
		return nil, fmt.Errorf("no device modes given")
	}
	var errs []string
	for _, mode := range modes {
		props, err := DeviceProperties(mode)
		if err != nil {
			return nil, err
		}
		device, err := gocca.NewDevice(props)
		if err == nil {
			return device, nil
		}
		errs = append(errs, fmt.Sprintf("%s: %v", mode, err))
	}
	return nil, fmt.Errorf("failed to create any device (%s)", strings.Join(errs, "; "))
}

// CreateTestDevice creates a Device for testing, preferring parallel backends
func CreateTestDevice() *gocca.OCCADevice {
	device, err := CreateDevice("OpenMP", "CUDA", "Serial")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Created %s Device\n", device.Mode())
	return device
}
