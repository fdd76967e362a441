package runner

import (
	"fmt"
	"unsafe"

	"github.com/notargets/gocca"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/DGDiffusion/residency"
	"github.com/notargets/DGDiffusion/runner/builder"
)

// Acquire makes host visible on the device under name, reusing the pooled
// allocation when it is large enough. ReadWrite buffers are written back by
// Release: copied back in double precision, while under single precision the
// device copy starts at zero and its result is added to the host in float64.
func (kr *Runner) Acquire(name string, host []float64, mode residency.Mode) (*gocca.OCCAMemory, error) {
	if mode != residency.ReadOnly && mode != residency.ReadWrite {
		return nil, fmt.Errorf("buffer %s: unknown access mode %v", name, mode)
	}
	mem := kr.poolMemory(name, len(host))
	binding := &DeviceBinding{
		Name:        name,
		HostBinding: host,
		DeviceType:  kr.Config.FloatType,
		Actions:     ActionsFor(mode, kr.Config.FloatType),
	}
	switch {
	case binding.HasAction(CopyTo):
		if err := kr.copyToDevice(binding, mem); err != nil {
			return nil, fmt.Errorf("failed to copy %s to device: %w", name, err)
		}
	case binding.HasAction(Accumulate):
		if err := kr.zeroDevice(binding, mem); err != nil {
			return nil, fmt.Errorf("failed to clear %s on device: %w", name, err)
		}
	}
	kr.bindings = append(kr.bindings, binding)
	return mem, nil
}

// Release writes every ReadWrite binding back to its host buffer and ends
// the acquisition.
func (kr *Runner) Release() (err error) {
	for _, binding := range kr.bindings {
		if !binding.HasAction(CopyBack | Accumulate) {
			continue
		}
		mem := kr.PooledMemory[binding.Name]
		if mem == nil {
			err = fmt.Errorf("no device memory allocated for %s", binding.Name)
			break
		}
		if binding.HasAction(Accumulate) {
			err = kr.addFromDevice(binding, mem)
		} else {
			err = kr.copyFromDevice(binding, mem)
		}
		if err != nil {
			err = fmt.Errorf("failed to copy %s from device: %w", binding.Name, err)
			break
		}
	}
	kr.bindings = kr.bindings[:0]
	return
}

// poolMemory returns device memory for at least n values of the device type
func (kr *Runner) poolMemory(name string, n int) *gocca.OCCAMemory {
	if n < 1 {
		n = 1
	}
	bytes := int64(n * kr.Config.FloatType.Size())
	if mem, ok := kr.PooledMemory[name]; ok {
		if kr.pooledBytes[name] >= bytes {
			return mem
		}
		mem.Free()
	}
	mem := kr.Device.Malloc(bytes, nil, nil)
	kr.PooledMemory[name] = mem
	kr.pooledBytes[name] = bytes
	return mem
}

// copyToDevice performs the host→device copy with precision conversion
func (kr *Runner) copyToDevice(binding *DeviceBinding, mem *gocca.OCCAMemory) error {
	data := binding.HostBinding
	if len(data) == 0 {
		return nil
	}
	switch binding.DeviceType {
	case builder.Float64:
		mem.CopyFrom(unsafe.Pointer(&data[0]), int64(len(data)*8))
	case builder.Float32:
		converted := make([]float32, len(data))
		for i, v := range data {
			converted[i] = float32(v)
		}
		mem.CopyFrom(unsafe.Pointer(&converted[0]), int64(len(converted)*4))
	default:
		return fmt.Errorf("unsupported conversion from float64 to %v", binding.DeviceType)
	}
	return nil
}

// copyFromDevice performs the device→host copy with precision conversion
func (kr *Runner) copyFromDevice(binding *DeviceBinding, mem *gocca.OCCAMemory) error {
	host := binding.HostBinding
	if len(host) == 0 {
		return nil
	}
	switch binding.DeviceType {
	case builder.Float64:
		mem.CopyTo(unsafe.Pointer(&host[0]), int64(len(host)*8))
	case builder.Float32:
		deviceData := make([]float32, len(host))
		mem.CopyTo(unsafe.Pointer(&deviceData[0]), int64(len(deviceData)*4))
		for i, v := range deviceData {
			host[i] = float64(v)
		}
	default:
		return fmt.Errorf("unsupported conversion from device %v to float64", binding.DeviceType)
	}
	return nil
}

// zeroDevice clears the device copy of an accumulated binding
func (kr *Runner) zeroDevice(binding *DeviceBinding, mem *gocca.OCCAMemory) error {
	n := len(binding.HostBinding)
	if n == 0 {
		return nil
	}
	switch binding.DeviceType {
	case builder.Float64:
		zeros := make([]float64, n)
		mem.CopyFrom(unsafe.Pointer(&zeros[0]), int64(n*8))
	case builder.Float32:
		zeros := make([]float32, n)
		mem.CopyFrom(unsafe.Pointer(&zeros[0]), int64(n*4))
	default:
		return fmt.Errorf("unsupported device type %v", binding.DeviceType)
	}
	return nil
}

// addFromDevice adds the device contribution into the host buffer, keeping
// the sum in float64
func (kr *Runner) addFromDevice(binding *DeviceBinding, mem *gocca.OCCAMemory) error {
	host := binding.HostBinding
	if len(host) == 0 {
		return nil
	}
	switch binding.DeviceType {
	case builder.Float64:
		deviceData := make([]float64, len(host))
		mem.CopyTo(unsafe.Pointer(&deviceData[0]), int64(len(deviceData)*8))
		floats.Add(host, deviceData)
	case builder.Float32:
		deviceData := make([]float32, len(host))
		mem.CopyTo(unsafe.Pointer(&deviceData[0]), int64(len(deviceData)*4))
		for i, v := range deviceData {
			host[i] += float64(v)
		}
	default:
		return fmt.Errorf("unsupported conversion from device %v to float64", binding.DeviceType)
	}
	return nil
}
