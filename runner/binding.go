package runner

import (
	"github.com/notargets/DGDiffusion/residency"
	"github.com/notargets/DGDiffusion/runner/builder"
)

// ActionFlags represents the memory operations to perform for a parameter
type ActionFlags int

const (
	NoAction ActionFlags = 0
	// CopyTo copies host data to the device before a launch
	CopyTo ActionFlags = 1 << iota
	// CopyBack copies device data to the host after a launch
	CopyBack
	// Accumulate zeroes the device copy before a launch and adds the device
	// result into the host buffer in float64 afterwards
	Accumulate
	Copy = CopyTo | CopyBack
)

// DeviceBinding ties a host buffer to its pooled device memory for one launch
type DeviceBinding struct {
	Name        string
	HostBinding []float64
	DeviceType  builder.DataType
	Actions     ActionFlags
}

// HasAction checks if a specific action is set
func (db *DeviceBinding) HasAction(action ActionFlags) bool {
	return db.Actions&action != 0
}

// ActionsFor maps an access mode to the copies it needs on a device of type
// dt. Single precision ReadWrite buffers are accumulated so existing host
// values never pass through float32.
func ActionsFor(mode residency.Mode, dt builder.DataType) ActionFlags {
	switch {
	case mode != residency.ReadWrite:
		return CopyTo
	case dt == builder.Float32:
		return Accumulate
	default:
		return Copy
	}
}
