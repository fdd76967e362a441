// Package residency maps caller-owned host buffers to views that are valid on
// an execution target.
package residency

import "fmt"

// Mode selects how a buffer is acquired.
type Mode int

const (
	// ReadOnly buffers are made visible to the target and never copied back.
	ReadOnly Mode = iota
	// ReadWrite buffers are made visible to the target and synchronized back
	// to the host buffer on Release.
	ReadWrite
)

func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "ReadOnly"
	case ReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Accessor hands out execution-ready views of host buffers. Views stay valid
// until Release, which also flushes every ReadWrite view back to its host buffer.
type Accessor[V any] interface {
	Acquire(name string, host []float64, mode Mode) (V, error)
	Release() error
}

// Host is the identity accessor for targets that execute in host memory.
type Host struct{}

func (Host) Acquire(name string, host []float64, mode Mode) ([]float64, error) {
	if mode != ReadOnly && mode != ReadWrite {
		return nil, fmt.Errorf("buffer %s: unknown access mode %v", name, mode)
	}
	return host, nil
}

func (Host) Release() error { return nil }
