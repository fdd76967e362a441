//go:build linux

package cmd

import (
	perf "github.com/hodgesds/perf-utils"
)

// countCycles runs f twice, once under each hardware counter.
func countCycles(f func() error) (cycles, instructions uint64, err error) {
	var pv *perf.ProfileValue
	if pv, err = perf.CPUCycles(f); err != nil {
		return
	}
	cycles = pv.Value
	if pv, err = perf.CPUInstructions(f); err != nil {
		return
	}
	instructions = pv.Value
	return
}
