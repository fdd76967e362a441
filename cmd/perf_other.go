//go:build !linux

package cmd

import "errors"

func countCycles(f func() error) (cycles, instructions uint64, err error) {
	return 0, 0, errors.New("hardware counters require linux")
}
