package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor runs a loop body over the index range [0,n). Bodies for distinct
// indices must be independent; implementations may run them concurrently and
// return only after every index has been visited.
type Executor interface {
	// ForAll calls body exactly once for every k in [0,n).
	ForAll(n int, body func(k int))
	// ForRanges covers [0,n) with disjoint [kMin,kMax) ranges, one call per range.
	// A body can hold task-private scratch for its whole range.
	ForRanges(n int, body func(kMin, kMax int))
}

// Serial runs everything on the calling goroutine.
type Serial struct{}

func (Serial) ForAll(n int, body func(k int)) {
	for k := 0; k < n; k++ {
		body(k)
	}
}

func (Serial) ForRanges(n int, body func(kMin, kMax int)) {
	if n > 0 {
		body(0, n)
	}
}

// Threaded splits the index range into NP balanced partitions and runs each
// on its own goroutine.
type Threaded struct {
	NP int // number of partitions, runtime.NumCPU() when < 1
}

func NewThreaded(np int) *Threaded {
	if np < 1 {
		np = runtime.NumCPU()
	}
	return &Threaded{NP: np}
}

func (t *Threaded) ForAll(n int, body func(k int)) {
	t.ForRanges(n, func(kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			body(k)
		}
	})
}

func (t *Threaded) ForRanges(n int, body func(kMin, kMax int)) {
	if n <= 0 {
		return
	}
	np := t.NP
	if np < 1 {
		np = runtime.NumCPU()
	}
	if np > n {
		np = n
	}
	if np == 1 {
		body(0, n)
		return
	}
	pm := NewPartitionMap(np, n)
	var g errgroup.Group
	g.SetLimit(np)
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		g.Go(func() error {
			body(kMin, kMax)
			return nil
		})
	}
	_ = g.Wait()
}
