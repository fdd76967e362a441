package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, NP int) (histo map[int]int) {
		pm := NewPartitionMap(NP, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			histo[pm.GetBucketDimension(np)]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	for n := 64; n < 2000; n++ {
		histo := getHisto(n, 7)
		assert.LessOrEqual(t, len(histo), 2)
		assert.Equal(t, n, getTotal(histo))
	}

	t.Run("ContiguousCover", func(t *testing.T) {
		pm := NewPartitionMap(5, 23)
		next := 0
		for bn := 0; bn < pm.ParallelDegree; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, next, kMin)
			next = kMax
		}
		assert.Equal(t, 23, next)
	})

	t.Run("GetBucket", func(t *testing.T) {
		for maxIndex := 10; maxIndex < 300; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			for k := 0; k < maxIndex; k++ {
				bn := pm.GetBucket(k)
				kMin, kMax := pm.GetBucketRange(bn)
				assert.True(t, k >= kMin && k < kMax)
			}
			assert.Equal(t, -1, pm.GetBucket(maxIndex))
			assert.Equal(t, -1, pm.GetBucket(-1))
		}
	})
}

func TestExecutors(t *testing.T) {
	executors := []struct {
		name string
		exec Executor
	}{
		{"Serial", Serial{}},
		{"Threaded1", NewThreaded(1)},
		{"Threaded4", NewThreaded(4)},
		{"ThreadedDefault", NewThreaded(0)},
		{"ThreadedWide", &Threaded{NP: 64}},
	}
	for _, tc := range executors {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 3, 17, 1000} {
				visits := make([]int32, n)
				tc.exec.ForAll(n, func(k int) {
					atomic.AddInt32(&visits[k], 1)
				})
				for k, v := range visits {
					assert.Equal(t, int32(1), v, "n=%d k=%d", n, k)
				}

				covered := make([]int32, n)
				var calls int32
				tc.exec.ForRanges(n, func(kMin, kMax int) {
					atomic.AddInt32(&calls, 1)
					assert.Less(t, kMin, kMax)
					for k := kMin; k < kMax; k++ {
						atomic.AddInt32(&covered[k], 1)
					}
				})
				for k, v := range covered {
					assert.Equal(t, int32(1), v, "n=%d k=%d", n, k)
				}
				if n == 0 {
					assert.Equal(t, int32(0), calls)
				}
			}
		})
	}
}
