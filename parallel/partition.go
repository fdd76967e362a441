package parallel

// PartitionMap splits [0,MaxIndex) into ParallelDegree contiguous ranges whose
// sizes differ by at most one.
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // [kMin, kMax) of each partition
}

func NewPartitionMap(parallelDegree, maxIndex int) (pm *PartitionMap) {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Partitions:     make([][2]int, parallelDegree),
	}
	for np := 0; np < parallelDegree; np++ {
		pm.Partitions[np] = pm.split1D(np)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bn int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bn][0], pm.Partitions[bn][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) int {
	kMin, kMax := pm.GetBucketRange(bn)
	return kMax - kMin
}

// GetBucket returns the partition holding index k, or -1 when k is out of range.
func (pm *PartitionMap) GetBucket(k int) (bn int) {
	if k < 0 || k >= pm.MaxIndex {
		return -1
	}
	bn = pm.ParallelDegree * k / pm.MaxIndex
	for bn >= 0 && bn < pm.ParallelDegree {
		kMin, kMax := pm.GetBucketRange(bn)
		switch {
		case k < kMin:
			bn--
		case k >= kMax:
			bn++
		default:
			return bn
		}
	}
	return -1
}

func (pm *PartitionMap) split1D(threadNum int) (bucket [2]int) {
	var (
		nPart            = pm.MaxIndex / pm.ParallelDegree
		remainder        = pm.MaxIndex % pm.ParallelDegree
		startAdd, endAdd int
	)
	// the remainder goes one item at a time to the leading partitions
	if remainder != 0 {
		if threadNum+1 > remainder {
			startAdd = remainder
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*nPart + startAdd
	bucket[1] = bucket[0] + nPart + endAdd
	return
}
