package concurrent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtraj/internal/concurrent"
)

func TestMap_PreservesOrder(t *testing.T) {
	jobs := make([]int, 100)
	for i := range jobs {
		jobs[i] = i
	}
	square := func(x int) int { return x * x }

	for _, workers := range []int{0, 1, 4, 16} {
		out := concurrent.Map(workers, jobs, square)
		for i, v := range out {
			assert.Equal(t, i*i, v, "workers=%d idx=%d", workers, i)
		}
	}
}

func TestMap_Empty(t *testing.T) {
	out := concurrent.Map(4, []string{}, func(s string) int { return len(s) })
	assert.Empty(t, out)
}

func TestWorkerPool_CollectsEveryResult(t *testing.T) {
	wp := concurrent.NewWorkerPool[int, int](3, 10)
	wp.Start(func(x int) int { return x + 1 })
	for i := 0; i < 10; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	sum := 0
	for r := range wp.CollectResults() {
		sum += r
	}
	assert.Equal(t, 55, sum)
}
