// Package concurrent fans independent, index-addressed jobs over a fixed
// number of goroutines and merges the results back in input order.
package concurrent

import (
	"sync"
)

// JobFunc processes one job.
type JobFunc[T any, G any] func(job T) G

// WorkerPool runs JobFunc over queued jobs with numWorkers goroutines.
// Results arrive in completion order; use Map when input order matters.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool sizes both queues to jobQueueSize. Submitting more than
// jobQueueSize jobs before draining results blocks.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

// Start launches the workers.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// AddJob enqueues one job.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every worker has exited, then closes the results channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// CollectResults exposes the results channel.
func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

type indexed[T any] struct {
	idx int
	val T
}

// Map applies fn to every element of jobs and returns the outputs in input
// order. workers ≤ 1 runs inline on the calling goroutine.
func Map[T any, G any](workers int, jobs []T, fn func(T) G) []G {
	out := make([]G, len(jobs))
	if workers <= 1 || len(jobs) <= 1 {
		for i, j := range jobs {
			out[i] = fn(j)
		}
		return out
	}

	wp := NewWorkerPool[indexed[T], indexed[G]](workers, len(jobs))
	wp.Start(func(job indexed[T]) indexed[G] {
		return indexed[G]{idx: job.idx, val: fn(job.val)}
	})
	for i, j := range jobs {
		wp.AddJob(indexed[T]{idx: i, val: j})
	}
	wp.Close()
	wp.Wait()
	for r := range wp.CollectResults() {
		out[r.idx] = r.val
	}

	return out
}
