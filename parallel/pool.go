package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job on the pool.
	WorkerFunc func(func())
	// WaitFunc blocks until every scheduled job has finished. With done set
	// the pool is shut down and must not be given more jobs.
	WaitFunc func(done bool)
	// CancelFunc stops the workers once queued jobs are drained.
	CancelFunc func()
)

type Pool struct {
	workers sync.WaitGroup
	pending sync.WaitGroup
	Size    int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start returns a pool of numWorkers goroutines, GOMAXPROCS when numWorkers
// is below 1. A pool of one runs every job inline on the calling goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Size: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.workers.Go(func() {
				for f := range workChan {
					f()
					pool.pending.Done()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.pending.Add(1)
			workChan <- f
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })

		pool.Wait = func(done bool) {
			pool.pending.Wait()
			if done {
				pool.Cancel()
				pool.workers.Wait()
			}
		}
	}

	return pool
}
