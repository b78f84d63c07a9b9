// Package parallel runs batches of independent tasks on a fixed set of
// worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type Pool struct {
	wg   sync.WaitGroup
	work chan func()
}

// Start launches a pool of numWorkers goroutines; numWorkers below one means
// one per CPU. A pool of a single worker runs tasks inline on the submitting
// goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)
		for i := 0; i < numWorkers; i++ {
			pool.wg.Add(1)
			go func() {
				defer pool.wg.Done()
				for f := range pool.work {
					f()
				}
			}()
		}
	}
	return pool
}

// Submit queues f for execution. Must not be called after Wait.
func (p *Pool) Submit(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting tasks and blocks until every submitted task finished.
func (p *Pool) Wait() {
	if p.work != nil {
		close(p.work)
	}
	p.wg.Wait()
}
