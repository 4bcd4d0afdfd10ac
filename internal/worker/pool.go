package worker

import (
	"sync"

	"github.com/selimyuksel/task-manager-backend/internal/metrics"
)

type job func()

// Pool is a fixed-size goroutine pool with a buffered queue. The reminder
// scheduler fans a tick's deliveries out through it.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan job
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan job, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				metrics.WorkerQueueDepth.Dec()
				j()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f job) {
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
}

func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
