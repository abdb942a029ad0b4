package worker

import (
	"errors"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func() error

// Pool runs tasks on a fixed number of goroutines.
type Pool interface {
	// Submit blocks until a worker is free to take t.
	Submit(Task)
	// Stop waits for submitted tasks to finish and returns their errors
	// joined. Submit must not be called after Stop.
	Stop() error
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job == nil {
			continue
		}
		if err := job(); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
