// Package jobs provides the bounded worker pool that query resolution is
// dispatched onto, so request-handling threads never block on embedding
// inference. The shared index state is read-only, so workers need no locks.
package jobs

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/cloo-solutions/finassist/internal/domain"
)

// ErrPoolStopped is returned when a query is submitted after Stop.
var ErrPoolStopped = errors.New("resolver pool stopped")

// QueryResolver defines the interface for resolving a single query
type QueryResolver interface {
	Resolve(ctx context.Context, query string) domain.Answer
}

type task struct {
	ctx    context.Context
	query  string
	result chan domain.Answer
}

// Pool dispatches query resolution across a fixed number of workers.
type Pool struct {
	resolver QueryResolver
	tasks    chan task
	workers  int
	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPool creates a Pool with the given worker count.
func NewPool(resolver QueryResolver, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		resolver: resolver,
		tasks:    make(chan task, workers*2),
		workers:  workers,
		stopChan: make(chan struct{}),
	}
}

// Start launches the workers. It returns immediately.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
	log.Printf("resolver pool started with %d workers", p.workers)
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case t := <-p.tasks:
			answer := p.resolver.Resolve(t.ctx, t.query)
			select {
			case t.result <- answer:
			case <-t.ctx.Done():
				// Caller gave up; discard the result.
			}
		}
	}
}

// Resolve enqueues a query and waits for its Answer. The context bounds the
// wait; a cancelled caller simply discards the in-flight result.
func (p *Pool) Resolve(ctx context.Context, query string) (domain.Answer, error) {
	t := task{ctx: ctx, query: query, result: make(chan domain.Answer, 1)}

	select {
	case p.tasks <- t:
	case <-p.stopChan:
		return domain.Answer{}, ErrPoolStopped
	case <-ctx.Done():
		return domain.Answer{}, ctx.Err()
	}

	select {
	case answer := <-t.result:
		return answer, nil
	case <-p.stopChan:
		return domain.Answer{}, ErrPoolStopped
	case <-ctx.Done():
		return domain.Answer{}, ctx.Err()
	}
}

// Stop signals the workers to exit and waits for them to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
	p.wg.Wait()
	log.Println("resolver pool stopped")
}
