package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloo-solutions/finassist/internal/domain"
)

type echoResolver struct{}

func (echoResolver) Resolve(ctx context.Context, query string) domain.Answer {
	return domain.NewAnswerNoConfidence("echo: "+query, domain.SourceAssistant, "")
}

type slowResolver struct {
	delay time.Duration
}

func (s slowResolver) Resolve(ctx context.Context, query string) domain.Answer {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
	return domain.NewAnswerNoConfidence("slow", domain.SourceAssistant, "")
}

func TestPoolResolve(t *testing.T) {
	p := NewPool(echoResolver{}, 2)
	p.Start(context.Background())
	defer p.Stop()

	answer, err := p.Resolve(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", answer.Text)
	assert.Equal(t, domain.SourceAssistant, answer.Source)
}

func TestPoolConcurrentResolve(t *testing.T) {
	p := NewPool(echoResolver{}, 4)
	p.Start(context.Background())
	defer p.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			answer, err := p.Resolve(context.Background(), "q")
			assert.NoError(t, err)
			assert.Equal(t, "echo: q", answer.Text)
		}()
	}
	wg.Wait()
}

func TestPoolResolveAfterStop(t *testing.T) {
	p := NewPool(echoResolver{}, 1)
	p.Start(context.Background())
	p.Stop()

	_, err := p.Resolve(context.Background(), "late")
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPoolResolveContextCancelled(t *testing.T) {
	p := NewPool(slowResolver{delay: time.Second}, 1)
	p.Start(context.Background())
	defer p.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Resolve(ctx, "slow query")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolStopIdempotent(t *testing.T) {
	p := NewPool(echoResolver{}, 2)
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(echoResolver{}, 0)
	assert.Equal(t, 1, p.workers)
}
