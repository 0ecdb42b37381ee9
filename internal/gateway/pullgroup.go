package gateway

import (
	"context"
	"sync"
)

// pullGroup collapses concurrent pulls of the same model into a single
// backend call. Without it, two requests racing on a missing model would
// both trigger a (potentially huge) download.
type pullGroup struct {
	mu       sync.Mutex
	inflight map[string]*pullCall
}

type pullCall struct {
	done chan struct{}
	err  error
}

func newPullGroup() *pullGroup {
	return &pullGroup{inflight: make(map[string]*pullCall)}
}

// Do runs fn(ctx, model) unless a pull for model is already in flight, in
// which case it waits for that pull and returns its result. A waiter whose
// own context ends stops waiting; the in-flight pull itself continues under
// the initiating caller's context.
func (g *pullGroup) Do(ctx context.Context, model string, fn func(context.Context, string) error) error {
	g.mu.Lock()
	if c, ok := g.inflight[model]; ok {
		g.mu.Unlock()
		select {
		case <-c.done:
			return c.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c := &pullCall{done: make(chan struct{})}
	g.inflight[model] = c
	g.mu.Unlock()

	c.err = fn(ctx, model)

	g.mu.Lock()
	delete(g.inflight, model)
	g.mu.Unlock()
	close(c.done)
	return c.err
}
