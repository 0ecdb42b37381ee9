package gateway

import (
	"context"
	"sync/atomic"
)

// fakeClient implements ollama.Client with overridable behavior per test.
type fakeClient struct {
	listFn func(ctx context.Context) ([]string, error)
	pullFn func(ctx context.Context, model string) error
	genFn  func(ctx context.Context, model, prompt string) (string, error)

	pullCalls int32
}

func (f *fakeClient) List(ctx context.Context) ([]string, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) Pull(ctx context.Context, model string) error {
	atomic.AddInt32(&f.pullCalls, 1)
	if f.pullFn != nil {
		return f.pullFn(ctx, model)
	}
	return nil
}

func (f *fakeClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	if f.genFn != nil {
		return f.genFn(ctx, model, prompt)
	}
	return "", nil
}

func (f *fakeClient) pulls() int32 { return atomic.LoadInt32(&f.pullCalls) }
