package mocks

import (
	"context"
	"sync"

	"cruisedesk/infras/otel"
)

// Recorder is an otel.Otel that keeps every scope it opens.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, name string) (context.Context, otel.Scope) {
	scope := newScope(name)

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the last scope opened under name.
func (r *Recorder) Scope(name string) (*Scope, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.scopes) - 1; i >= 0; i-- {
		if r.scopes[i].Name == name {
			return r.scopes[i], true
		}
	}

	return nil, false
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}
