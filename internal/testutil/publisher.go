// Package testutil contains fakes shared by service and server tests.
package testutil

import (
	"context"
	"sync"

	"github.com/fekalegi/property-management-system/internal/domain"
)

// RecordingPublisher keeps every published event. A non-nil Err is returned
// from Publish after the event is recorded.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, e domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.Err
}

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
