// Package identity owns the per-install anonymous device identity.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/storage"
)

// ErrUnavailable is returned when the identity can not be read or
// persisted. Callers must treat it as a hard failure, never as an empty id.
var ErrUnavailable = fmt.Errorf("identity is unavailable")

// Provider is a read-through cache over durable storage. The first call
// generates and persists the id; later calls, including across restarts,
// return the same value.
type Provider struct {
	s storage.Storage

	mu     sync.Mutex
	device string
	handle string
}

// New creates new instance of Provider.
func New(s storage.Storage) *Provider {
	return &Provider{s: s}
}

// DeviceID returns the stable per-install identifier.
func (p *Provider) DeviceID(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device != "" {
		return p.device, nil
	}

	id, err := p.s.GetMeta(ctx, storage.DeviceIDKey)
	switch {
	case err == nil:
		p.device = id
		return id, nil
	case !errors.Is(err, storage.ErrNotFound):
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	id = uuid.NewString()
	if err := p.s.SetMeta(ctx, storage.DeviceIDKey, id); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	p.device = id
	return id, nil
}

// Handle returns the display handle, defaulting to Anonymous.
func (p *Provider) Handle(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle != "" {
		return p.handle, nil
	}

	h, err := p.s.GetMeta(ctx, storage.HandleKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return entities.DefaultHandle, nil
	case err != nil:
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	p.handle = h
	return h, nil
}

// SetHandle persists a new display handle.
func (p *Provider) SetHandle(ctx context.Context, handle string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.s.SetMeta(ctx, storage.HandleKey, handle); err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	p.handle = handle
	return nil
}
