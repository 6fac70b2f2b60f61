// Package connectivity tracks whether the backend is reachable.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("package", "connectivity")

// Pinger probes the backend. The remote gateway satisfies it, which keeps
// the probe on the same network path the flusher will use.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Watcher holds the online/offline state and notifies subscribers on the
// offline-to-online edge. Going offline just flips the state; in-flight
// requests are left to fail naturally.
type Watcher struct {
	p        Pinger
	interval time.Duration

	mu     sync.Mutex
	online bool
	subs   []func()
}

// New creates new instance of Watcher.
func New(p Pinger, interval time.Duration) *Watcher {
	return &Watcher{
		p:        p,
		interval: interval,
	}
}

// Online reports the last observed state.
func (w *Watcher) Online() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.online
}

// Notify registers a callback fired on every offline-to-online transition.
// Callbacks run on the watcher goroutine and should hand work off quickly.
func (w *Watcher) Notify(f func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.subs = append(w.subs, f)
}

// Probe performs a single check and updates the state. Used at startup to
// determine the initial state before Run takes over.
func (w *Watcher) Probe(ctx context.Context) bool {
	return w.check(ctx)
}

// Run probes on an interval until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.check(ctx)
		}
	}
}

func (w *Watcher) check(ctx context.Context) bool {
	err := w.p.Ping(ctx)
	online := err == nil

	w.mu.Lock()
	wasOnline := w.online
	w.online = online
	var subs []func()
	if online && !wasOnline {
		subs = append(subs, w.subs...)
	}
	w.mu.Unlock()

	if online != wasOnline {
		log.WithField("online", online).Info("connectivity changed")
	}

	for _, f := range subs {
		f()
	}

	return online
}
