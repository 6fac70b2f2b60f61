// Package syncer replays the offline action queue when connectivity allows.
package syncer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("package", "syncer")

// Flusher is the engine subset the syncer drives.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Notifier delivers offline-to-online transitions.
type Notifier interface {
	Notify(f func())
}

// Syncer triggers a flush on start, on every offline-to-online edge, and on
// a periodic interval as a safety net for edges missed between probes.
type Syncer struct {
	f        Flusher
	interval time.Duration
	trigger  chan struct{}
}

// New creates new instance of Syncer subscribed to n.
func New(f Flusher, n Notifier, interval time.Duration) *Syncer {
	s := &Syncer{
		f:        f,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}

	n.Notify(s.wake)

	return s
}

func (s *Syncer) wake() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run flushes until ctx is cancelled. A failed flush only logs: the queue
// keeps its entries and the next trigger retries from the head.
func (s *Syncer) Run(ctx context.Context) error {
	s.flush(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.trigger:
			s.flush(ctx)
		case <-t.C:
			s.flush(ctx)
		}
	}
}

func (s *Syncer) flush(ctx context.Context) {
	if err := s.f.Flush(ctx); err != nil {
		log.WithError(err).Warn("flush attempt failed, queue kept for retry")
	}
}
