package syncer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type flusherStub struct {
	calls  int64
	err    error
	called chan struct{}
}

func (f *flusherStub) Flush(_ context.Context) error {
	atomic.AddInt64(&f.calls, 1)
	select {
	case f.called <- struct{}{}:
	default:
	}
	return f.err
}

type notifierStub struct {
	wake func()
}

func (n *notifierStub) Notify(f func()) { n.wake = f }

func wait(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal(what)
	}
}

func TestSyncer_Run(t *testing.T) {
	f := &flusherStub{called: make(chan struct{}, 1)}
	n := &notifierStub{}

	s := New(f, n, time.Hour)
	require.NotNil(t, n.wake, "syncer must subscribe to connectivity edges")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// one flush at startup
	wait(t, f.called, "no startup flush")

	// one more per online edge
	n.wake()
	wait(t, f.called, "no flush after online edge")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("syncer did not stop")
	}
}

func TestSyncer_Run_Ticker(t *testing.T) {
	f := &flusherStub{called: make(chan struct{}, 1)}

	s := New(f, &notifierStub{}, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx) // nolint

	wait(t, f.called, "no startup flush")
	wait(t, f.called, "no periodic flush")
}

func TestSyncer_Run_FailureKeepsRunning(t *testing.T) {
	f := &flusherStub{called: make(chan struct{}, 1), err: errors.New("backend down")}
	n := &notifierStub{}

	s := New(f, n, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx) // nolint

	wait(t, f.called, "no startup flush")

	// a failed flush does not kill the loop
	n.wake()
	wait(t, f.called, "no retry after failure")
	require.GreaterOrEqual(t, atomic.LoadInt64(&f.calls), int64(2))
}
