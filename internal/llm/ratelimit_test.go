package llm

import (
	"context"
	"testing"
	"time"
)

func TestRPSLimiterDisabledIsNoop(t *testing.T) {
	var l *rpsLimiter
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire() on nil limiter = %v, want nil", err)
	}
	l.Stop()

	if got := newRPSLimiter(0, 5); got != nil {
		t.Fatalf("newRPSLimiter(0, 5) = %v, want nil", got)
	}
}

func TestRPSLimiterBurstThenBlocks(t *testing.T) {
	l := newRPSLimiter(1, 2)
	defer l.Stop()

	for i := 0; i < 2; i++ {
		if err := l.Acquire(context.Background()); err != nil {
			t.Fatalf("burst Acquire(%d) error = %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Acquire(ctx); err == nil {
		t.Fatalf("Acquire() after burst = nil, want context deadline error")
	}
}

func TestRPSLimiterStopUnblocksWaiters(t *testing.T) {
	l := newRPSLimiter(0.001, 1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("initial Acquire() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- l.Acquire(context.Background()) }()
	l.Stop()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("Acquire() after Stop = nil, want error")
		}
	case <-time.After(time.Second):
		t.Fatalf("Acquire() did not return after Stop")
	}
}
