package limiter

import (
	"testing"
	"time"
)

func newTestGuard(maxAttempts int, blockFor time.Duration) (*LoginGuard, *time.Time) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	g := &LoginGuard{
		attempts:    make(map[string]attemptRecord),
		maxAttempts: maxAttempts,
		blockFor:    blockFor,
		now:         func() time.Time { return current },
	}
	return g, &current
}

func TestLoginGuardBlocksAfterMaxAttempts(t *testing.T) {
	g, _ := newTestGuard(3, time.Hour)

	if g.Blocked("10.0.0.1") {
		t.Fatal("fresh IP must not be blocked")
	}

	if remaining := g.RegisterFailure("10.0.0.1"); remaining != 2 {
		t.Fatalf("remaining = %d, want 2", remaining)
	}
	g.RegisterFailure("10.0.0.1")
	if g.Blocked("10.0.0.1") {
		t.Fatal("IP blocked before reaching the attempt limit")
	}

	g.RegisterFailure("10.0.0.1")
	if !g.Blocked("10.0.0.1") {
		t.Fatal("IP not blocked after reaching the attempt limit")
	}

	// A different IP is unaffected.
	if g.Blocked("10.0.0.2") {
		t.Fatal("unrelated IP must not be blocked")
	}
}

func TestLoginGuardBlockExpires(t *testing.T) {
	g, current := newTestGuard(2, time.Hour)

	g.RegisterFailure("10.0.0.1")
	g.RegisterFailure("10.0.0.1")
	if !g.Blocked("10.0.0.1") {
		t.Fatal("IP should be blocked")
	}

	*current = current.Add(2 * time.Hour)
	if g.Blocked("10.0.0.1") {
		t.Fatal("block should expire after the block window")
	}
}

func TestLoginGuardReset(t *testing.T) {
	g, _ := newTestGuard(2, time.Hour)

	g.RegisterFailure("10.0.0.1")
	g.RegisterFailure("10.0.0.1")
	g.Reset("10.0.0.1")

	if g.Blocked("10.0.0.1") {
		t.Fatal("reset must clear the block")
	}
	if remaining := g.RegisterFailure("10.0.0.1"); remaining != 1 {
		t.Fatalf("remaining after reset = %d, want 1", remaining)
	}
}
