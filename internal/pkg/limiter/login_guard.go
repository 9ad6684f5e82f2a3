/*
Package limiter provides request throttling keyed by client IP address.

This file implements the failed-login guard for the admin console: an IP that
accumulates too many failed attempts is blocked for a fixed period.
*/
package limiter

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is the number of failed logins tolerated per IP.
	DefaultMaxAttempts = 7

	// DefaultBlockTime is how long an IP stays blocked after exhausting its attempts.
	DefaultBlockTime = 24 * time.Hour
)

type attemptRecord struct {
	count int
	last  time.Time
}

// LoginGuard tracks failed admin login attempts per client IP.
type LoginGuard struct {
	mu          sync.Mutex
	attempts    map[string]attemptRecord
	maxAttempts int
	blockFor    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewLoginGuard creates a LoginGuard and starts a background sweep that
// forgets records whose block window has fully elapsed.
func NewLoginGuard(maxAttempts int, blockFor time.Duration) *LoginGuard {
	g := &LoginGuard{
		attempts:    make(map[string]attemptRecord),
		maxAttempts: maxAttempts,
		blockFor:    blockFor,
		now:         time.Now,
	}

	go g.sweep()

	return g
}

// Blocked reports whether the IP has exhausted its attempts within the block window.
func (g *LoginGuard) Blocked(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.attempts[ip]
	if !ok {
		return false
	}

	return rec.count >= g.maxAttempts && g.now().Sub(rec.last) < g.blockFor
}

// RegisterFailure records a failed login for the IP and returns how many
// attempts remain before the IP is blocked.
func (g *LoginGuard) RegisterFailure(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := g.attempts[ip]
	rec.count++
	rec.last = g.now()
	g.attempts[ip] = rec

	remaining := g.maxAttempts - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Reset clears the failure record for the IP after a successful login.
func (g *LoginGuard) Reset(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.attempts, ip)
}

func (g *LoginGuard) sweep() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		g.mu.Lock()
		cutoff := g.now().Add(-g.blockFor)
		for ip, rec := range g.attempts {
			if rec.last.Before(cutoff) {
				delete(g.attempts, ip)
			}
		}
		g.mu.Unlock()
	}
}
