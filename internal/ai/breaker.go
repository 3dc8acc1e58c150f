package ai

import (
	"sync"
	"time"
)

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

const (
	breakerFailureThreshold = 3
	breakerSuccessThreshold = 1
	breakerCooldown         = 2 * time.Minute
)

// breaker keeps the client from hammering an upstream that is down.
// Repeated failures open it and calls fail fast until the cooldown has
// passed; the next call then probes the upstream, and a success closes
// it again.
type breaker struct {
	mu          sync.Mutex
	state       breakerState
	failures    int
	successes   int
	lastFailure time.Time

	failureThreshold int
	successThreshold int
	cooldown         time.Duration
}

func newBreaker() *breaker {
	return &breaker{
		failureThreshold: breakerFailureThreshold,
		successThreshold: breakerSuccessThreshold,
		cooldown:         breakerCooldown,
	}
}

// allow reports whether a call may proceed, moving an expired open
// breaker to half-open so a single probe can test the upstream.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateOpen {
		if time.Since(b.lastFailure) <= b.cooldown {
			return false
		}
		b.state = stateHalfOpen
		b.failures = 0
		b.successes = 0
	}
	return true
}

// recordSuccess closes a half-open breaker once enough probes succeed.
func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.successes++
	if b.state == stateHalfOpen && b.successes >= b.successThreshold {
		b.state = stateClosed
		b.failures = 0
		b.successes = 0
	}
}

// recordFailure counts a failed call and reports whether it opened the
// breaker. A failed half-open probe reopens it immediately.
func (b *breaker) recordFailure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailure = time.Now()

	switch b.state {
	case stateClosed:
		if b.failures >= b.failureThreshold {
			b.state = stateOpen
			return true
		}
	case stateHalfOpen:
		b.state = stateOpen
		return true
	}
	return false
}
