// README: Multi-window fixed-window rate limiter with lazy resets.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Window is one (duration, max admitted calls) budget within a scope.
type Window struct {
	Duration time.Duration
	Max      int
}

// RateLimitError reports a rejected call. RetryAfter is the wait after which
// every window that rejected the call will have rolled over.
type RateLimitError struct {
	Scope      string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for scope %q, retry after %s", e.Scope, e.RetryAfter)
}

type counterKey struct {
	client   string
	scope    string
	duration time.Duration
}

type counter struct {
	start time.Time
	count int
}

// Limiter tracks admitted calls per (client, scope, window) with fixed-window
// counting. Window resets are lazy: computed at check time, never by a
// background timer. A single lock serializes the check-then-commit sequence so
// two concurrent calls can never both slip under a nearly-exhausted budget.
type Limiter struct {
	mu     sync.Mutex
	scopes map[string][]Window
	state  map[counterKey]*counter
	now    func() time.Time
}

// New creates a Limiter over the given scope table, using the wall clock.
func New(scopes map[string][]Window) *Limiter {
	return NewWithClock(scopes, time.Now)
}

// NewWithClock creates a Limiter with an injected time source, so tests can
// simulate window rollover deterministically.
func NewWithClock(scopes map[string][]Window, now func() time.Time) *Limiter {
	return &Limiter{
		scopes: scopes,
		state:  make(map[counterKey]*counter),
		now:    now,
	}
}

// DefaultScopes returns the route budgets used when no limits file overrides them.
func DefaultScopes() map[string][]Window {
	return map[string][]Window{
		"generate":    {{Duration: time.Minute, Max: 10}},
		"global":      {{Duration: time.Hour, Max: 50}, {Duration: 24 * time.Hour, Max: 200}},
		"clear_cache": {{Duration: time.Hour, Max: 5}},
	}
}

// Allow admits or rejects one call for clientID against every window of every
// named scope. Admission is all-or-nothing: all windows are evaluated
// read-only first, and counters are committed only when every one of them
// would admit, so a rejection never burns budget elsewhere. A client with no
// prior record is evaluated as a fresh, empty counter set.
func (l *Limiter) Allow(clientID string, scopes ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	var retryAfter time.Duration
	rejected := ""
	for _, scope := range scopes {
		for _, w := range l.scopes[scope] {
			count, start := l.effective(counterKey{clientID, scope, w.Duration}, w.Duration, now)
			if count >= w.Max {
				if wait := start.Add(w.Duration).Sub(now); wait > retryAfter {
					retryAfter = wait
					rejected = scope
				}
			}
		}
	}
	if rejected != "" {
		rejections.WithLabelValues(rejected).Inc()
		return &RateLimitError{Scope: rejected, RetryAfter: retryAfter}
	}

	for _, scope := range scopes {
		for _, w := range l.scopes[scope] {
			k := counterKey{clientID, scope, w.Duration}
			st, ok := l.state[k]
			if !ok || now.Sub(st.start) >= w.Duration {
				l.state[k] = &counter{start: now, count: 1}
				continue
			}
			st.count++
		}
		admissions.WithLabelValues(scope).Inc()
	}
	return nil
}

// effective returns the count and window start that apply at time now,
// accounting for a lazy reset of an elapsed window.
func (l *Limiter) effective(k counterKey, d time.Duration, now time.Time) (int, time.Time) {
	st, ok := l.state[k]
	if !ok || now.Sub(st.start) >= d {
		return 0, now
	}
	return st.count, st.start
}
