// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter provides an in-process, per-key token-bucket rate limiter.
// Keys are opaque strings: the transport layer uses the client IP for
// anonymous routes and the user id for session routes.
package limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// staleAfter is how long a key may sit unused before the sweeper drops its
// bucket. Dropping a bucket resets the key to a full budget, which is
// acceptable for keys that have been idle this long.
const staleAfter = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key and sweeps buckets that
// have gone idle. Safe for concurrent use.
type KeyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
}

// New constructs a KeyedLimiter allowing requestsPerMinute sustained requests
// per key with the given instantaneous burst.
func New(requestsPerMinute, burst int) *KeyedLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if burst <= 0 {
		burst = requestsPerMinute
	}

	return &KeyedLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:   burst,
	}
}

// Allow reports whether the key may proceed, consuming one token when it may.
func (k *KeyedLimiter) Allow(key string) bool {
	return k.get(key).Allow()
}

// RetryAfter returns the wait until the key's next token, for the
// Retry-After header. Zero when a token is available now.
func (k *KeyedLimiter) RetryAfter(key string) time.Duration {
	reservation := k.get(key).Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	return delay
}

func (k *KeyedLimiter) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = time.Now()

	return e.limiter
}

// StartSweeping runs Sweep on a ticker until the returned stop function is
// called. Stop is idempotent; callers tie it to server shutdown.
func (k *KeyedLimiter) StartSweeping(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				k.Sweep()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// Sweep drops buckets that have been idle longer than staleAfter and returns
// how many were removed. Callers run it on a ticker.
func (k *KeyedLimiter) Sweep() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := time.Now().Add(-staleAfter)
	removed := 0
	for key, e := range k.entries {
		if e.lastSeen.Before(cutoff) {
			delete(k.entries, key)
			removed++
		}
	}

	return removed
}

// Len reports the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
