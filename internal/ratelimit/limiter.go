// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package ratelimit implements the client-side request gate applied before
// every call to the remote API. Three caps are enforced at once: requests
// per minute, requests per second, and a minimum gap between consecutive
// requests. The per-minute and per-second caps are token buckets; the gap
// is a hard floor independent of bucket state.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Defaults mirror the documented limits of the remote service's free tier.
const (
	DefaultPerMinute   = 30
	DefaultPerSecond   = 2
	DefaultMinInterval = 500 * time.Millisecond
)

// Config bounds accepted by New. Values outside these ranges are clamped.
const (
	MaxPerMinute   = 60
	MaxPerSecond   = 10
	MinIntervalLow = 100 * time.Millisecond
)

// Limiter gates outbound requests. It is safe for concurrent use.
type Limiter struct {
	perMinute   *rate.Limiter
	perSecond   *rate.Limiter
	minInterval time.Duration

	mu      sync.Mutex
	last    time.Time
	history []time.Time
}

// Stats is a point-in-time snapshot of limiter state, used for debug
// logging.
type Stats struct {
	RequestsLastMinute int
	RequestsLastSecond int
	PerMinuteCap       int
	PerSecondCap       int
	MinInterval        time.Duration
	SinceLastRequest   time.Duration
}

// New builds a Limiter from the given caps. Caps above the hard maxima are
// clamped down; non-positive values fall back to the defaults.
func New(perMinute, perSecond int, minInterval time.Duration) *Limiter {
	if perMinute <= 0 {
		perMinute = DefaultPerMinute
	}
	if perMinute > MaxPerMinute {
		perMinute = MaxPerMinute
	}
	if perSecond <= 0 {
		perSecond = DefaultPerSecond
	}
	if perSecond > MaxPerSecond {
		perSecond = MaxPerSecond
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	if minInterval < MinIntervalLow {
		minInterval = MinIntervalLow
	}

	return &Limiter{
		perMinute:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		perSecond:   rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), perSecond),
		minInterval: minInterval,
	}
}

// Wait blocks until a request may proceed or ctx is done. It returns the
// time actually spent waiting so callers can log it, and the ctx error if
// the deadline expired first.
func (l *Limiter) Wait(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	l.mu.Lock()
	gap := l.minInterval - time.Since(l.last)
	l.mu.Unlock()

	if gap > 0 {
		timer := time.NewTimer(gap)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return time.Since(start), ctx.Err()
		case <-timer.C:
		}
	}

	if err := l.perSecond.Wait(ctx); err != nil {
		return time.Since(start), err
	}
	if err := l.perMinute.Wait(ctx); err != nil {
		return time.Since(start), err
	}

	now := time.Now()
	l.mu.Lock()
	l.last = now
	l.history = append(l.history, now)
	l.prune(now)
	l.mu.Unlock()

	return now.Sub(start), nil
}

// Stats reports request counts over the trailing minute and second.
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.prune(now)

	lastSecond := 0
	for _, ts := range l.history {
		if now.Sub(ts) < time.Second {
			lastSecond++
		}
	}

	s := Stats{
		RequestsLastMinute: len(l.history),
		RequestsLastSecond: lastSecond,
		PerMinuteCap:       l.perMinute.Burst(),
		PerSecondCap:       l.perSecond.Burst(),
		MinInterval:        l.minInterval,
	}
	if !l.last.IsZero() {
		s.SinceLastRequest = now.Sub(l.last)
	}
	return s
}

// prune drops history entries older than the rolling minute. Callers must
// hold mu.
func (l *Limiter) prune(now time.Time) {
	cut := 0
	for cut < len(l.history) && now.Sub(l.history[cut]) > time.Minute {
		cut++
	}
	l.history = l.history[cut:]
}
