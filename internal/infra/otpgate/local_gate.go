// Package otpgate serialises OTP issuance per phone and enforces the resend cooldown.
package otpgate

import (
	"context"
	"sync"
	"time"

	"loyalty/internal/domain/service"
)

// keyedMutex hands out one mutex per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// localGate is the in-process gate used when Redis is not configured. It only
// protects a single API instance.
type localGate struct {
	cooldown time.Duration
	now      func() time.Time
	locks    *keyedMutex

	mu         sync.Mutex
	lastIssued map[string]time.Time
}

// NewLocalGate creates an in-memory OTPGate.
func NewLocalGate(cooldown time.Duration) service.OTPGate {
	return newLocalGate(cooldown, time.Now)
}

func newLocalGate(cooldown time.Duration, now func() time.Time) *localGate {
	return &localGate{
		cooldown:   cooldown,
		now:        now,
		locks:      &keyedMutex{locks: make(map[string]*refMutex)},
		lastIssued: make(map[string]time.Time),
	}
}

func (g *localGate) Lock(ctx context.Context, phone string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return g.locks.lock(phone), nil
}

func (g *localGate) Allow(_ context.Context, phone string) (bool, time.Duration, error) {
	if g.cooldown <= 0 {
		return true, 0, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, ok := g.lastIssued[phone]; ok {
		if wait := g.cooldown - now.Sub(last); wait > 0 {
			return false, wait, nil
		}
	}
	g.lastIssued[phone] = now
	g.evictExpired(now)

	return true, 0, nil
}

// evictExpired drops entries whose cooldown has passed. Callers hold g.mu.
func (g *localGate) evictExpired(now time.Time) {
	for phone, last := range g.lastIssued {
		if now.Sub(last) >= g.cooldown {
			delete(g.lastIssued, phone)
		}
	}
}
