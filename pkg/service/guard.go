// Package service hosts the application services that sit between the HTTP
// and CLI surfaces and the ledger domain.
package service

import "sync"

// Guard serializes every balance-mutating operation across the services that
// share it. Two near-simultaneous transactions would otherwise read the same
// balance snapshot and the second write would clobber the first; the guard,
// together with the row lock the funds repository takes, closes that race.
type Guard struct {
	mu sync.Mutex
}

// Lock acquires the guard.
func (g *Guard) Lock() { g.mu.Lock() }

// Unlock releases the guard.
func (g *Guard) Unlock() { g.mu.Unlock() }
