// Package locks serializes read-modify-write sequences per person. The store
// provides no transactions, so concurrent mutations of the same person record
// must run one at a time to keep the balance checks honest.
package locks

import "sync"

// KeyedMutex provides one mutex per key. Mutexes are created on demand and
// kept for the life of the process; the key space (person ids) is small.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns the matching unlock function.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
