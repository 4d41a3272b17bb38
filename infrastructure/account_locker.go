package infrastructure

import (
	"sort"
	"sync"
)

// AccountLocker is an in-process keyed mutex. Keys are acquired in sorted
// order so two-party actions cannot deadlock each other.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu      sync.Mutex
	waiters int
}

// NewAccountLocker creates an empty locker
func NewAccountLocker() *AccountLocker {
	return &AccountLocker{locks: make(map[string]*keyLock)}
}

// Lock acquires every key and returns the function releasing them
func (l *AccountLocker) Lock(keys ...string) func() {
	unique := dedupe(keys)
	sort.Strings(unique)

	held := make([]*keyLock, 0, len(unique))
	for _, k := range unique {
		kl := l.acquireRef(k)
		kl.mu.Lock()
		held = append(held, kl)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				l.releaseRef(unique[i], held[i])
			}
		})
	}
}

func (l *AccountLocker) acquireRef(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.waiters++
	return kl
}

func (l *AccountLocker) releaseRef(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.waiters--
	if kl.waiters == 0 {
		delete(l.locks, key)
	}
}

// size reports how many keys are tracked
func (l *AccountLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
