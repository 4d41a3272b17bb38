package infrastructure

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountLocker_SerialisesSameKey(t *testing.T) {
	locker := NewAccountLocker()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("1_2")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locker.size(), "idle keys are dropped")
}

func TestAccountLocker_OppositeOrderDoesNotDeadlock(t *testing.T) {
	locker := NewAccountLocker()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			locker.Lock("a", "b")()
		}()
		go func() {
			defer wg.Done()
			locker.Lock("b", "a")()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("two-key locks deadlocked")
	}
}

func TestAccountLocker_DuplicateKeysAndDoubleUnlock(t *testing.T) {
	locker := NewAccountLocker()

	unlock := locker.Lock("x", "x")
	unlock()
	assert.NotPanics(t, unlock)

	unlock = locker.Lock("x")
	unlock()
	assert.Equal(t, 0, locker.size())
}
