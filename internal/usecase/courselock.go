package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex provides an exclusive critical section per course. Reorder
// computations are only correct if no other writer mutates the sibling set
// mid-computation; locking by course id serialises writers for one course
// while leaving other courses fully independent.
type keyedMutex struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// Lock acquires the mutex for the given key and returns its release func.
func (k *keyedMutex) Lock(key uuid.UUID) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
