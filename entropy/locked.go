package entropy

import "sync"

// Locked wraps a Pool with a mutex so a single pool can back multiple
// goroutines. Bit consumption mutates shared indices, so all access to a
// shared pool must go through one exclusive lock.
type Locked struct {
	mu   sync.Mutex
	pool *Pool
}

// NewLocked returns a serialized view of pool. The pool must not be used
// directly while the Locked wrapper is in service.
func NewLocked(pool *Pool) *Locked {
	return &Locked{pool: pool}
}

// Bit returns the next random bit under the lock.
func (l *Locked) Bit() (uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pool.Bit()
}

// BitsRead reports the total number of bits handed out so far.
func (l *Locked) BitsRead() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pool.BitsRead()
}
