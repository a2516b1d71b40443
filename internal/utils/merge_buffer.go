package utils

import "sync"

// MergeBuffer collects per-thread result batches from concurrent fetches.
// The union is order-independent; callers only ever read the final snapshot.
type MergeBuffer[T any] struct {
	buffer     []T
	bufferLock sync.Mutex
}

func NewMergeBuffer[T any]() *MergeBuffer[T] {
	return &MergeBuffer[T]{}
}

func (b *MergeBuffer[T]) Add(items ...T) {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	b.buffer = append(b.buffer, items...)
}

func (b *MergeBuffer[T]) Size() int {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()
	return len(b.buffer)
}

// Items returns a copy of everything merged so far.
func (b *MergeBuffer[T]) Items() []T {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	return append([]T(nil), b.buffer...)
}
