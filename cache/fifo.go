package cache

import "github.com/segmentio/xorlist/container/list"

// FIFO is an Interface implementation which evicts items in the order they
// were first inserted in the cache. Replacing the value of an existing key does
// not change its position in the eviction order.
//
// Deleting a key leaves a stale record in the eviction queue, which is skipped
// when evicting. Stale records are dropped once they outnumber the live
// entries. Replacing the value of a key updates it in place.
type FIFO[K comparable, V any] struct {
	index map[K]fifoEntry[V]
	queue list.List[fifoRecord[K]]
	seq   uint64
}

type fifoEntry[V any] struct {
	value V
	seq   uint64
}

// fifoRecord is a position in the eviction queue. It is stale when the entry
// it pointed to was deleted or evicted, which is detected by comparing the
// sequence numbers.
type fifoRecord[K comparable] struct {
	key K
	seq uint64
}

func (fifo *FIFO[K, V]) Len() int {
	return len(fifo.index)
}

func (fifo *FIFO[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if fifo.index == nil {
		fifo.index = make(map[K]fifoEntry[V])
	}
	e, ok := fifo.index[key]
	if ok {
		previous, replaced = e.value, true
		e.value = value
		fifo.index[key] = e
		return previous, replaced
	}
	fifo.seq++
	fifo.index[key] = fifoEntry[V]{value: value, seq: fifo.seq}
	fifo.queue.PushBack(fifoRecord[K]{key: key, seq: fifo.seq})
	return previous, replaced
}

func (fifo *FIFO[K, V]) Lookup(key K) (value V, found bool) {
	e, ok := fifo.index[key]
	if ok {
		value, found = e.value, true
	}
	return value, found
}

func (fifo *FIFO[K, V]) Delete(key K) (value V, deleted bool) {
	e, ok := fifo.index[key]
	if ok {
		delete(fifo.index, key)
		value, deleted = e.value, true
		fifo.compact()
	}
	return value, deleted
}

func (fifo *FIFO[K, V]) Evict() (key K, value V, evicted bool) {
	for {
		r, ok := fifo.queue.PopFront()
		if !ok {
			return key, value, false
		}
		if e, live := fifo.live(r); live {
			delete(fifo.index, r.key)
			return r.key, e.value, true
		}
	}
}

// Range presents entries in eviction order.
func (fifo *FIFO[K, V]) Range(f func(K, V) bool) {
	for r := range fifo.queue.Values() {
		if e, live := fifo.live(r); live && !f(r.key, e.value) {
			break
		}
	}
}

func (fifo *FIFO[K, V]) live(r fifoRecord[K]) (fifoEntry[V], bool) {
	e, ok := fifo.index[r.key]
	return e, ok && e.seq == r.seq
}

func (fifo *FIFO[K, V]) compact() {
	// Each live entry has exactly one record in the queue. The rest are stale.
	live := len(fifo.index)
	if stale := fifo.queue.Len() - live; stale <= live || stale < 32 {
		return
	}
	queue := list.New[fifoRecord[K]](list.Capacity(len(fifo.index)))
	for r := range fifo.queue.DrainAll() {
		if _, live := fifo.live(r); live {
			queue.PushBack(r)
		}
	}
	fifo.queue = *queue
}
