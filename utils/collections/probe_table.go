package collections

import (
	"fmt"
	"strings"
)

// HashFunc maps key to a slot index in [0, n). A negative result marks the key as invalid.
type HashFunc[K any] func(key K, n int) int

type slot[K comparable, V any] struct {
	occupied bool
	key      K
	value    V
}

// ProbeTable is a fixed-capacity open addressing table with linear probing.
// The hash function is passed on every call and must be the same one for a given key.
// It is not safe for concurrent use.
type ProbeTable[K comparable, V any] struct {
	slots []slot[K, V]
}

func NewProbeTable[K comparable, V any](n int) *ProbeTable[K, V] {
	if n < 0 {
		panic(fmt.Sprintf("collections: negative capacity %d", n))
	}
	return &ProbeTable[K, V]{
		slots: make([]slot[K, V], n),
	}
}

func (t *ProbeTable[K, V]) Capacity() int {
	return len(t.slots)
}

// home returns the first slot to probe for key, or false if hash rejects the key.
func (t *ProbeTable[K, V]) home(key K, hash HashFunc[K]) (int, bool) {
	n := len(t.slots)
	idx := hash(key, n)
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// Insert stores value under key, overwriting the value of an existing key.
// It returns false only when hash rejects the key.
//
// When all N slots hold other keys, Insert stores nothing and still returns true.
// Callers must size the table so it never fills up.
func (t *ProbeTable[K, V]) Insert(key K, value V, hash HashFunc[K]) bool {
	idx, ok := t.home(key, hash)
	if !ok {
		return false
	}
	n := len(t.slots)
	for probed := 0; probed < n; probed++ {
		s := &t.slots[idx]
		if !s.occupied || s.key == key {
			s.occupied = true
			s.key = key
			s.value = value
			return true
		}
		idx = (idx + 1) % n
	}
	return true
}

// Search returns the value stored under key. Probing stops at the first empty slot.
func (t *ProbeTable[K, V]) Search(key K, hash HashFunc[K]) (v V, found bool) {
	idx, ok := t.home(key, hash)
	if !ok {
		return v, false
	}
	n := len(t.slots)
	for probed := 0; probed < n && t.slots[idx].occupied; probed++ {
		if t.slots[idx].key == key {
			return t.slots[idx].value, true
		}
		idx = (idx + 1) % n
	}
	return v, false
}

func (t *ProbeTable[K, V]) Contains(key K, hash HashFunc[K]) bool {
	_, found := t.Search(key, hash)
	return found
}

// Len returns the number of occupied slots.
func (t *ProbeTable[K, V]) Len() int {
	count := 0
	for i := range t.slots {
		if t.slots[i].occupied {
			count++
		}
	}
	return count
}

func (t *ProbeTable[K, V]) Load() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.Len()) / float64(len(t.slots))
}

// Range calls f for every stored entry in slot order until f returns false.
func (t *ProbeTable[K, V]) Range(f func(key K, value V) bool) {
	for i := range t.slots {
		if !t.slots[i].occupied {
			continue
		}
		if !f(t.slots[i].key, t.slots[i].value) {
			return
		}
	}
}

func (t *ProbeTable[K, V]) Keys() []K {
	arr := make([]K, 0, t.Len())
	t.Range(func(k K, _ V) bool {
		arr = append(arr, k)
		return true
	})
	return arr
}

func (t *ProbeTable[K, V]) Values() []V {
	arr := make([]V, 0, t.Len())
	t.Range(func(_ K, v V) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

// Clone returns an independent table with the same capacity and entries.
// Values are copied by assignment; use CloneFunc when V holds references.
func (t *ProbeTable[K, V]) Clone() *ProbeTable[K, V] {
	c := &ProbeTable[K, V]{}
	c.duplicate(t, nil)
	return c
}

// CloneFunc is like Clone but stores clone(v) for every value v.
func (t *ProbeTable[K, V]) CloneFunc(clone func(V) V) *ProbeTable[K, V] {
	c := &ProbeTable[K, V]{}
	c.duplicate(t, clone)
	return c
}

// CopyFrom discards the contents of t and makes it a copy of other, capacity included.
func (t *ProbeTable[K, V]) CopyFrom(other *ProbeTable[K, V]) {
	if t == other {
		return
	}
	t.duplicate(other, nil)
}

func (t *ProbeTable[K, V]) duplicate(other *ProbeTable[K, V], clone func(V) V) {
	slots := make([]slot[K, V], len(other.slots))
	copy(slots, other.slots)
	if clone != nil {
		for i := range slots {
			if slots[i].occupied {
				slots[i].value = clone(slots[i].value)
			}
		}
	}
	t.slots = slots
}

func (t *ProbeTable[K, V]) String() string {
	entries := make([]string, 0, len(t.slots))
	for i := range t.slots {
		if t.slots[i].occupied {
			entries = append(entries, fmt.Sprintf("%d:%v=%v", i, t.slots[i].key, t.slots[i].value))
		}
	}
	return fmt.Sprintf("ProbeTable(n=%d)[%s]", len(t.slots), strings.Join(entries, " "))
}
