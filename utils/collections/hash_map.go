package collections

// hashMap binds a hash function to a ProbeTable and reports failures as errors.
type hashMap[K comparable, V any] struct {
	table *ProbeTable[K, V]
	hash  HashFunc[K]
}

func NewHashMap[K comparable, V any](n int, hash HashFunc[K]) Map[K, V] {
	return &hashMap[K, V]{
		table: NewProbeTable[K, V](n),
		hash:  hash,
	}
}

func (m *hashMap[K, V]) valid(k K) bool {
	_, ok := m.table.home(k, m.hash)
	return ok
}

func (m *hashMap[K, V]) Contains(k K) bool {
	return m.table.Contains(k, m.hash)
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !m.valid(k) {
		return ErrInvalidKey
	}
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	if !m.table.Insert(k, v, m.hash) {
		return ErrInvalidKey
	}
	// Insert reports success on a full table without storing anything.
	if !m.Contains(k) {
		return ErrTableFull
	}
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	if !m.valid(k) {
		return v, ErrInvalidKey
	}
	v, found := m.table.Search(k, m.hash)
	if !found {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Size() int {
	return m.table.Len()
}

func (m *hashMap[K, V]) Capacity() int {
	return m.table.Capacity()
}

func (m *hashMap[K, V]) Keys() []K {
	return m.table.Keys()
}

func (m *hashMap[K, V]) Values() []V {
	return m.table.Values()
}
