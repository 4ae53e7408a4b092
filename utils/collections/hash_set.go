package collections

type hashSet[V comparable] struct {
	entries Map[V, struct{}]
}

func NewHashSet[V comparable](n int, hash HashFunc[V]) Set[V] {
	return &hashSet[V]{
		entries: NewHashMap[V, struct{}](n, hash),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	return s.entries.Contains(v)
}

func (s *hashSet[V]) Add(v V) error {
	return s.entries.Put(v, struct{}{}, false)
}

func (s *hashSet[V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[V]) Entries() []V {
	return s.entries.Keys()
}
