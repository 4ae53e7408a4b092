// Package hashing provides hash functions for collections.ProbeTable.
// Every function returns an index in [0, n) for a valid key and Invalid otherwise.
package hashing

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const Invalid = -1

const (
	fnvOffset32 = uint32(2166136261)
	fnvPrime32  = uint32(16777619)
)

func reduce(h uint64, n int) int {
	if n <= 0 {
		return Invalid
	}
	return int(h % uint64(n))
}

// String hashes key with xxhash.
func String(key string, n int) int {
	return reduce(xxhash.Sum64String(key), n)
}

func Bytes(key []byte, n int) int {
	return reduce(xxhash.Sum64(key), n)
}

// Fnv32 hashes the fmt.Sprint form of key with FNV-1a.
func Fnv32[K any](key K, n int) int {
	str := fmt.Sprint(key)
	hash := fnvOffset32
	for i := 0; i < len(str); i++ {
		hash ^= uint32(str[i])
		hash *= fnvPrime32
	}
	return reduce(uint64(hash), n)
}

// Integer uses the key itself modulo n. Negative keys are invalid.
func Integer[T constraints.Integer](key T, n int) int {
	if key < 0 {
		return Invalid
	}
	return reduce(uint64(key), n)
}

// Length hashes a string by its length.
func Length(key string, n int) int {
	return reduce(uint64(len(key)), n)
}

// Validate returns a hash function that rejects keys for which valid is false
// and delegates the rest to h.
func Validate[K any](valid func(K) bool, h func(K, int) int) func(K, int) int {
	return func(key K, n int) int {
		if !valid(key) {
			return Invalid
		}
		return h(key, n)
	}
}
