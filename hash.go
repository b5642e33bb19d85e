package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc produces a 64-bit hash of a key. Implementations must be pure:
// no side effects, and equal keys always hash equal.
type HashFunc[K comparable] func(K) uint64

// Makes a seeded hash function for any comparable key type.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Hashable lets custom key types carry their own hash.
type Hashable interface {
	Hash() uint64
}

// Adapts a Hashable key type into a HashFunc.
func HashableFunc[K interface {
	comparable
	Hashable
}]() HashFunc[K] {
	return func(k K) uint64 {
		return k.Hash()
	}
}

// StringHash is the djb2 string hash: accumulator starts at 5381, then
// times 33 plus each byte, wrapping on uint64. The exact algorithm is kept
// stable so hashes stay comparable across versions.
func StringHash(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}

	return h
}

// XXStringHash hashes strings with xxhash. Faster and better distributed
// than StringHash, but not djb2-compatible.
func XXStringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Integer is the key constraint for IntHash.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHash is the identity hash for integer keys.
func IntHash[K Integer](k K) uint64 {
	return uint64(k)
}
