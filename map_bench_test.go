package probemap

import (
	"strconv"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	return keys
}

func BenchmarkMapPut(b *testing.B) {
	keys := benchKeys(1 << 16)
	mask := len(keys) - 1

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m[keys[i&mask]] = i
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		m := New[string, int]()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Put(keys[i&mask], i)
		}
	})
}

func BenchmarkMapGet_Hit(b *testing.B) {
	keys := benchKeys(1 << 16)
	mask := len(keys) - 1

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int)
		for i, k := range keys {
			m[k] = i
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m[keys[i&mask]]
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		m := New[string, int]()
		for i, k := range keys {
			m.Put(k, i)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Get(keys[i&mask])
		}
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	keys := benchKeys(1 << 16)
	miss := benchKeys(1 << 16)
	for i := range miss {
		miss[i] = "absent-" + miss[i]
	}
	mask := len(keys) - 1

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int)
		for i, k := range keys {
			m[k] = i
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = m[miss[i&mask]]
		}
	})

	b.Run("variant=probeMap", func(b *testing.B) {
		m := New[string, int]()
		for i, k := range keys {
			m.Put(k, i)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Get(miss[i&mask])
		}
	})
}
