package probemap

// Map is a hash table using open addressing with linear probing. Colliding
// entries spill into the next free cell, and the whole table is rehashed
// into a replacement of capacity 2n+1 once every cell is taken. There is
// no delete: removing entries would need tombstone cells to keep probe
// chains intact, and the API leaves that out on purpose.
//
// A Map is not safe for concurrent use. Callers that share one across
// goroutines must guard it with their own lock.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new empty map with the default capacity of 11 cells.
// The hash function defaults to a seeded maphash over the key type;
// use WithHashFunc to supply StringHash, IntHash, or a custom one.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Inserts a value, overwriting any previous value stored for the key.
func (m *Map[K, V]) Put(key K, value V) {
	m.put(key, value)
}

// Looks a key up and returns a copy of its value.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// GetPtr returns a pointer to the value stored for key, for in-place
// mutation. The pointer is only valid until the next Put: an insert that
// grows the table relocates every entry, leaving the pointer aimed at a
// discarded cell. Never hold it across mutating calls.
func (m *Map[K, V]) GetPtr(key K) (*V, bool) {
	return m.getPtr(key)
}

// Update applies fn to the value stored for key, in place, and reports
// whether the key was present. Safer than GetPtr: the pointer never
// escapes the call.
func (m *Map[K, V]) Update(key K, fn func(*V)) bool {
	v, ok := m.getPtr(key)
	if !ok {
		return false
	}
	fn(v)

	return true
}

// Number of live entries.
func (m *Map[K, V]) Len() int {
	return m.taken
}

// Current capacity. The table grows to 2n+1 whenever Len reaches it.
func (m *Map[K, V]) Cap() int {
	return len(m.cells)
}

// Drops every entry while keeping the current capacity.
func (m *Map[K, V]) Reset() {
	m.reset()
}

// Returns a snapshot of the map's internals.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:       m.taken,
		Capacity:   len(m.cells),
		LoadFactor: float32(m.taken) / float32(len(m.cells)),
		Growths:    m.growths,
	}
}
