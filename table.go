package probemap

// initialCapacity is deliberately small; the first insert into a full
// default table grows it to 2*11+1 = 23.
const initialCapacity = 11

type table[K comparable, V any] struct {
	cells []cell[K, V]
	taken int

	growths int

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Start with a larger table. Capacities at or below the default are
// ignored; growth behaves the same either way.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		if capacity > len(t.cells) {
			t.cells = make([]cell[K, V], capacity)
		}
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.cells = make([]cell[K, V], initialCapacity)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

// index locates the cell holding key. Probing starts at hash mod capacity
// and walks forward with wraparound; an untaken cell means the key is
// absent and terminates the scan. The scan is bounded to capacity steps
// with a final equality recheck on the last probed cell. The bound is
// unreachable while inserts keep taken below capacity, but it keeps
// lookups terminating on any table state.
func (t *table[K, V]) index(key K) (int, bool) {
	idx := int(t.hashFunc(key) % uint64(len(t.cells)))
	for range t.cells {
		if !t.cells[idx].taken {
			break
		}
		if t.cells[idx].key == key {
			break
		}

		idx = (idx + 1) % len(t.cells)
	}

	if t.cells[idx].taken && t.cells[idx].key == key {
		return idx, true
	}

	return idx, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	if idx, ok := t.index(key); ok {
		return t.cells[idx].value, true
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) getPtr(key K) (*V, bool) {
	if idx, ok := t.index(key); ok {
		return &t.cells[idx].value, true
	}

	return nil, false
}

// put inserts or overwrites. An overwrite leaves capacity and the taken
// count untouched. A fresh insert grows the table first whenever it is
// full, so the probe below always finds an untaken cell.
func (t *table[K, V]) put(key K, value V) {
	if idx, ok := t.index(key); ok {
		t.cells[idx].value = value
		return
	}

	if t.taken >= len(t.cells) {
		t.grow()
	}

	idx := int(t.hashFunc(key) % uint64(len(t.cells)))
	for t.cells[idx].taken {
		idx = (idx + 1) % len(t.cells)
	}

	t.cells[idx].taken = true
	t.cells[idx].key = key
	t.cells[idx].value = value
	t.taken++
}

// grow replaces the cell array with one of capacity 2n+1 and reinserts
// every live entry. Entries land on new indices, so any pointer handed out
// by getPtr before the grow no longer references a live cell.
func (t *table[K, V]) grow() {
	if len(t.cells) == 0 {
		panic("probemap: grow on zero-capacity table")
	}

	old := t.cells
	t.cells = make([]cell[K, V], 2*len(old)+1)
	t.taken = 0
	t.growths++

	for i := range old {
		if old[i].taken {
			t.put(old[i].key, old[i].value)
		}
	}
}

func (t *table[K, V]) reset() {
	clear(t.cells)
	t.taken = 0
}
