package probemap

// cell is a single table slot.
//
// taken distinguishes "never used" from "holds a live entry". With no
// delete operation a cell never transitions back to untaken, so probe
// chains stay intact for the table's whole lifetime.
type cell[K comparable, V any] struct {
	key   K
	value V
	taken bool
}
