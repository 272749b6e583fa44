package dlx

// none marks an absent index (no column chosen, no row id).
const none = -1

// record is one link node of the matrix. The header, the column records, and
// the row cells all share this shape:
//
//	header:  left/right anchor the column ring; up/down unused
//	column:  left/right column ring, up/down anchor the cell ring,
//	         col is the record's own index, size counts live cells
//	cell:    left/right row ring, up/down column cell ring,
//	         col points at the owning column, row indexes arena.rowIDs
type record struct {
	left, right int
	up, down    int
	col         int
	row         int
	size        int
	mandatory   bool
}

// arena owns every record of one matrix. All linkage is by index into recs,
// so covering never allocates and a deep copy is a single slice clone. Row
// identifiers live out-of-band in rowIDs to keep records fixed-size.
type arena[R any] struct {
	recs   []record
	rowIDs []R
}

func newArena[R any](capHint int) *arena[R] {
	if capHint < 1 {
		capHint = 1
	}
	return &arena[R]{recs: make([]record, 0, capHint)}
}

// push appends rec with all four links self-referential and returns its index.
func (a *arena[R]) push(rec record) int {
	i := len(a.recs)
	rec.left, rec.right, rec.up, rec.down = i, i, i, i
	a.recs = append(a.recs, rec)
	return i
}

func (a *arena[R]) pushHeader() int {
	return a.push(record{col: none, row: none})
}

func (a *arena[R]) pushColumn(mandatory bool) int {
	i := len(a.recs)
	return a.push(record{col: i, row: none, mandatory: mandatory})
}

func (a *arena[R]) pushCell(rowRef, col int) int {
	return a.push(record{col: col, row: rowRef})
}

// addRowID interns one row identifier and returns its reference. Cells of
// the same row share the reference.
func (a *arena[R]) addRowID(id R) int {
	a.rowIDs = append(a.rowIDs, id)
	return len(a.rowIDs) - 1
}
