package dlx

import "github.com/pkg/errors"

// matrix is a built arena plus its header index. A nil matrix means the
// degenerate M=0 problem: nothing to cover, nothing to enumerate.
type matrix[R any] struct {
	*arena[R]
	header int
}

// build translates p into the initial linked matrix:
// header, then M mandatory and K optional column records spliced into the
// column ring in creation order, then one cell per (row, column) incidence.
// Cells join the bottom of their column's vertical ring and are threaded
// into a horizontal row ring in the order the columns were supplied.
func build[R any](p Problem[R]) (*matrix[R], error) {
	m, k := p.Constraints(), p.OptionalConstraints()
	if m < 0 || k < 0 {
		return nil, errors.Errorf("dlx: negative constraint count (%d mandatory, %d optional)", m, k)
	}
	if m == 0 {
		return nil, nil
	}

	a := newArena[R](2*(m+k) + 1)
	h := a.pushHeader()
	for i := 0; i < m+k; i++ {
		c := a.pushColumn(i < m)
		// splice immediately left of the header
		a.recs[c].right = h
		a.recs[c].left = a.recs[h].left
		a.recs[a.recs[h].left].right = c
		a.recs[h].left = c
	}

	err := p.Rows(func(id R, columns []int) error {
		if len(columns) == 0 {
			return nil
		}
		ref := a.addRowID(id)
		first, prev := none, none
		for _, ci := range columns {
			if ci < 0 || ci >= m+k {
				return errors.Errorf("row %v: column %d out of range [0,%d)", id, ci, m+k)
			}
			col := h + 1 + ci
			x := a.pushCell(ref, col)
			// vertical: insert just above the column record
			a.recs[x].down = col
			a.recs[x].up = a.recs[col].up
			a.recs[a.recs[col].up].down = x
			a.recs[col].up = x
			a.recs[col].size++
			// horizontal: thread onto the row ring
			if first == none {
				first = x
			} else {
				a.recs[x].left = prev
				a.recs[x].right = first
				a.recs[prev].right = x
				a.recs[first].left = x
			}
			prev = x
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "dlx: build matrix")
	}
	return &matrix[R]{arena: a, header: h}, nil
}

// cover removes column c from the column ring, then removes every row with a
// cell in c from all other columns that row touches. Row rings stay intact;
// only vertical links and the column ring mutate.
func (mx *matrix[R]) cover(c int) {
	rs := mx.recs
	rs[rs[c].left].right = rs[c].right
	rs[rs[c].right].left = rs[c].left
	for v := rs[c].down; v != c; v = rs[v].down {
		for x := rs[v].right; x != v; x = rs[x].right {
			rs[rs[x].up].down = rs[x].down
			rs[rs[x].down].up = rs[x].up
			rs[rs[x].col].size--
		}
	}
}

// uncover is the exact inverse of cover, traversed in reverse order so every
// relink sees the structure cover left behind. After cover(c); uncover(c)
// every link field and size is restored bit for bit.
func (mx *matrix[R]) uncover(c int) {
	rs := mx.recs
	for v := rs[c].up; v != c; v = rs[v].up {
		for x := rs[v].left; x != v; x = rs[x].left {
			rs[rs[x].col].size++
			rs[rs[x].up].down = x
			rs[rs[x].down].up = x
		}
	}
	rs[rs[c].left].right = c
	rs[rs[c].right].left = c
}

// chooseColumn returns the column to branch on, or none when every remaining
// active column is optional, i.e. the current path is a solution. Mandatory
// columns precede optional ones in the ring, so the mandatory prefix is the
// stretch before the first non-mandatory record.
func (mx *matrix[R]) chooseColumn(s Strategy) int {
	rs := mx.recs
	h := mx.header
	first := rs[h].right
	if first == h || !rs[first].mandatory {
		return none
	}
	if s == StrategyFirst {
		return first
	}
	best := first
	for c := rs[first].right; c != h && rs[c].mandatory; c = rs[c].right {
		if rs[c].size < rs[best].size {
			best = c
		}
	}
	return best
}
