package dlx

// search holds the mutable state of one running solve. path stores rowID
// references of the branches currently taken; it is empty at entry and exit
// of the drivers.
type search[R any] struct {
	mx       *matrix[R]
	strategy Strategy
	state    *State
	fn       Callback[R]
	path     []int
}

// emit hands the current path to the callback as a fresh Solution.
func (s *search[R]) emit() {
	rows := make([]R, len(s.path))
	for i, ref := range s.path {
		rows[i] = s.mx.rowIDs[ref]
	}
	s.fn(Solution[R]{Rows: rows}, s.state)
}

// run is the recursive Algorithm X loop. Once the state is terminated it
// unwinds without further callbacks and without restoring covered columns;
// the arena is discarded when the solve returns.
func (s *search[R]) run() {
	if s.state.terminated {
		return
	}
	c := s.mx.chooseColumn(s.strategy)
	if c == none {
		s.emit()
		return
	}
	s.mx.cover(c)
	rs := s.mx.recs
	for v := rs[c].down; v != c; v = rs[v].down {
		s.path = append(s.path, rs[v].row)
		for x := rs[v].right; x != v; x = rs[x].right {
			s.mx.cover(rs[x].col)
		}
		s.run()
		if s.state.terminated {
			return
		}
		s.path = s.path[:len(s.path)-1]
		// backtrack: uncover in reverse order
		for x := rs[v].left; x != v; x = rs[x].left {
			s.mx.uncover(rs[x].col)
		}
	}
	s.mx.uncover(c)
}

// frame is one suspended level of the iterative driver: the covered column
// and the branch cell currently taken in it.
type frame struct {
	col  int
	cell int
}

// runIterative is the explicit-stack form of run. It visits branches in the
// same order and therefore yields solutions in the same order as the
// recursive driver for identical inputs and strategy.
func (s *search[R]) runIterative() {
	rs := s.mx.recs
	var stack []frame
	for {
		if s.state.terminated {
			return
		}
		c := s.mx.chooseColumn(s.strategy)
		if c == none {
			s.emit()
			if s.state.terminated {
				return
			}
		} else {
			s.mx.cover(c)
			if v := rs[c].down; v != c {
				// descend into the first branch of c
				s.path = append(s.path, rs[v].row)
				for x := rs[v].right; x != v; x = rs[x].right {
					s.mx.cover(rs[x].col)
				}
				stack = append(stack, frame{col: c, cell: v})
				continue
			}
			// empty column: dead end
			s.mx.uncover(c)
		}
		// backtrack: advance the deepest frame to its next branch, popping
		// exhausted frames as we go
		for {
			if len(stack) == 0 {
				return
			}
			f := &stack[len(stack)-1]
			s.path = s.path[:len(s.path)-1]
			for x := rs[f.cell].left; x != f.cell; x = rs[x].left {
				s.mx.uncover(rs[x].col)
			}
			f.cell = rs[f.cell].down
			if f.cell != f.col {
				s.path = append(s.path, rs[f.cell].row)
				for x := rs[f.cell].right; x != f.cell; x = rs[x].right {
					s.mx.cover(rs[x].col)
				}
				break
			}
			s.mx.uncover(f.col)
			stack = stack[:len(stack)-1]
		}
	}
}
